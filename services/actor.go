// Package services provides service implementations using the hollywood actor model
package services

import (
	"time"

	"github.com/ZanzyTHEbar/stockwallet-go/interfaces"
	"github.com/ZanzyTHEbar/stockwallet-go/internal"
	"github.com/anthdm/hollywood/actor"
	"github.com/rs/zerolog"
)

// ActorService is the interface that all actor-based services implement
type ActorService interface {
	actor.Receiver
}

// BaseActor provides common functionality for all actors
type BaseActor struct {
	logger zerolog.Logger
	name   string
}

// NewBaseActor creates a new base actor with the given name
func NewBaseActor(name string, component internal.Component) BaseActor {
	return BaseActor{
		name:   name,
		logger: internal.ComponentLogger(component).With().Str("actor", name).Logger(),
	}
}

// Name returns the name the actor was registered under
func (b BaseActor) Name() string {
	return b.name
}

// StartMsg tells an actor to start processing
type StartMsg struct{}

// StopMsg tells an actor to stop processing
type StopMsg struct{}

// StatusRequestMsg is a message requesting the current status of an actor
type StatusRequestMsg struct{}

// StatusResponseMsg is the response to a status request
type StatusResponseMsg struct {
	Status      interfaces.ServiceStatus
	LastActive  time.Time
	ErrorCount  int
	LastError   error
	CustomStats map[string]interface{}
}
