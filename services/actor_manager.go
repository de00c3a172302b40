package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/stockwallet-go/domain/models"
	"github.com/ZanzyTHEbar/stockwallet-go/interfaces"
	"github.com/ZanzyTHEbar/stockwallet-go/internal"
	"github.com/anthdm/hollywood/actor"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrServiceExists      = errors.New("service already registered")
	ErrServiceStopped     = errors.New("service is stopped")
	ErrUnexpectedResponse = errors.New("unexpected actor response")
)

// ActorServiceManager manages actor services and routes wallet operations to
// the actor owning each wallet
type ActorServiceManager struct {
	config *internal.Config
	logger zerolog.Logger

	// Actor system components
	engine *actor.Engine

	// Service registry
	services    map[string]*actor.PID
	serviceInfo map[string]*interfaces.ServiceInfo
	mu          sync.RWMutex
}

var _ interfaces.ServiceManager = (*ActorServiceManager)(nil)

// NewActorServiceManager creates a new actor-based service manager
func NewActorServiceManager(config *internal.Config) (*ActorServiceManager, error) {
	engine, err := actor.NewEngine(actor.NewEngineConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create actor engine: %w", err)
	}

	return &ActorServiceManager{
		config:      config,
		logger:      internal.ComponentLogger(internal.ComponentService),
		engine:      engine,
		services:    make(map[string]*actor.PID),
		serviceInfo: make(map[string]*interfaces.ServiceInfo),
	}, nil
}

// Register adds a new actor service with a unique name to the manager
func (m *ActorServiceManager) Register(name string, service ActorService) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.services[name]; exists {
		return fmt.Errorf("%s: %w", name, ErrServiceExists)
	}

	m.logger.Debug().Str("service", name).Msg("Registering actor service")

	pid := m.engine.Spawn(func() actor.Receiver { return service }, "service", actor.WithID(name))
	m.services[name] = pid
	m.serviceInfo[name] = &interfaces.ServiceInfo{
		Name:   name,
		Status: interfaces.ServiceStatusStopped,
	}

	return nil
}

// RegisterWallet spawns an actor owning a new empty wallet and starts it
func (m *ActorServiceManager) RegisterWallet(name string) error {
	if err := m.Register(name, NewWalletActor(name, m.config.Wallet.HistorySize)); err != nil {
		return err
	}
	return m.StartService(name)
}

// StartService starts a specific actor service by name
func (m *ActorServiceManager) StartService(name string) error {
	return m.setStatus(name, interfaces.ServiceStatusRunning, StartMsg{})
}

// StopService stops a specific actor service by name
func (m *ActorServiceManager) StopService(name string) error {
	return m.setStatus(name, interfaces.ServiceStatusStopped, StopMsg{})
}

func (m *ActorServiceManager) setStatus(name string, status interfaces.ServiceStatus, msg any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	pid, exists := m.services[name]
	if !exists {
		return fmt.Errorf("%s: %w", name, ErrServiceNotFound)
	}

	info := m.serviceInfo[name]
	info.Status = status
	if status == interfaces.ServiceStatusRunning {
		info.StartTime = time.Now()
	}

	m.engine.Send(pid, msg)
	return nil
}

// StartAll starts all registered actor services
func (m *ActorServiceManager) StartAll() error {
	m.logger.Debug().Msg("Starting all actor services")
	return m.forEach(m.StartService)
}

// StopAll stops all running actor services
func (m *ActorServiceManager) StopAll() error {
	m.logger.Debug().Msg("Stopping all actor services")
	return m.forEach(m.StopService)
}

func (m *ActorServiceManager) forEach(fn func(name string) error) error {
	var g errgroup.Group
	for _, name := range m.names() {
		g.Go(func() error {
			return fn(name)
		})
	}
	return g.Wait()
}

func (m *ActorServiceManager) names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.services))
	for name := range m.services {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Shutdown stops all services and poisons their actors. It returns once every
// actor has stopped and released its name, or the request timeout expires.
func (m *ActorServiceManager) Shutdown() error {
	m.logger.Info().Msg("Shutting down actor service manager")

	if err := m.StopAll(); err != nil {
		m.logger.Error().Err(err).Msg("Error stopping services")
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.config.Actor.RequestTimeout)
	defer cancel()

	m.mu.Lock()
	defer m.mu.Unlock()

	var g errgroup.Group
	for name, pid := range m.services {
		g.Go(func() error {
			<-m.engine.PoisonCtx(ctx, pid).Done()
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("failed to stop %s: %w", name, err)
			}
			return nil
		})
	}
	err := g.Wait()

	clear(m.services)
	clear(m.serviceInfo)

	return err
}

// Execute runs operation against the named wallet and returns the resulting
// quantity. A timeout only means the reply was not seen; the actor may still
// have committed the operation.
func (m *ActorServiceManager) Execute(ctx context.Context, wallet string, operation models.Operation) (models.Quantity, error) {
	resp, err := m.ExecuteWithEvent(ctx, wallet, operation)
	if err != nil {
		return 0, err
	}
	return resp.Quantity, resp.Err
}

// ExecuteWithEvent is like Execute but returns the full actor response,
// including the recorded operation event
func (m *ActorServiceManager) ExecuteWithEvent(ctx context.Context, wallet string, operation models.Operation) (ExecuteResponse, error) {
	result, err := m.request(ctx, wallet, ExecuteRequest{Operation: operation})
	if err != nil {
		return ExecuteResponse{}, err
	}

	resp, ok := result.(ExecuteResponse)
	if !ok {
		return ExecuteResponse{}, fmt.Errorf("%T: %w", result, ErrUnexpectedResponse)
	}
	return resp, nil
}

// Balance returns the committed quantity of the named wallet
func (m *ActorServiceManager) Balance(ctx context.Context, wallet string) (models.Quantity, error) {
	result, err := m.request(ctx, wallet, BalanceRequest{})
	if err != nil {
		return 0, err
	}

	resp, ok := result.(BalanceResponse)
	if !ok {
		return 0, fmt.Errorf("%T: %w", result, ErrUnexpectedResponse)
	}
	return resp.Quantity, nil
}

// History returns the most recent operation events of the named wallet
func (m *ActorServiceManager) History(ctx context.Context, wallet string) ([]*interfaces.Event, error) {
	result, err := m.request(ctx, wallet, HistoryRequest{})
	if err != nil {
		return nil, err
	}

	resp, ok := result.(HistoryResponse)
	if !ok {
		return nil, fmt.Errorf("%T: %w", result, ErrUnexpectedResponse)
	}
	return resp.Events, nil
}

func (m *ActorServiceManager) request(ctx context.Context, name string, msg any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	pid, exists := m.services[name]
	m.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("%s: %w", name, ErrServiceNotFound)
	}

	timeout := m.config.Actor.RequestTimeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	result, err := m.engine.Request(pid, msg, timeout).Result()
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", name, err)
	}
	return result, nil
}

// GetServiceInfo returns information about a specific service
func (m *ActorServiceManager) GetServiceInfo(name string) (*interfaces.ServiceInfo, error) {
	m.mu.RLock()
	info, exists := m.serviceInfo[name]
	var infoCopy interfaces.ServiceInfo
	if exists {
		infoCopy = *info
	}
	m.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%s: %w", name, ErrServiceNotFound)
	}

	result, err := m.request(context.Background(), name, StatusRequestMsg{})
	if err != nil {
		m.logger.Warn().Err(err).Str("service", name).Msg("Status request failed")
		infoCopy.Status = interfaces.ServiceStatusUnknown
		return &infoCopy, nil
	}

	if response, ok := result.(StatusResponseMsg); ok {
		infoCopy.Status = response.Status
		infoCopy.ErrorCount = response.ErrorCount
		infoCopy.CustomStats = response.CustomStats
		if response.LastError != nil {
			infoCopy.LastError = response.LastError.Error()
			infoCopy.LastErrorTime = response.LastActive
		}
		if committed, ok := response.CustomStats["committed"].(int); ok {
			infoCopy.EventsHandled = int64(committed + response.ErrorCount)
		}
	}

	return &infoCopy, nil
}

// GetAllServicesInfo returns information about all registered services
func (m *ActorServiceManager) GetAllServicesInfo() []*interfaces.ServiceInfo {
	names := m.names()
	result := make([]*interfaces.ServiceInfo, 0, len(names))

	for _, name := range names {
		info, err := m.GetServiceInfo(name)
		if err != nil {
			continue
		}
		result = append(result, info)
	}

	return result
}
