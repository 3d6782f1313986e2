package farm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/economy"
	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/logger"
	"github.com/osse101/taskfarm/internal/weather"
)

// Session owns one farm: wallet, weather, a fixed plot grid and its clock.
// A single mutex guards all of it for the length of one tick or one operation.
// Events are published after the mutex is released.
type Session struct {
	mu      sync.Mutex
	id      string
	catalog CropLookup
	wallet  *economy.Wallet
	weather *weather.Controller
	plots   []*Plot
	engine  *Engine
	clock   Clock
	sim     *SimulationClock
	bus     event.Bus
}

type sessionOptions struct {
	gridSize        int
	startingBalance int
	clock           Clock
	bus             event.Bus
}

// Option configures a new Session
type Option func(*sessionOptions)

// WithGridSize sets the number of plots
func WithGridSize(n int) Option {
	return func(o *sessionOptions) { o.gridSize = n }
}

// WithStartingBalance sets the initial sun energy
func WithStartingBalance(n int) Option {
	return func(o *sessionOptions) { o.startingBalance = n }
}

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(o *sessionOptions) { o.clock = c }
}

// WithBus publishes farm events to bus
func WithBus(bus event.Bus) Option {
	return func(o *sessionOptions) { o.bus = bus }
}

// NewSession creates a session with every plot empty
func NewSession(id string, catalog CropLookup, opts ...Option) (*Session, error) {
	o := sessionOptions{
		gridSize:        DefaultGridSize,
		startingBalance: economy.DefaultStartingBalance,
		clock:           SystemClock,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.gridSize <= 0 {
		return nil, fmt.Errorf(ErrMsgGridSizeFmt, domain.ErrInvalidInput, o.gridSize)
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: crop catalog is required", domain.ErrInvalidInput)
	}
	wallet, err := economy.NewWallet(o.startingBalance)
	if err != nil {
		return nil, err
	}

	plots := make([]*Plot, o.gridSize)
	for i := range plots {
		plots[i] = newPlot(i)
	}

	s := &Session{
		id:      id,
		catalog: catalog,
		wallet:  wallet,
		weather: weather.NewController(),
		plots:   plots,
		engine:  NewEngine(),
		clock:   o.clock,
		bus:     o.bus,
	}
	s.sim = NewSimulationClock(s, o.clock)
	return s, nil
}

// ID returns the session id
func (s *Session) ID() string { return s.id }

// GridSize returns the fixed number of plots
func (s *Session) GridSize() int { return len(s.plots) }

// Clock returns the simulation clock driving this session
func (s *Session) Clock() *SimulationClock { return s.sim }

// plot must be called with mu held
func (s *Session) plot(plotID int) (*Plot, error) {
	if plotID < 0 || plotID >= len(s.plots) {
		return nil, fmt.Errorf(ErrMsgPlotNotFoundFmt, domain.ErrPlotNotFound, plotID, len(s.plots))
	}
	return s.plots[plotID], nil
}

// Plant sows cropID into an empty plot and pays its cost
func (s *Session) Plant(ctx context.Context, plotID int, cropID string) error {
	s.mu.Lock()
	p, err := s.plot(plotID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	def, err := p.Plant(cropID, s.catalog, s.wallet, s.clock.Now())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	balance := s.wallet.Balance()
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgPlotPlanted,
		logger.AttrKeySessionID, s.id, "plot", plotID, "crop", def.ID, "balance", balance)
	s.publish(ctx, event.NewPlotPlantedEvent(s.id, plotID, def.ID, def.Cost, balance))
	return nil
}

// Accelerate pays for a fixed progress boost on a growing plot
func (s *Session) Accelerate(ctx context.Context, plotID int) error {
	s.mu.Lock()
	p, err := s.plot(plotID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := p.Accelerate(s.wallet); err != nil {
		s.mu.Unlock()
		return err
	}
	def, _ := p.Crop()
	progress := p.Progress()
	balance := s.wallet.Balance()
	s.mu.Unlock()

	logger.FromContext(ctx).Debug(LogMsgPlotAccelerated,
		logger.AttrKeySessionID, s.id, "plot", plotID, "progress", progress, "balance", balance)
	s.publish(ctx, event.NewPlotAcceleratedEvent(s.id, plotID, def.ID, AccelerationCost, progress, balance))
	return nil
}

// Harvest collects a ready plot's reward and empties it
func (s *Session) Harvest(ctx context.Context, plotID int) error {
	s.mu.Lock()
	p, err := s.plot(plotID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	def, err := p.Harvest(s.wallet)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	balance := s.wallet.Balance()
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgPlotHarvested,
		logger.AttrKeySessionID, s.id, "plot", plotID, "crop", def.ID, "reward", def.HarvestReward)
	s.publish(ctx, event.NewPlotHarvestedEvent(s.id, plotID, def.ID, def.HarvestReward, balance))
	return nil
}

// SetWeather changes the weather. The new multiplier applies from the next tick.
func (s *Session) SetWeather(ctx context.Context, w domain.Weather) error {
	s.mu.Lock()
	changed, err := s.weather.SetWeather(w)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	multiplier := s.weather.Multiplier()
	s.mu.Unlock()

	if !changed {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgWeatherChanged,
		logger.AttrKeySessionID, s.id, "weather", w, "multiplier", multiplier)
	s.publish(ctx, event.NewWeatherChangedEvent(s.id, w, multiplier))
	return nil
}

// SetSeason changes the season. It has no effect on growth.
func (s *Session) SetSeason(ctx context.Context, season domain.Season) error {
	s.mu.Lock()
	changed, err := s.weather.SetSeason(season)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}
	logger.FromContext(ctx).Info(LogMsgSeasonChanged, logger.AttrKeySessionID, s.id, "season", season)
	s.publish(ctx, event.NewSeasonChangedEvent(s.id, season))
	return nil
}

// GetState returns a detached snapshot of the farm
func (s *Session) GetState() domain.FarmState {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := make([]domain.PlotView, len(s.plots))
	for i, p := range s.plots {
		views[i] = p.View()
	}
	return domain.FarmState{
		Balance: s.wallet.Balance(),
		Plots:   views,
		Weather: s.weather.Weather(),
		Season:  s.weather.Season(),
	}
}

// Balance returns the current sun energy
func (s *Session) Balance() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet.Balance()
}

// Tick advances every growing plot by deltaSeconds of wall-clock time
// using the weather multiplier in effect now. It cannot fail.
func (s *Session) Tick(ctx context.Context, deltaSeconds float64) {
	s.mu.Lock()
	multiplier := s.weather.Multiplier()
	promoted := s.engine.Advance(s.plots, deltaSeconds, multiplier)
	ready := make([]domain.PlotView, len(promoted))
	for i, p := range promoted {
		ready[i] = p.View()
	}
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgTickApplied, logger.AttrKeySessionID, s.id, "delta", deltaSeconds, "multiplier", multiplier)
	for _, v := range ready {
		log.Info(LogMsgPlotReady, logger.AttrKeySessionID, s.id, "plot", v.ID, "crop", v.CropID)
		s.publish(ctx, event.NewPlotReadyEvent(s.id, v.ID, v.CropID))
	}
}

// AdvanceTicks runs n ticks of interval each without waiting on the wall clock
func (s *Session) AdvanceTicks(ctx context.Context, n int, interval time.Duration) {
	for i := 0; i < n; i++ {
		s.Tick(ctx, interval.Seconds())
	}
}

// publish stamps evt with the session clock. It never fails the caller:
// subscriber errors are only logged.
func (s *Session) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	evt.OccurredAt = s.clock.Now().UTC()
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
			logger.AttrKeySessionID, s.id, "type", evt.Type, "error", err)
	}
}
