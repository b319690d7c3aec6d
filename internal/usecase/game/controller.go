package game

import (
	"time"

	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Scheduler runs task once after delay on the goroutine that drives the
// controller. The returned func cancels a task that has not run yet.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) (cancel func())
}

type Presenter func(snapshot domain.Snapshot)

type Option func(c *controller)

func WithAIDelay(delay time.Duration) Option {
	return func(c *controller) {
		c.aiDelay = delay
	}
}

func WithMode(mode domain.Mode) Option {
	return func(c *controller) {
		c.state.Mode = mode
	}
}

type controller struct {
	state      *domain.GameState
	phase      domain.Phase
	seats      map[domain.Cell]domain.Player
	strategies map[domain.Mode]domain.Strategy
	scheduler  Scheduler
	present    Presenter
	aiDelay    time.Duration
	generation *atomic.Uint64
	cancelAI   func()
	logger     *zap.Logger
}

// New builds a controller in PvP mode unless WithMode says otherwise. It is
// not safe for concurrent use: every call, including scheduled computer
// turns, must happen on one goroutine.
func New(strategies map[domain.Mode]domain.Strategy, scheduler Scheduler, present Presenter,
	logger *zap.Logger, opts ...Option) (*controller, error) {
	c := &controller{
		state:      domain.NewGameState(domain.PlayerVsPlayer),
		strategies: strategies,
		scheduler:  scheduler,
		present:    present,
		generation: atomic.NewUint64(0),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	mode := c.state.Mode
	if !mode.Valid() {
		return nil, errors.WithMessagef(ErrInvalidMode, "mode '%s'", mode)
	}
	for _, m := range []domain.Mode{domain.EasyAI, domain.MediumAI, domain.HardAI} {
		if strategies[m] == nil {
			return nil, errors.WithMessagef(ErrMissingStrategy, "mode '%s'", m)
		}
	}
	c.restart(mode)
	return c, nil
}

func (c *controller) Start() {
	c.emit()
}

func (c *controller) SelectMode(mode domain.Mode) {
	if !mode.Valid() {
		c.logger.Debug("ignoring unknown mode", zap.String("mode", string(mode)))
		return
	}
	c.logger.Info("mode selected", zap.String("mode", string(mode)))
	c.restart(mode)
	c.emit()
}

func (c *controller) Reset() {
	c.restart(c.state.Mode)
	c.emit()
}

func (c *controller) ActivateCell(pos int) {
	if c.phase != domain.AwaitingHumanMove {
		c.logger.Debug("ignoring cell outside of human turn",
			zap.Int("position", pos), zap.String("phase", string(c.phase)))
		return
	}
	if !c.state.Board.IsEmpty(pos) {
		c.logger.Debug("ignoring unavailable cell", zap.Int("position", pos))
		return
	}
	status, over := c.state.ApplyMove(pos)
	c.advance(status, over)
}

func (c *controller) Snapshot() domain.Snapshot {
	turn := ""
	if !c.state.Over {
		turn = c.state.Turn.String()
	}
	return domain.Snapshot{
		Board:   c.state.Board.Strings(),
		Mode:    c.state.Mode,
		Turn:    turn,
		Phase:   c.phase,
		Outcome: c.state.Status().Message(),
	}
}

func (c *controller) Phase() domain.Phase {
	return c.phase
}

func (c *controller) Generation() uint64 {
	return c.generation.Load()
}

func (c *controller) restart(mode domain.Mode) {
	if c.cancelAI != nil {
		c.cancelAI()
		c.cancelAI = nil
	}
	c.generation.Inc()
	c.state.Reset(mode)
	c.seats = domain.Seats(mode, c.strategies[mode])
	c.phase = domain.AwaitingHumanMove
}

func (c *controller) advance(status domain.GameStatus, over bool) {
	switch {
	case over:
		c.phase = domain.GameOver
		c.logger.Info("game over",
			zap.String("mode", string(c.state.Mode)), zap.String("outcome", status.Message()))
	case c.seats[c.state.Turn].IsAI():
		c.phase = domain.AwaitingAIMove
		c.scheduleAI()
	default:
		c.phase = domain.AwaitingHumanMove
	}
	c.emit()
}

func (c *controller) scheduleAI() {
	generation := c.generation.Load()
	c.cancelAI = c.scheduler.Schedule(c.aiDelay, func() {
		c.playAI(generation)
	})
}

func (c *controller) playAI(generation uint64) {
	if generation != c.generation.Load() || c.phase != domain.AwaitingAIMove {
		c.logger.Debug("dropping stale ai move",
			zap.Uint64("scheduled", generation), zap.Uint64("current", c.generation.Load()))
		return
	}
	c.cancelAI = nil
	player := c.seats[c.state.Turn]
	pos := player.ChooseMove(c.state.Board)
	c.logger.Debug("ai move", zap.String("mode", string(c.state.Mode)), zap.Int("position", pos))
	status, over := c.state.ApplyMove(pos)
	c.advance(status, over)
}

func (c *controller) emit() {
	if c.present != nil {
		c.present(c.Snapshot())
	}
}
