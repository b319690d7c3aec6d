package hub

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/config"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/domain"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/usecase/game"
	"github.com/kiryu-dev/tic-tac-toe-ai/internal/usecase/strategy"
	"github.com/kiryu-dev/tic-tac-toe-ai/pkg/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type useCase struct {
	cfg      config.GameConfig
	sessions map[string]domain.GameUseCase
	mu       *sync.RWMutex
	logger   *zap.Logger
}

func New(cfg config.GameConfig, logger *zap.Logger) *useCase {
	return &useCase{
		cfg:      cfg,
		sessions: make(map[string]domain.GameUseCase),
		mu:       &sync.RWMutex{},
		logger:   logger,
	}
}

// Handle plays games with client until the connection closes. Each client
// gets its own board, event loop and random source.
func (u *useCase) Handle(ctx context.Context, client domain.Client) error {
	sessionUuid := uuid.NewString()
	logger := u.logger.With(zap.String("session", sessionUuid))
	lp := newLoop()
	present := func(snapshot domain.Snapshot) {
		err := client.WriteMessage(domain.Message{
			Type:    domain.GameSnapshot,
			Payload: snapshot,
		})
		if err != nil {
			logger.Warn("failed to send snapshot", zap.Error(err))
		}
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // game randomness
	controller, err := game.New(strategy.ForModes(rnd), lp, present, logger,
		game.WithMode(u.cfg.DefaultMode), game.WithAIDelay(u.cfg.AIDelay))
	if err != nil {
		return errors.WithMessage(err, "create game controller")
	}
	u.register(sessionUuid, controller)
	defer u.unregister(sessionUuid)
	logger.Info("session started", zap.String("mode", string(u.cfg.DefaultMode)))

	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		return lp.Run(ctx)
	})
	errGroup.Go(func() error {
		defer lp.Stop()
		lp.Submit(controller.Start)
		return u.readMessages(client, lp, controller, logger)
	})
	if err := errGroup.Wait(); err != nil {
		return errors.WithMessage(err, "play session")
	}
	logger.Info("session finished")
	return nil
}

func (u *useCase) readMessages(client domain.Client, lp *loop, controller domain.GameUseCase,
	logger *zap.Logger) error {
	for {
		msg, err := client.ReadMessage()
		switch {
		case errors.Is(err, domain.ErrConnectionClosed):
			return nil
		case errors.Is(err, domain.ErrEmptyMessage):
			logger.Debug("skipping empty message")
			continue
		case err != nil:
			return errors.WithMessage(err, "read message from client")
		}
		task, err := toTask(msg, controller)
		if err != nil {
			logger.Warn("skipping malformed message", zap.Error(err))
			continue
		}
		if !lp.Submit(task) {
			return nil
		}
	}
}

func toTask(msg domain.Message, controller domain.GameUseCase) (func(), error) {
	switch msg.Type {
	case domain.SelectMode:
		v, err := utils.DecodePayload[domain.SelectModePayload](msg.Payload)
		if err != nil {
			return nil, errors.WithMessage(err, "decode 'SelectModePayload'")
		}
		return func() { controller.SelectMode(v.Mode) }, nil
	case domain.ActivateCell:
		v, err := utils.DecodePayload[domain.ActivateCellPayload](msg.Payload)
		if err != nil {
			return nil, errors.WithMessage(err, "decode 'ActivateCellPayload'")
		}
		return func() { controller.ActivateCell(v.Position) }, nil
	case domain.ResetGame:
		return controller.Reset, nil
	default:
		return nil, errors.Errorf("unexpected message type '%s'", msg.Type)
	}
}

func (u *useCase) ActiveSessions() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.sessions)
}

func (u *useCase) register(sessionUuid string, controller domain.GameUseCase) {
	u.mu.Lock()
	u.sessions[sessionUuid] = controller
	u.mu.Unlock()
}

func (u *useCase) unregister(sessionUuid string) {
	u.mu.Lock()
	delete(u.sessions, sessionUuid)
	u.mu.Unlock()
}
