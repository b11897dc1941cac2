package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sigmafes/sigsnakes/internal/accounts"
	"github.com/sigmafes/sigsnakes/internal/domain"
	"github.com/sigmafes/sigsnakes/internal/engine/handlers"
	"github.com/sigmafes/sigsnakes/internal/engine/handlers/account"
	"github.com/sigmafes/sigsnakes/internal/engine/handlers/actions"
	"github.com/sigmafes/sigsnakes/internal/network"
	"github.com/sigmafes/sigsnakes/internal/session"
	"github.com/sigmafes/sigsnakes/pkg/api"
	"github.com/sigmafes/sigsnakes/pkg/logger"
)

// ErrServerFull - достигнут лимит игроков, соединение отклоняется
var ErrServerFull = errors.New("server full")

// GameService - ядро: авторитетный стейт, тикер симуляции,
// реестр сессий и диспетчер команд клиентов.
type GameService struct {
	Cfg      Config
	State    *domain.GameState
	Registry *session.Registry
	Hub      *network.Broadcaster

	handlers map[domain.ActionType]handlers.HandlerFunc

	done chan struct{}
}

func NewService(cfg Config, store *accounts.Store) *GameService {
	rng := rand.New(rand.NewSource(cfg.Seed))

	s := &GameService{
		Cfg:      cfg,
		State:    domain.NewGameState(cfg.TileCount, cfg.MaxFood, rng),
		Registry: session.NewRegistry(store),
		Hub:      network.NewBroadcaster(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		done:     make(chan struct{}),
	}

	s.registerHandlers()
	return s
}

func (gs *GameService) registerHandlers() {
	gs.handlers[domain.ActionDirection] = handlers.WithPayload(actions.HandleDirection)
	gs.handlers[domain.ActionPause] = handlers.WithPayload(actions.HandlePause)
	gs.handlers[domain.ActionRevive] = handlers.WithEmptyPayload(actions.HandleRevive)
	gs.handlers[domain.ActionChatMessage] = handlers.WithPayload(actions.HandleChat)

	gs.handlers[domain.ActionLogin] = handlers.WithPayload(account.HandleLogin)
	gs.handlers[domain.ActionAutoLogin] = handlers.WithPayload(account.HandleAutoLogin)
	gs.handlers[domain.ActionRegister] = handlers.WithPayload(account.HandleRegister)
	gs.handlers[domain.ActionSaveProgress] = handlers.WithEmptyPayload(account.HandleSaveProgress)
	gs.handlers[domain.ActionLogout] = handlers.WithEmptyPayload(account.HandleLogout)

	gs.handlers[domain.ActionBuyColor] = handlers.WithPayload(account.HandleBuyColor)
	gs.handlers[domain.ActionBuyShape] = handlers.WithPayload(account.HandleBuyShape)
	gs.handlers[domain.ActionUseColor] = handlers.WithPayload(account.HandleUseColor)
	gs.handlers[domain.ActionUseShape] = handlers.WithPayload(account.HandleUseShape)
}

// Start запускает тикер симуляции
func (gs *GameService) Start() {
	go gs.runTickLoop()
}

// Stop останавливает тикер и сбрасывает счета всех залогиненных
func (gs *GameService) Stop() {
	close(gs.done)

	gs.State.RLock()
	scores := make(map[string]int, len(gs.State.Snakes))
	for id, s := range gs.State.Snakes {
		scores[id] = s.Score()
	}
	gs.State.RUnlock()

	for id, score := range scores {
		gs.Registry.FlushScore(id, score)
	}
}

func (gs *GameService) runTickLoop() {
	logger.Log.Infof("Game loop started (tick %v)", gs.Cfg.TickInterval)

	ticker := time.NewTicker(gs.Cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			gs.tick()
			gs.BroadcastUpdate()
		case <-gs.done:
			logger.Log.Info("Game loop stopped")
			return
		}
	}
}

// Connect регистрирует новое соединение: атомарная подписка в Hub с
// проверкой лимита, спавн змейки, персональный "init" с yourId.
func (gs *GameService) Connect(connID string) (chan api.ServerResponse, error) {
	ch, err := gs.Hub.Register(connID, gs.Cfg.MaxPlayers)
	if err != nil {
		return nil, ErrServerFull
	}

	// Спавн и отправка init под одним write-lock: BroadcastUpdate тика
	// берет RLock и потому не может втиснуть "update" перед "init".
	// До спавна тик это соединение не видит вовсе.
	gs.State.Lock()
	gs.State.SpawnSnake(connID)
	gs.Hub.SendTo(connID, *gs.buildSnapshotLocked(connID, "init"))
	gs.State.Unlock()

	logger.Log.WithField("conn_id", connID).Info("Player connected")
	return ch, nil
}

// Disconnect - безусловный teardown соединения: сброс счета (если был
// логин), удаление сущности, отписка, внеочередной снапшот остальным.
func (gs *GameService) Disconnect(connID string) {
	gs.State.Lock()
	s, ok := gs.State.Snakes[connID]
	var score int
	if ok {
		score = s.Score()
		delete(gs.State.Snakes, connID)
	}
	gs.State.Unlock()

	if ok {
		// Строго до Logout: сброс идет по сессии соединения,
		// без нее сохранять не за кого
		gs.Registry.FlushScore(connID, score)
	}
	gs.Registry.Logout(connID)
	gs.Hub.Unregister(connID)

	logger.Log.WithField("conn_id", connID).Info("Player disconnected")
	gs.BroadcastUpdate()
}

// failEvents - события-отказы протокола по типу команды.
// Команды без своего "-fail" события при ошибке просто логируются.
var failEvents = map[domain.ActionType]string{
	domain.ActionLogin:     "login-fail",
	domain.ActionAutoLogin: "auto-login-fail",
	domain.ActionRegister:  "register-fail",
	domain.ActionBuyColor:  "buy-color-fail",
	domain.ActionBuyShape:  "buy-shape-fail",
	domain.ActionUseColor:  "use-color-fail",
	domain.ActionUseShape:  "use-shape-fail",
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Выполняется в горутине соединения; ошибка одной команды никогда
// не влияет на симуляцию других игроков.
func (gs *GameService) ProcessCommand(connID string, external api.ClientCommand) {
	action := domain.ParseAction(external.Action)
	if action == domain.ActionUnknown {
		logger.Log.WithField("action", external.Action).Debug("Unknown action")
		return
	}

	handler, ok := gs.handlers[action]
	if !ok {
		return
	}

	gs.State.RLock()
	actor := gs.State.Snakes[connID]
	gs.State.RUnlock()
	if actor == nil {
		// Гонка с teardown: соединение уже разобрано
		return
	}

	ctx := handlers.Context{
		State:    gs.State,
		Registry: gs.Registry,
		Hub:      gs.Hub,
		ConnID:   connID,
		Actor:    actor,
	}

	result, err := handler(ctx, external.Payload)
	if err != nil {
		if event, ok := failEvents[action]; ok {
			gs.Hub.SendTo(connID, api.ServerResponse{Type: event, Message: err.Error()})
		}
		logger.Log.WithError(err).WithFields(logrus.Fields{
			"conn_id": connID,
			"action":  action.String(),
		}).Debug("Command rejected")
		return
	}

	if result.Reply != nil {
		gs.Hub.SendTo(connID, *result.Reply)
	}
	if result.Broadcast != nil {
		gs.Hub.Broadcast(*result.Broadcast)
	}
	if result.PushState {
		gs.BroadcastUpdate()
	}
}
