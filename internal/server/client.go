package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/sigmafes/sigsnakes/internal/engine"
	"github.com/sigmafes/sigsnakes/pkg/api"
	"github.com/sigmafes/sigsnakes/pkg/logger"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и GameService
type Client struct {
	Game   *engine.GameService
	Conn   *websocket.Conn
	Send   chan api.ServerResponse
	ConnID string

	// done закрывает writePump на выходе. Снимает пересылку из Hub
	// с блокировки на заполненном Send, когда писать уже некому.
	done chan struct{}
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game:   game,
		Conn:   conn,
		Send:   make(chan api.ServerResponse, 256),
		ConnID: uuid.NewString(),
		done:   make(chan struct{}),
	}
}

// forwardUpdates гонит события из личного канала Hub в writePump.
// Завершается либо по закрытию канала Hub (Unregister при teardown),
// либо по done, если writePump умер и Send больше никто не вычитывает.
func (c *Client) forwardUpdates(updates chan api.ServerResponse) {
	defer close(c.Send)
	for msg := range updates {
		select {
		case c.Send <- msg:
		case <-c.done:
			return
		}
	}
}

// readPump читает команды от клиента
func (c *Client) readPump() {
	registered := false

	defer func() {
		if registered {
			// Безусловный teardown: сущность удаляется, счет сбрасывается,
			// что бы ни происходило с этим соединением до разрыва
			c.Game.Disconnect(c.ConnID)
		}
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// 1. РЕГИСТРАЦИЯ В ИГРЕ (спавн змейки + "init" с yourId)
	updates, err := c.Game.Connect(c.ConnID)
	if err != nil {
		if errors.Is(err, engine.ErrServerFull) {
			// Сообщаем причину и немедленно рвем соединение
			c.Send <- api.ServerResponse{Type: "server-full"}
		}
		close(c.Send)
		return
	}
	registered = true

	// 2. ПЕРЕСЫЛКА ОБНОВЛЕНИЙ из Hub в writePump
	go c.forwardUpdates(updates)

	// 3. ЦИКЛ ЧТЕНИЯ КОМАНД
	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Errorf("WS Error: %v", err)
			}
			break
		}
		c.Game.ProcessCommand(c.ConnID, cmd)
	}
}

// writePump отправляет данные клиенту + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		close(c.done)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
