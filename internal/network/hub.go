package network

import (
	"errors"
	"sync"

	"github.com/sigmafes/sigsnakes/pkg/api"
)

// ErrRoomFull - лимит подписчиков достигнут, регистрация отклонена
var ErrRoomFull = errors.New("room is full")

// Broadcaster занимается только рассылкой событий подписчикам.
// Подписчик - одно websocket-соединение (connID).
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: connID -> личный канал соединения
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для соединения. Проверка лимита и
// вставка идут одной критической секцией: параллельные подключения
// не могут вдвоем проскочить последнее свободное место.
// limit <= 0 означает "без лимита".
func (b *Broadcaster) Register(connID string, limit int) (chan api.ServerResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	old, existed := b.subscribers[connID]
	if !existed && limit > 0 && len(b.subscribers) >= limit {
		return nil, ErrRoomFull
	}
	// Повторная регистрация того же connID заменяет канал, не занимая
	// дополнительного места
	if existed {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[connID] = ch
	return ch, nil
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[connID]; ok {
		close(ch)
		delete(b.subscribers, connID)
	}
}

// SendTo отправляет событие конкретному соединению (Unicast)
func (b *Broadcaster) SendTo(connID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[connID]; ok {
		select {
		case ch <- msg:
		default:
			// Пропускаем медленных клиентов
		}
	}
}

// Broadcast отправляет событие всем (чат, server-wide анонсы)
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных соединений (/debug/state).
// Для проверки лимита НЕ годится: между чтением и Register есть окно,
// лимит применяется внутри Register.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
