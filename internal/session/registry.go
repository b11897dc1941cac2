package session

import (
	"errors"
	"regexp"
	"sync"

	"github.com/sigmafes/sigsnakes/internal/accounts"
	"github.com/sigmafes/sigsnakes/internal/domain"
	"github.com/sigmafes/sigsnakes/pkg/logger"
)

// Ошибки валидации. Уходят только инициатору, сервер из-за них не падает.
var (
	ErrNotAuthenticated  = errors.New("login required")
	ErrBadUsername       = errors.New("username must be alphanumeric, max 16 characters")
	ErrUnknownItem       = errors.New("unknown item")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrInsufficientScore = errors.New("not enough apples")
	ErrNotOwned          = errors.New("item not owned")
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]{1,16}$`)

// PlayerSession - привязка соединения к аккаунту.
// Соединение без записи в реестре - гость: играет, но ничего не сохраняет.
type PlayerSession struct {
	Username    string
	Role        domain.Role
	OwnedColors []string
	OwnedShapes []string
}

// Registry хранит сессии по connID и посредничает между внешним
// хранилищем учетных записей и живыми сущностями.
type Registry struct {
	mu       sync.RWMutex
	store    *accounts.Store
	sessions map[string]*PlayerSession
}

func NewRegistry(store *accounts.Store) *Registry {
	return &Registry{
		store:    store,
		sessions: make(map[string]*PlayerSession),
	}
}

// Login сверяет пароль и привязывает соединение к аккаунту
func (r *Registry) Login(connID, username, password string) (domain.Account, error) {
	acc, err := r.store.VerifyPassword(username, password)
	if err != nil {
		return domain.Account{}, err
	}

	r.bind(connID, &acc)
	return acc, nil
}

// AutoLogin - проверка сохраненной сессии. Запись должна существовать,
// а запомненный клиентом счет - совпадать с хранилищем. Несовпадение
// означает устаревшие данные: клиент должен очистить localStorage.
func (r *Registry) AutoLogin(connID, username string, apples int) (domain.Account, error) {
	acc, ok := r.store.Find(username)
	if !ok || acc.Apples != apples {
		return domain.Account{}, accounts.ErrBadCredentials
	}

	r.bind(connID, &acc)
	return acc, nil
}

func (r *Registry) bind(connID string, acc *domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[connID] = &PlayerSession{
		Username:    acc.Username,
		Role:        acc.EffectiveRole(),
		OwnedColors: append([]string(nil), acc.OwnedColors...),
		OwnedShapes: append([]string(nil), acc.OwnedShapes...),
	}
}

// Register заводит новый аккаунт. Формат имени: только буквы и цифры,
// не длиннее domain.MaxUsernameLen.
func (r *Registry) Register(username, password string) error {
	if !usernameRe.MatchString(username) {
		return ErrBadUsername
	}
	return r.store.Create(username, password)
}

// Logout отвязывает соединение от аккаунта. Змейка остается жить как гость.
func (r *Registry) Logout(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, connID)
}

// Session возвращает копию сессии соединения
func (r *Registry) Session(connID string) (PlayerSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[connID]; ok {
		return *s, true
	}
	return PlayerSession{}, false
}

// Usernames возвращает срез имен всех залогиненных: connID -> username.
// Используется кодеком снапшота.
func (r *Registry) Usernames() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.sessions))
	for id, s := range r.sessions {
		out[id] = s.Username
	}
	return out
}

// CanModerate проверяет права сессии на чат-команды модерации
func (r *Registry) CanModerate(connID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[connID]
	return ok && s.Role.CanModerate()
}

// SaveScore сбрасывает счет змейки в хранилище, если соединение залогинено.
// Для гостей - no-op без ошибки: им просто нечего сохранять.
func (r *Registry) SaveScore(connID string, score int) error {
	r.mu.RLock()
	s, ok := r.sessions[connID]
	r.mu.RUnlock()
	if !ok {
		return ErrNotAuthenticated
	}
	return r.store.SaveScore(s.Username, score)
}

// FlushScore - вариант SaveScore для disconnect/shutdown: ошибки
// логируются и глотаются, состояние в памяти остается авторитетным.
func (r *Registry) FlushScore(connID string, score int) {
	if err := r.SaveScore(connID, score); err != nil && !errors.Is(err, ErrNotAuthenticated) {
		logger.Log.WithError(err).Warn("failed to flush score")
	}
}

// --- МАГАЗИН ---

// BuyColor списывает цену и добавляет цвет в коллекцию игрока
func (r *Registry) BuyColor(connID string, snake *domain.Snake, color string) error {
	price, ok := domain.ColorPrices[color]
	if !ok {
		return ErrUnknownItem
	}
	return r.buy(connID, snake, price, color, func(s *PlayerSession) *[]string {
		return &s.OwnedColors
	})
}

// BuyShape списывает цену и добавляет форму в коллекцию игрока
func (r *Registry) BuyShape(connID string, snake *domain.Snake, shape string) error {
	price, ok := domain.ShapePrices[shape]
	if !ok {
		return ErrUnknownItem
	}
	return r.buy(connID, snake, price, shape, func(s *PlayerSession) *[]string {
		return &s.OwnedShapes
	})
}

// buy - общий путь покупки: требуется логин, предмет не куплен ранее,
// хватает очков. Счет списывается атомарно, владение персистится сразу.
func (r *Registry) buy(connID string, snake *domain.Snake, price int, item string, owned func(*PlayerSession) *[]string) error {
	r.mu.Lock()
	s, ok := r.sessions[connID]
	if !ok {
		r.mu.Unlock()
		return ErrNotAuthenticated
	}

	set := owned(s)
	for _, it := range *set {
		if it == item {
			r.mu.Unlock()
			return ErrAlreadyOwned
		}
	}

	if !snake.SpendScore(price) {
		r.mu.Unlock()
		return ErrInsufficientScore
	}
	*set = append(*set, item)

	username := s.Username
	apples := snake.Score()
	colors := append([]string(nil), s.OwnedColors...)
	shapes := append([]string(nil), s.OwnedShapes...)
	r.mu.Unlock()

	// Память авторитетна: покупка состоялась, даже если диск отказал.
	// Ошибку клиенту не возвращаем - он владеет предметом; повторный
	// save доперсистит владение.
	if err := r.store.Update(username, apples, colors, shapes); err != nil {
		logger.Log.WithError(err).WithField("username", username).Warn("failed to persist purchase")
	}
	return nil
}

// OwnsColor проверяет право использовать цвет.
// Базовые цвета комнаты доступны всем без покупки.
func (r *Registry) OwnsColor(connID, color string) bool {
	if color == domain.ColorPrimary || color == domain.ColorSecondary {
		return true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[connID]
	if !ok {
		return false
	}
	for _, c := range s.OwnedColors {
		if c == color {
			return true
		}
	}
	return false
}

// OwnsShape проверяет право использовать форму
func (r *Registry) OwnsShape(connID, shape string) bool {
	if shape == domain.ShapeDefault {
		return true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[connID]
	if !ok {
		return false
	}
	for _, sh := range s.OwnedShapes {
		if sh == shape {
			return true
		}
	}
	return false
}
