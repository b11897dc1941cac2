package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/sigmafes/sigsnakes/internal/domain"
	"github.com/sigmafes/sigsnakes/pkg/logger"
)

// Ошибки хранилища. Сравниваются через errors.Is.
var (
	ErrUserExists     = errors.New("user already exists")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("bad credentials")
)

const bcryptCost = 10

// Store - файловое хранилище учетных записей (users.json).
// В памяти держим мапу по имени, на диск пишем массив записей -
// тот же формат, что исторический users.json.
//
// Все операции потокобезопасны. Запись на диск идет под мьютексом,
// но Store никогда не вызывается из тика напрямую - только из горутин
// соединений и из фоновых сбросов счета.
type Store struct {
	mu       sync.Mutex
	path     string
	accounts map[string]*domain.Account
}

// NewStore открывает хранилище. Ошибка чтения файла не фатальна:
// трактуем как "аккаунтов еще нет" и стартуем с пустым списком.
func NewStore(path string) *Store {
	s := &Store{
		path:     path,
		accounts: make(map[string]*domain.Account),
	}

	if err := s.load(); err != nil {
		logger.Log.WithError(err).Warnf("accounts: cannot read %s, starting empty", path)
	}
	return s
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // файла еще нет - это нормальный первый запуск
		}
		return err
	}

	var list []*domain.Account
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("corrupt accounts file: %w", err)
	}
	for _, acc := range list {
		s.accounts[acc.Username] = acc
	}
	return nil
}

// persist пишет весь список на диск. Caller must hold mu.
func (s *Store) persist() error {
	list := make([]*domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		list = append(list, acc)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Find возвращает копию записи по имени
func (s *Store) Find(username string) (domain.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return domain.Account{}, false
	}
	return *acc, true
}

// Create регистрирует нового пользователя с нулевым счетом.
// Пароль хешируется bcrypt'ом, сырой пароль на диск не попадает.
func (s *Store) Create(username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[username]; ok {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.accounts[username] = &domain.Account{
		Username: username,
		Password: string(hash),
		Apples:   0,
		Role:     domain.RolePlayer,
	}
	return s.persist()
}

// VerifyPassword сверяет пароль и возвращает копию записи.
// Несуществующий пользователь и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать, какие имена заняты.
func (s *Store) VerifyPassword(username, password string) (domain.Account, error) {
	s.mu.Lock()
	acc, ok := s.accounts[username]
	s.mu.Unlock()

	if !ok {
		return domain.Account{}, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)); err != nil {
		return domain.Account{}, ErrBadCredentials
	}
	return *acc, nil
}

// SaveScore сбрасывает текущий счет игрока в запись
func (s *Store) SaveScore(username string, apples int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return ErrUserNotFound
	}
	acc.Apples = apples
	return s.persist()
}

// Update перезаписывает счет и косметику записи одним вызовом.
// Используется магазином после успешной покупки.
func (s *Store) Update(username string, apples int, colors, shapes []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return ErrUserNotFound
	}
	acc.Apples = apples
	acc.OwnedColors = append([]string(nil), colors...)
	acc.OwnedShapes = append([]string(nil), shapes...)
	return s.persist()
}

// SetRole назначает роль записи. Вызывается не из игрового протокола,
// а из админки оператора: повышение до модератора - ручное действие.
func (s *Store) SetRole(username string, role domain.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[username]
	if !ok {
		return ErrUserNotFound
	}
	acc.Role = role
	return s.persist()
}

// All возвращает копии всех записей, отсортированные по имени
func (s *Store) All() []domain.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		list = append(list, *acc)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Username < list[j].Username })
	return list
}

// Count возвращает число зарегистрированных аккаунтов (для /debug/state)
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}
