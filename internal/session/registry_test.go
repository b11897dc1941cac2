package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sigmafes/sigsnakes/internal/accounts"
	"github.com/sigmafes/sigsnakes/internal/domain"
)

func setupRegistryTest(t *testing.T) (*Registry, *accounts.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	store := accounts.NewStore(path)
	return NewRegistry(store), store, path
}

func TestRegister_UsernameFormat(t *testing.T) {
	r, _, _ := setupRegistryTest(t)

	cases := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"символ в имени", "bob!", ErrBadUsername},
		{"пустое имя", "", ErrBadUsername},
		{"длиннее лимита", "abcdefghijklmnopq", ErrBadUsername},
		{"валидное имя", "bob", nil},
		{"ровно лимит", "abcdefghijklmnop", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := r.Register(tc.username, "pw")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Register(%q) err = %v, want %v", tc.username, err, tc.wantErr)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	r, _, _ := setupRegistryTest(t)

	if err := r.Register("bob", "pw"); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := r.Register("bob", "other"); !errors.Is(err, accounts.ErrUserExists) {
		t.Errorf("duplicate Register err = %v, want ErrUserExists", err)
	}
}

func TestLogin_BindsSession(t *testing.T) {
	r, _, _ := setupRegistryTest(t)
	if err := r.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}

	if _, err := r.Login("c1", "alice", "wrong"); err == nil {
		t.Fatal("wrong password must fail")
	}
	if _, ok := r.Session("c1"); ok {
		t.Fatal("failed login must not bind a session")
	}

	acc, err := r.Login("c1", "alice", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if acc.Username != "alice" {
		t.Errorf("account username = %q", acc.Username)
	}

	s, ok := r.Session("c1")
	if !ok || s.Username != "alice" {
		t.Errorf("session = %+v, ok = %v", s, ok)
	}

	r.Logout("c1")
	if _, ok := r.Session("c1"); ok {
		t.Error("session must be gone after Logout")
	}
}

func TestAutoLogin_ApplesMustMatch(t *testing.T) {
	r, store, _ := setupRegistryTest(t)
	if err := r.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveScore("alice", 5); err != nil {
		t.Fatal(err)
	}

	if _, err := r.AutoLogin("c1", "alice", 3); err == nil {
		t.Error("stale apples must fail auto-login")
	}
	if _, err := r.AutoLogin("c1", "nobody", 0); err == nil {
		t.Error("unknown user must fail auto-login")
	}
	if _, err := r.AutoLogin("c1", "alice", 5); err != nil {
		t.Errorf("matching auto-login failed: %v", err)
	}
}

func TestBuy_RequiresLogin(t *testing.T) {
	r, _, _ := setupRegistryTest(t)
	snake := &domain.Snake{ID: "c1"}
	snake.SetScore(100)

	if err := r.BuyColor("c1", snake, "#FF0000"); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("guest purchase err = %v, want ErrNotAuthenticated", err)
	}
	if snake.Score() != 100 {
		t.Error("failed purchase must not spend apples")
	}
}

func TestBuy_InsufficientScore(t *testing.T) {
	r, _, _ := setupRegistryTest(t)
	if err := r.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Login("c1", "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	snake := &domain.Snake{ID: "c1"}
	snake.SetScore(domain.PriceBasic - 1)

	if err := r.BuyColor("c1", snake, "#FF0000"); !errors.Is(err, ErrInsufficientScore) {
		t.Fatalf("err = %v, want ErrInsufficientScore", err)
	}
	if snake.Score() != domain.PriceBasic-1 {
		t.Error("balance changed on a failed purchase")
	}
	if r.OwnsColor("c1", "#FF0000") {
		t.Error("ownership granted on a failed purchase")
	}
}

func TestBuy_PersistsOwnership(t *testing.T) {
	r, _, path := setupRegistryTest(t)
	if err := r.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Login("c1", "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	snake := &domain.Snake{ID: "c1"}
	snake.SetScore(domain.PricePremium + 3)

	if err := r.BuyColor("c1", snake, "gradient"); err != nil {
		t.Fatalf("BuyColor failed: %v", err)
	}
	if snake.Score() != 3 {
		t.Errorf("score after purchase = %d, want 3", snake.Score())
	}
	if !r.OwnsColor("c1", "gradient") {
		t.Error("buyer must own the color")
	}

	// Повторная покупка того же предмета
	if err := r.BuyColor("c1", snake, "gradient"); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("repeat purchase err = %v, want ErrAlreadyOwned", err)
	}

	// Владение переживает рестарт: свежее хранилище с того же файла
	reloaded := accounts.NewStore(path)
	acc, ok := reloaded.Find("alice")
	if !ok {
		t.Fatal("account lost after reload")
	}
	if acc.Apples != 3 {
		t.Errorf("persisted apples = %d, want 3", acc.Apples)
	}
	if len(acc.OwnedColors) != 1 || acc.OwnedColors[0] != "gradient" {
		t.Errorf("persisted colors = %v", acc.OwnedColors)
	}
}

func TestBuy_SucceedsWhenPersistFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	store := accounts.NewStore(filepath.Join(dir, "users.json"))
	r := NewRegistry(store)

	if err := r.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Login("c1", "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	snake := &domain.Snake{ID: "c1"}
	snake.SetScore(domain.PriceBasic)

	// Диск отказывает: каталога с файлом больше нет
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}

	// Память авторитетна: клиент владеет предметом, счет списан,
	// ответ - успех, а не buy-fail за уже состоявшуюся покупку
	if err := r.BuyColor("c1", snake, "#FF0000"); err != nil {
		t.Fatalf("BuyColor with failing disk = %v, want nil", err)
	}
	if !r.OwnsColor("c1", "#FF0000") {
		t.Error("buyer must own the color")
	}
	if snake.Score() != 0 {
		t.Errorf("score = %d, want 0", snake.Score())
	}
}

func TestBuy_UnknownItem(t *testing.T) {
	r, _, _ := setupRegistryTest(t)
	snake := &domain.Snake{ID: "c1"}

	if err := r.BuyColor("c1", snake, "#123456"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
	if err := r.BuyShape("c1", snake, "dodecahedron"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("err = %v, want ErrUnknownItem", err)
	}
}

func TestOwns_BaseItemsAreFree(t *testing.T) {
	r, _, _ := setupRegistryTest(t)

	// Гость без сессии: базовые цвета и форма доступны, остальное нет
	if !r.OwnsColor("c1", domain.ColorPrimary) || !r.OwnsColor("c1", domain.ColorSecondary) {
		t.Error("base colors must be free for everyone")
	}
	if !r.OwnsShape("c1", domain.ShapeDefault) {
		t.Error("default shape must be free for everyone")
	}
	if r.OwnsColor("c1", "gradient") || r.OwnsShape("c1", "star") {
		t.Error("guest must not own premium items")
	}
}

func TestCanModerate(t *testing.T) {
	r, store, _ := setupRegistryTest(t)
	if err := r.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Login("c1", "alice", "secret"); err != nil {
		t.Fatal(err)
	}

	if r.CanModerate("c1") {
		t.Error("plain player must not moderate")
	}
	if r.CanModerate("nobody") {
		t.Error("guest must not moderate")
	}

	// Роль выставляется в хранилище; действует после перелогина
	if err := store.SetRole("alice", domain.RoleModerator); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Login("c1", "alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if !r.CanModerate("c1") {
		t.Error("moderator must moderate after relogin")
	}
}

func TestSaveScore_GuestIsError(t *testing.T) {
	r, store, _ := setupRegistryTest(t)

	if err := r.SaveScore("c1", 5); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("guest SaveScore err = %v, want ErrNotAuthenticated", err)
	}
	// FlushScore глотает ErrNotAuthenticated молча
	r.FlushScore("c1", 5)

	if err := r.Register("alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Login("c1", "alice", "secret"); err != nil {
		t.Fatal(err)
	}
	if err := r.SaveScore("c1", 42); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	acc, _ := store.Find("alice")
	if acc.Apples != 42 {
		t.Errorf("stored apples = %d, want 42", acc.Apples)
	}
}
