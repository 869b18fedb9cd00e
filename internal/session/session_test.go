package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/grably/adminctl/pkg/domain"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "auth.json"))
}

func testAdmin() *domain.Admin {
	return &domain.Admin{ID: 1, Name: "A", Email: "a@x.com"}
}

// invariant: authenticated iff user and token are both present.
func checkInvariant(t *testing.T, s *Store) {
	t.Helper()
	want := s.User() != nil && s.Token() != ""
	if got := s.Authenticated(); got != want {
		t.Errorf("Authenticated() = %v, want %v (user=%v token=%q)", got, want, s.User(), s.Token())
	}
}

func TestSetClearUpdateInvariant(t *testing.T) {
	s := testStore(t)
	checkInvariant(t, s)

	if err := s.SetAuth(testAdmin(), "tok123"); err != nil {
		t.Fatalf("SetAuth() error: %v", err)
	}
	checkInvariant(t, s)
	if !s.Authenticated() {
		t.Fatal("expected authenticated after SetAuth")
	}

	if err := s.UpdateUser(&domain.Admin{ID: 1, Name: "B", Email: "b@x.com"}); err != nil {
		t.Fatalf("UpdateUser() error: %v", err)
	}
	checkInvariant(t, s)
	if s.Token() != "tok123" {
		t.Errorf("UpdateUser changed token: got %q", s.Token())
	}
	if !s.Authenticated() {
		t.Error("UpdateUser changed authenticated flag")
	}
	if got := s.User().Name; got != "B" {
		t.Errorf("User().Name = %q, want %q", got, "B")
	}

	if err := s.ClearAuth(); err != nil {
		t.Fatalf("ClearAuth() error: %v", err)
	}
	checkInvariant(t, s)
	if s.Authenticated() || s.User() != nil || s.Token() != "" {
		t.Error("expected empty session after ClearAuth")
	}
}

func TestClearAuthIdempotent(t *testing.T) {
	s := testStore(t)
	if err := s.ClearAuth(); err != nil {
		t.Fatalf("ClearAuth() on empty store error: %v", err)
	}
	if err := s.ClearAuth(); err != nil {
		t.Fatalf("second ClearAuth() error: %v", err)
	}
	// An untouched store never writes its file.
	if _, err := os.Stat(s.path); !os.IsNotExist(err) {
		t.Error("ClearAuth on empty store should not create the session file")
	}
}

func TestReloadRestoresSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	s := NewStore(path)
	if err := s.SetAuth(testAdmin(), "tok123"); err != nil {
		t.Fatalf("SetAuth() error: %v", err)
	}

	// Simulate a process restart: fresh store, same file.
	s2 := NewStore(path)
	if err := s2.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !s2.Authenticated() {
		t.Fatal("expected authenticated after reload")
	}
	if s2.Token() != "tok123" {
		t.Errorf("Token() = %q, want %q", s2.Token(), "tok123")
	}
	u := s2.User()
	if u == nil || u.ID != 1 || u.Name != "A" || u.Email != "a@x.com" {
		t.Errorf("User() = %+v, want id=1 name=A email=a@x.com", u)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() with no file error: %v", err)
	}
	if s.Authenticated() {
		t.Error("expected unauthenticated store for missing file")
	}
}

func TestLoadHalfWrittenSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth.json")
	// Token without user must not rehydrate as authenticated.
	if err := os.WriteFile(path, []byte(`{"user":null,"token":"tok","isAuthenticated":true}`), 0600); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Authenticated() || s.Token() != "" {
		t.Error("half-written session must rehydrate as cleared")
	}
}

func TestConcurrentClear(t *testing.T) {
	s := testStore(t)
	if err := s.SetAuth(testAdmin(), "tok"); err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.ClearAuth(); err != nil {
				t.Errorf("concurrent ClearAuth() error: %v", err)
			}
		}()
	}
	wg.Wait()
	if s.Authenticated() || s.User() != nil || s.Token() != "" {
		t.Error("expected cleared session after concurrent ClearAuth calls")
	}
}

func TestTokenExpiry(t *testing.T) {
	s := testStore(t)

	if _, ok := s.TokenExpiry(); ok {
		t.Error("expected no expiry for empty token")
	}

	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetAuth(testAdmin(), tok); err != nil {
		t.Fatal(err)
	}

	got, ok := s.TokenExpiry()
	if !ok {
		t.Fatal("expected expiry for JWT token")
	}
	if !got.Equal(exp) {
		t.Errorf("TokenExpiry() = %v, want %v", got, exp)
	}

	// Opaque tokens just report no expiry.
	if err := s.SetAuth(testAdmin(), "not-a-jwt"); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.TokenExpiry(); ok {
		t.Error("expected no expiry for opaque token")
	}
}
