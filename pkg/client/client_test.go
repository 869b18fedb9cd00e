package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grably/adminctl/pkg/domain"
)

// fakeSession is a minimal TokenSource + SessionClearer for client tests.
type fakeSession struct {
	mu     sync.Mutex
	token  string
	clears int
}

func (s *fakeSession) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *fakeSession) ClearAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.clears++
	return nil
}

func TestLoginStoresNothingItself(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not carry an Authorization header")
		}
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(LoginResponse{ //nolint:errcheck
			User:   &domain.Admin{ID: 1, Name: "A", Email: req.Email},
			Access: "tok123",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken(""))
	resp, err := c.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if resp.AccessToken() != "tok123" {
		t.Errorf("AccessToken() = %q, want %q", resp.AccessToken(), "tok123")
	}
	if resp.User == nil || resp.User.Email != "a@x.com" {
		t.Errorf("User = %+v, want email a@x.com", resp.User)
	}
}

func TestAccessTokenPrecedence(t *testing.T) {
	r := &LoginResponse{Access: "new", Token: "old"}
	if r.AccessToken() != "new" {
		t.Errorf("AccessToken() = %q, want accessToken field to win", r.AccessToken())
	}
	r = &LoginResponse{Token: "old"}
	if r.AccessToken() != "old" {
		t.Errorf("AccessToken() = %q, want fallback to token field", r.AccessToken())
	}
}

func TestBearerTokenAttached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok123")
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
		json.NewEncoder(w).Encode(domain.Admin{ID: 1, Name: "A"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok123"))
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me() error: %v", err)
	}
}

func TestNoTokenNoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("request without token must not carry an Authorization header")
		}
		json.NewEncoder(w).Encode(domain.Admin{}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken(""))
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me() error: %v", err)
	}
}

func TestUnauthorizedClearsSessionAndNavigates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "jwt expired"}) //nolint:errcheck
	}))
	defer srv.Close()

	sess := &fakeSession{token: "stale"}
	var navigated atomic.Int32
	c := New(srv.URL, sess, WithResponseHook(UnauthorizedHook(sess, func() {
		navigated.Add(1)
	})))

	_, err := c.ListUsers(context.Background(), ListParams{})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	// Error still reaches the caller with the 401 payload.
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(err) = false for %v", err)
	}
	if got := ErrorMessage(err); got != "jwt expired" {
		t.Errorf("ErrorMessage(err) = %q, want %q", got, "jwt expired")
	}
	if sess.Token() != "" {
		t.Error("expected session token cleared after 401")
	}
	if navigated.Load() != 1 {
		t.Errorf("navigate called %d times, want 1", navigated.Load())
	}
}

func TestNonUnauthorizedErrorsLeaveSessionAlone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "email already taken"}) //nolint:errcheck
	}))
	defer srv.Close()

	sess := &fakeSession{token: "tok"}
	c := New(srv.URL, sess, WithResponseHook(UnauthorizedHook(sess, nil)))

	_, err := c.CreateUser(context.Background(), CreateUserRequest{Name: "A", Email: "a@x.com", Password: "pw"})
	if err == nil {
		t.Fatal("expected error for 422 response")
	}
	if !IsStatus(err, http.StatusUnprocessableEntity) {
		t.Errorf("IsStatus(err, 422) = false for %v", err)
	}
	if got := ErrorMessage(err); got != "email already taken" {
		t.Errorf("ErrorMessage(err) = %q, want backend validation message", got)
	}
	if sess.Token() != "tok" {
		t.Error("non-401 error must not clear the session")
	}
	if sess.clears != 0 {
		t.Errorf("ClearAuth called %d times, want 0", sess.clears)
	}
}

func TestConcurrentUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "jwt expired"}) //nolint:errcheck
	}))
	defer srv.Close()

	sess := &fakeSession{token: "stale"}
	var navigated atomic.Int32
	c := New(srv.URL, sess, WithResponseHook(UnauthorizedHook(sess, func() {
		navigated.Add(1)
	})))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.ListOrders(context.Background(), ListParams{}); err == nil {
				t.Error("expected error for 401 response")
			}
		}()
	}
	wg.Wait()

	// Each in-flight 401 fires the hook; clearing stays idempotent.
	if sess.Token() != "" {
		t.Error("expected session cleared after concurrent 401s")
	}
	if navigated.Load() != 4 {
		t.Errorf("navigate called %d times, want 4 (once per request)", navigated.Load())
	}
}

func TestTimeoutDoesNotTouchSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(2 * time.Second)
		json.NewEncoder(w).Encode(domain.Admin{}) //nolint:errcheck
	}))
	defer srv.Close()

	sess := &fakeSession{token: "tok"}
	c := New(srv.URL, sess,
		WithTimeout(50*time.Millisecond),
		WithResponseHook(UnauthorizedHook(sess, func() {
			t.Error("navigate must not fire without a response")
		})))

	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if IsUnauthorized(err) {
		t.Error("timeout must not be reported as a 401")
	}
	if sess.Token() != "tok" {
		t.Error("timeout must leave the session untouched")
	}
}

func TestListUsersEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("search"); got != "jane" {
			t.Errorf("search param = %q, want %q", got, "jane")
		}
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"users": []domain.User{
				{ID: 1, Name: "Jane Smith", Status: domain.UserStatusActive},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	users, err := c.ListUsers(context.Background(), ListParams{Search: "jane"})
	if err != nil {
		t.Fatalf("ListUsers() error: %v", err)
	}
	if len(users) != 1 || users[0].Name != "Jane Smith" {
		t.Errorf("users = %+v, want one Jane Smith", users)
	}
}

func TestRejectShopSendsReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/shops/7/reject" || r.Method != http.MethodPatch {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if body["reason"] != "Does not meet requirements" {
			t.Errorf("reason = %q, want prefilled reject reason", body["reason"])
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	if err := c.RejectShop(context.Background(), 7, "Does not meet requirements"); err != nil {
		t.Fatalf("RejectShop() error: %v", err)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders/1001/status" || r.Method != http.MethodPatch {
			http.NotFound(w, r)
			return
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		if body["status"] != domain.OrderStatusProcessing {
			t.Errorf("status = %q, want %q", body["status"], domain.OrderStatusProcessing)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	if err := c.UpdateOrderStatus(context.Background(), 1001, domain.OrderStatusProcessing); err != nil {
		t.Fatalf("UpdateOrderStatus() error: %v", err)
	}
}

func TestMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json")) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatal("expected decode error for malformed body")
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Errorf("error = %q, want a decode failure", err)
	}
}

func TestHTTPErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom")) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, StaticToken("tok"))
	_, err := c.Me(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	if got := err.Error(); !strings.Contains(got, "HTTP 500") || !strings.Contains(got, "boom") {
		t.Errorf("error = %q, want it to contain 'HTTP 500' and 'boom'", got)
	}
}
