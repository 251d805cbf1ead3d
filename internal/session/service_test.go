package session

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/infra/pubsub"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/client/platform"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/store/file"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testService wires a Service against the given API handler
// with a file store rooted in a temp dir.
func testService(t *testing.T, handle http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handle)
	t.Cleanup(srv.Close)

	logs := testLogger()
	api, err := rest.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("rest.NewClient: %v", err)
	}
	data := file.NewSessionStore(logs,
		filepath.Join(t.TempDir(), "session.json"),
	)
	broker := pubsub.NewProvider(logs)
	t.Cleanup(func() { _ = broker.Close() })

	service, err := NewService(ServiceOptions{
		Logs:   logs,
		Store:  data,
		API:    platform.NewClient(logs, api, nil),
		Broker: broker,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	// production wiring: a 401 force-expires the session owner
	api.OnUnauthorized(service.Expire)
	return service, srv
}

func TestLoginPersistsGrant(t *testing.T) {
	service, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/admin/login" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["identifier"] != "admin@example.com" || creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "abc123",
			"admin": map[string]string{
				"userName": "root",
				"email":    "admin@example.com",
				"role":     "Admin",
			},
			"grantedPermissions": []string{},
		})
	})

	err := service.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	data := service.Current()
	if data == nil {
		t.Fatal("Current( <nil> ) ; expect session")
	}
	if data.Token != "abc123" {
		t.Errorf("token: %q ; expect %q", data.Token, "abc123")
	}
	if data.Identity.UserName != "root" {
		t.Errorf("user: %q ; expect %q", data.Identity.UserName, "root")
	}
	if data.Identity.Role != model.RoleAdmin {
		t.Errorf("role: %q ; expect %q", data.Identity.Role, model.RoleAdmin)
	}
	if service.Token() != "abc123" {
		t.Errorf("TokenSource: %q ; expect %q", service.Token(), "abc123")
	}
	if service.Err() != nil {
		t.Errorf("Err: %v ; expect <nil>", service.Err())
	}
}

func TestLoginFailureKeepsState(t *testing.T) {
	service, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
	})

	err := service.Login(context.Background(), "admin@example.com", "wrong")
	if err == nil {
		t.Fatal("Login( wrong ) ; expect error")
	}
	if service.Current() != nil {
		t.Error("Current ; expect signed out after failed login")
	}
	if service.Err() == nil {
		t.Error("Err ; expect last failure recorded")
	}
}

func TestFailedReloginKeepsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "abc123",
			"admin": map[string]string{
				"userName": "root",
				"email":    "admin@example.com",
				"role":     "Admin",
			},
		})
	}))
	t.Cleanup(srv.Close)

	logs := testLogger()
	api, err := rest.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("rest.NewClient: %v", err)
	}
	data := file.NewSessionStore(logs,
		filepath.Join(t.TempDir(), "session.json"),
	)
	broker := pubsub.NewProvider(logs)
	t.Cleanup(func() { _ = broker.Close() })

	service, err := NewService(ServiceOptions{
		Logs:   logs,
		Store:  data,
		API:    platform.NewClient(logs, api, nil),
		Broker: broker,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	api.OnUnauthorized(service.Expire)

	ctx := context.Background()
	if err = service.Login(ctx, "admin@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	// a rejected password is the server's verdict on the NEW credentials ;
	// the current grant stays intact, in memory and on disk
	err = service.Login(ctx, "admin@example.com", "wrong")
	if err == nil {
		t.Fatal("Login( wrong ) ; expect error")
	}
	if errors.IsSessionExpired(err) {
		t.Errorf("Login( wrong ) = %v ; expect server's own error", err)
	}
	if fault, ok := errors.FromError(err); !ok || fault.Message != "Invalid credentials" {
		t.Errorf("Login( wrong ) = %v ; expect message %q", err, "Invalid credentials")
	}

	if got := service.Current(); got == nil || got.Token != "abc123" {
		t.Fatalf("Current: %+v ; expect prior session intact", got)
	}
	saved, err := data.Load()
	if err != nil || saved == nil || saved.Token != "abc123" {
		t.Fatalf("Load: %+v, %v ; expect persisted session intact", saved, err)
	}
}

func TestLogoutIdempotent(t *testing.T) {
	service, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "abc123",
			"admin": map[string]string{
				"userName": "root",
				"email":    "admin@example.com",
				"role":     "Admin",
			},
		})
	})

	ctx := context.Background()
	if err := service.Login(ctx, "admin@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	// twice ; second run is a no-op, not a failure
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := service.Logout(ctx); err != nil {
		t.Fatalf("Logout( again ): %v", err)
	}
	if service.Current() != nil {
		t.Error("Current ; expect signed out")
	}
	if service.Token() != "" {
		t.Errorf("Token: %q ; expect blank", service.Token())
	}
}

func TestCreateChildAdminGuard(t *testing.T) {
	var called bool
	service, _ := testService(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "created"})
	})

	ctx := context.Background()
	tests := []struct {
		// description of this test case
		name    string
		account model.RegisterAdmin
		wantErr bool
	}{
		{
			name: "child admin type accepted",
			account: model.RegisterAdmin{
				UserName:  "helper",
				Email:     "helper@example.com",
				Password:  "secret",
				AdminType: model.RoleChildAdmin,
			},
		},
		{
			name: "admin type rejected before network",
			account: model.RegisterAdmin{
				UserName:  "boss",
				Email:     "boss@example.com",
				Password:  "secret",
				AdminType: model.RoleAdmin,
			},
			wantErr: true,
		},
		{
			name: "blank username rejected",
			account: model.RegisterAdmin{
				AdminType: model.RoleChildAdmin,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			_, err := service.CreateChildAdmin(ctx, tt.account)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateChildAdmin: err=%v ; wantErr=%v", err, tt.wantErr)
			}
			if tt.wantErr && called {
				t.Error("rejected payload still reached the network")
			}
		})
	}
}

func TestHydrateFromStore(t *testing.T) {
	logs := testLogger()
	path := filepath.Join(t.TempDir(), "session.json")
	data := file.NewSessionStore(logs, path)
	saved := &model.Session{
		Identity: model.Identity{
			UserName: "root",
			Email:    "admin@example.com",
			Role:     model.RoleAdmin,
		},
		Token: "abc123",
	}
	if err := data.Save(saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	broker := pubsub.NewProvider(logs)
	t.Cleanup(func() { _ = broker.Close() })
	api, err := rest.NewClient("http://localhost:5000/api")
	if err != nil {
		t.Fatalf("rest.NewClient: %v", err)
	}
	service, err := NewService(ServiceOptions{
		Logs:   logs,
		Store:  data,
		API:    platform.NewClient(logs, api, nil),
		Broker: broker,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	got := service.Current()
	if got == nil || got.Token != "abc123" {
		t.Fatalf("Current: %+v ; expect restored session", got)
	}
}
