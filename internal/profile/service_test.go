package profile

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
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/session"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/store/file"
)

// testService signs in against the given API handler and
// returns the profile service on top of that live session.
func testService(t *testing.T, handle http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/admin/login" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"token": "abc123",
				"admin": map[string]string{
					"userName": "root",
					"email":    "admin@example.com",
					"role":     "Admin",
				},
			})
			return
		}
		handle(w, r)
	}))
	t.Cleanup(srv.Close)

	logs := slog.New(slog.NewTextHandler(io.Discard, nil))
	broker := pubsub.NewProvider(logs)
	t.Cleanup(func() { _ = broker.Close() })

	sessions, err := session.NewService(session.ServiceOptions{
		Logs: logs,
		Store: file.NewSessionStore(logs,
			filepath.Join(t.TempDir(), "session.json"),
		),
		API:    platform.NewClient(logs, mustREST(t, srv.URL), nil),
		Broker: broker,
	})
	if err != nil {
		t.Fatalf("session.NewService: %v", err)
	}
	if err = sessions.Login(context.Background(), "admin@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	api, err := rest.NewClient(srv.URL,
		rest.WithCredentials(sessions),
	)
	if err != nil {
		t.Fatalf("rest.NewClient: %v", err)
	}
	return NewService(ServiceOptions{
		Logs:    logs,
		Session: sessions,
		API:     platform.NewClient(logs, api, sessions),
		Broker:  broker,
	})
}

func mustREST(t *testing.T, baseURL string) *rest.Client {
	t.Helper()
	api, err := rest.NewClient(baseURL)
	if err != nil {
		t.Fatalf("rest.NewClient: %v", err)
	}
	return api
}

func TestFetchProfile(t *testing.T) {
	service := testService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get/admin/profile" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"profile": map[string]string{
				"userName":    "root",
				"displayName": "Root Admin",
				"theme":       "dark",
			},
		})
	})

	data, err := service.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if data.DisplayName != "Root Admin" {
		t.Errorf("displayName: %q ; expect %q", data.DisplayName, "Root Admin")
	}
	if service.Current() != data {
		t.Error("Current ; expect fetched record cached")
	}
}

func TestUpdateFailureKeepsStale(t *testing.T) {
	var fetches int
	service := testService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			fetches++
			_ = json.NewEncoder(w).Encode(map[string]any{
				"profile": map[string]string{"userName": "root", "bio": "old"},
			})
		default:
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "phoneNumber is invalid"})
		}
	})

	ctx := context.Background()
	if _, err := service.Fetch(ctx); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	before := fetches

	got := service.Update(ctx, map[string]string{"phoneNumber": "nope"}, "")
	if got.Success {
		t.Error("Update ; expect failure result")
	}
	if got.Message != "phoneNumber is invalid" {
		t.Errorf("message: %q ; expect remote cause", got.Message)
	}
	// failed update must not trigger a refresh
	if fetches != before {
		t.Errorf("fetches: %d ; expect %d", fetches, before)
	}
	if service.Current() == nil || service.Current().Bio != "old" {
		t.Error("Current ; expect stale record untouched")
	}
}

func TestUpdateSuccessRefetches(t *testing.T) {
	var updated bool
	service := testService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			updated = true
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
		default:
			bio := "old"
			if updated {
				bio = "new"
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"profile": map[string]string{"userName": "root", "bio": bio},
			})
		}
	})

	ctx := context.Background()
	got := service.Update(ctx, map[string]string{"bio": "new"}, "")
	if !got.Success {
		t.Fatalf("Update: %+v ; expect success", got)
	}
	if data := service.Current(); data == nil || data.Bio != "new" {
		t.Errorf("Current: %+v ; expect refreshed record", service.Current())
	}
}
