package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suriyadlktech-jpg/Admin-Panel/internal/errors"
)

func TestBearerInjection(t *testing.T) {

	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	token := "abc123"
	api, err := NewClient(srv.URL,
		WithCredentials(TokenSourceFunc(func() string { return token })),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err = api.Get(context.Background(), "/ping", nil, nil); err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if want := "Bearer abc123"; got != want {
		t.Errorf("Authorization = %q, want %q", got, want)
	}

	// signed out ; no header attached
	token = ""
	if err = api.Get(context.Background(), "/ping", nil, nil); err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if got != "" {
		t.Errorf("Authorization = %q, want none", got)
	}
}

func TestUnauthorizedHook(t *testing.T) {

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"jwt expired"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	var expired int
	api, err := NewClient(srv.URL,
		WithUnauthorized(func() { expired++ }),
	)
	if err != nil {
		t.Fatal(err)
	}

	err = api.Get(context.Background(), "/admin/getall/users", nil, nil)
	if !errors.IsSessionExpired(err) {
		t.Errorf("Get() = %v, want canonical session-expired", err)
	}
	if expired != 1 {
		t.Errorf("expiry hook ran %d times, want 1", expired)
	}
}

func TestAnonymousRequest(t *testing.T) {

	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		http.Error(w, `{"error":"Invalid credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	var expired int
	api, err := NewClient(srv.URL,
		WithCredentials(TokenSourceFunc(func() string { return "abc123" })),
		WithUnauthorized(func() { expired++ }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// sign-in style call: no bearer attached, 401 keeps the server's error
	err = api.Post(Anonymous(context.Background()), "/auth/admin/login", nil, nil)
	if got != "" {
		t.Errorf("Authorization = %q, want none", got)
	}
	if errors.IsSessionExpired(err) {
		t.Errorf("Post() = %v, want server's own error", err)
	}
	fault, ok := errors.FromError(err)
	if !ok || fault == nil || fault.Message != "Invalid credentials" {
		t.Errorf("Post() = %v, want message %q", err, "Invalid credentials")
	}
	if expired != 0 {
		t.Errorf("expiry hook ran %d times, want 0", expired)
	}
}

func TestErrorDecoding(t *testing.T) {

	tests := []struct {
		name string
		code int
		body string
		want string // Error.Message
	}{
		{
			name: "error field",
			code: http.StatusBadRequest,
			body: `{"error":"identifier required"}`,
			want: "identifier required",
		},
		{
			name: "message field",
			code: http.StatusConflict,
			body: `{"message":"category exists"}`,
			want: "category exists",
		},
		{
			name: "plain text",
			code: http.StatusInternalServerError,
			body: "boom",
			want: "boom",
		},
		{
			name: "empty body",
			code: http.StatusServiceUnavailable,
			body: "",
			want: "Service Unavailable",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			api, err := NewClient(srv.URL)
			if err != nil {
				t.Fatal(err)
			}
			err = api.Get(context.Background(), "/x", nil, nil)
			fault, ok := errors.FromError(err)
			if !ok || fault == nil {
				t.Fatalf("Get() = %v, want *errors.Error", err)
			}
			if fault.Code != int32(tt.code) {
				t.Errorf("Code = %d, want %d", fault.Code, tt.code)
			}
			if fault.Message != tt.want {
				t.Errorf("Message = %q, want %q", fault.Message, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {

	api, err := NewClient("http://localhost:5000/api/")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := api.resolve("/auth/admin/login", nil), "http://localhost:5000/api/auth/admin/login"; got != want {
		t.Errorf("resolve() = %q, want %q", got, want)
	}
}
