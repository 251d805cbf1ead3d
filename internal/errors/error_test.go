package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		body string
		want *Error
		ok   bool
	}{
		{
			name: "error field body",
			body: `{"error":"Invalid credentials"}`,
			want: &Error{Message: "Invalid credentials"},
			ok:   true,
		},
		{
			name: "message field body",
			body: `{"message":"OTP sent"}`,
			want: &Error{Message: "OTP sent"},
			ok:   true,
		},
		{
			name: "full detail body",
			body: `{"code":409,"status":"CONFLICT","message":"duplicate"}`,
			want: &Error{Code: 409, Status: "CONFLICT", Message: "duplicate"},
			ok:   true,
		},
		{
			name: "plain text body",
			body: `upstream exploded`,
			want: &Error{Message: "upstream exploded"},
			ok:   false,
		},
		{
			name: "blank body",
			body: "   ",
			want: nil,
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.body)
			if ok != tt.ok {
				t.Errorf("Parse() ok = %v, want %v", ok, tt.ok)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("Parse() = %v, want %v", got, tt.want)
			}
			if got == nil {
				return
			}
			if got.Code != tt.want.Code || got.Status != tt.want.Status || got.Message != tt.want.Message {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFromResponse(t *testing.T) {
	// blank fields backfill from the HTTP status code
	err := FromResponse(http.StatusNotFound, `{"error":"no such user"}`)
	if err.Code != http.StatusNotFound {
		t.Errorf("code = %d, want %d", err.Code, http.StatusNotFound)
	}
	if err.Status != "NOT_FOUND" {
		t.Errorf("status = %q, want NOT_FOUND", err.Status)
	}
	if err.Message != "no such user" {
		t.Errorf("message = %q, want body detail", err.Message)
	}

	// empty body still yields a usable error
	err = FromResponse(http.StatusBadGateway, "")
	if err.Status != "BAD_GATEWAY" || err.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("FromResponse(502) = %+v", err)
	}
}

func TestErrorString(t *testing.T) {
	err := NotFound(Message("console: no such record"))
	if got, want := err.String(), "(#404) NOT_FOUND ; console: no such record"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSessionExpired(t *testing.T) {
	err := SessionExpired()
	if !IsSessionExpired(err) {
		t.Error("IsSessionExpired(SessionExpired()) = false")
	}
	if IsSessionExpired(Unauthorized()) {
		t.Error("plain 401 must not read as the canonical expiry")
	}
	// survives a string round trip through the error interface
	reparsed, _ := FromError(fmt.Errorf("%s", err.Error()))
	if !IsSessionExpired(reparsed) {
		t.Error("IsSessionExpired lost across re-parse")
	}
}
