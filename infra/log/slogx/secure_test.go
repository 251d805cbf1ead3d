package slogx_test

import (
	"testing"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/log/slogx"
)

func TestSecureString(t *testing.T) {
	tests := []struct {
		name string // description of this test case
		// Named input parameters for target function.
		raw  string
		opts []slogx.SecureStringOption
		want string
	}{
		{
			name: "short",
			raw:  "short",
			opts: []slogx.SecureStringOption{},
			want: "########hort",
		},
		{
			name: "general",
			raw:  "my_secret_token_to_be_hidden",
			opts: []slogx.SecureStringOption{},
			want: "my_secre########dden",
		},
		{
			name: "bearer",
			raw:  "abc123", // token shorter than prefix+suffix
			opts: []slogx.SecureStringOption{
				slogx.SecureStringPrefix(2),
				slogx.SecureStringSuffix(2),
			},
			want: "ab########23",
		},
		{
			name: "rune",
			raw:  "0123456789abcdef",
			opts: []slogx.SecureStringOption{
				slogx.SecureStringRune('*'),
				slogx.SecureStringRuneCount(5),
			},
			want: "01234567*****cdef",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slogx.SecureString(tt.raw, tt.opts...)
			if got != tt.want {
				t.Errorf("SecureString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTokenAttr(t *testing.T) {
	attr := slogx.Token("token", "my_secret_token_to_be_hidden")
	// deferred ; mask materializes on resolve
	if got, want := attr.Value.Resolve().String(), "my_secre########dden"; got != want {
		t.Errorf("Token().Value = %v, want %v", got, want)
	}
}
