package platform

import "testing"

func TestValidateEndpoints(t *testing.T) {
	tests := []struct {
		name    string
		paths   []string
		wantErr bool
	}{
		{
			name:    "canonical map",
			paths:   endpoints,
			wantErr: false,
		},
		{
			name:    "blank path",
			paths:   []string{"/a", ""},
			wantErr: true,
		},
		{
			name:    "relative path",
			paths:   []string{"admin/getall/users"},
			wantErr: true,
		},
		{
			// the original console carried USER_BLOCK vs BLOCK_USER style
			// duplicates ; drift must fail at startup
			name:    "duplicate path",
			paths:   []string{"/admin/user/block", "/admin/user/block"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEndpoints(tt.paths)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateEndpoints() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
