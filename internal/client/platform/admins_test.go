package platform

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suriyadlktech-jpg/Admin-Panel/infra/client/rest"
	"github.com/suriyadlktech-jpg/Admin-Panel/internal/model"
)

func testClient(t *testing.T, handle http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handle)
	t.Cleanup(srv.Close)
	api, err := rest.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("rest.NewClient: %v", err)
	}
	logs := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(logs, api, nil)
}

func TestChildAdminLookup(t *testing.T) {

	tests := []struct {
		// description of this test case
		name    string
		id      string
		listing string // GET /admin/child-admins response
		wantErr error
		want    string // resolved UserName
	}{
		{
			name: "one match",
			id:   "ca-1",
			listing: `{"admins":[
				{"childAdminId":"ca-1","userName":"helper","email":"helper@example.com","adminType":"Child_Admin"},
				{"childAdminId":"ca-2","userName":"other","email":"other@example.com","adminType":"Child_Admin"}
			]}`,
			want: "helper",
		},
		{
			name:    "no match",
			id:      "ca-404",
			listing: `{"admins":[{"childAdminId":"ca-1","userName":"helper","email":"helper@example.com","adminType":"Child_Admin"}]}`,
			wantErr: model.ErrNoRecordsFound,
		},
		{
			name: "duplicate id",
			id:   "ca-1",
			listing: `{"admins":[
				{"childAdminId":"ca-1","userName":"helper","email":"helper@example.com","adminType":"Child_Admin"},
				{"childAdminId":"ca-1","userName":"shadow","email":"shadow@example.com","adminType":"Child_Admin"}
			]}`,
			wantErr: model.ErrTooManyRecords,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.listing))
			})
			row, err := c.ChildAdmin(context.Background(), tt.id)
			if err != tt.wantErr {
				t.Fatalf("ChildAdmin: err=%v ; expect %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if row == nil || row.UserName != tt.want {
				t.Errorf("ChildAdmin: %+v ; expect user %q", row, tt.want)
			}
		})
	}
}
