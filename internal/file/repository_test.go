package file

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWhere(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		want     string
		wantArgs []interface{}
	}{
		{
			name:   "empty filter",
			filter: Filter{},
			want:   "",
		},
		{
			name:     "by id",
			filter:   Filter{ID: "f1"},
			want:     "id = $1",
			wantArgs: []interface{}{"f1"},
		},
		{
			name:     "by id and owner",
			filter:   Filter{ID: "f1", UserID: "u1"},
			want:     "id = $1 AND user_id = $2",
			wantArgs: []interface{}{"f1", "u1"},
		},
		{
			name:     "by owner and parent",
			filter:   Filter{UserID: "u1", ParentID: "0"},
			want:     "user_id = $1 AND parent_id = $2",
			wantArgs: []interface{}{"u1", "0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildWhere(tt.filter)
			require.Equal(t, tt.want, where)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}
