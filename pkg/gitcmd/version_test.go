package gitcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    string
		wantErr bool
	}{
		{
			name: "plain release",
			out:  "git version 2.39.2\n",
			want: "2.39.2",
		},
		{
			name: "vendor suffix",
			out:  "git version 2.43.0.windows.1\n",
			want: "2.43.0",
		},
		{
			name: "apple suffix",
			out:  "git version 2.39.3 (Apple Git-146)\n",
			want: "2.39.3",
		},
		{
			name:    "garbage",
			out:     "not git at all",
			wantErr: true,
		},
		{
			name:    "empty",
			out:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseVersion(tt.out)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}
