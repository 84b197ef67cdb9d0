package mirror

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cperrin88/gitmirror/pkg/errors"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAlias string
		wantPath  string
		wantErr   bool
	}{
		{name: "simple", input: "origin/linux", wantAlias: "origin", wantPath: "linux"},
		{name: "nested path", input: "origin/kernel/git/torvalds/linux", wantAlias: "origin", wantPath: "kernel/git/torvalds/linux"},
		{name: "no separator", input: "linux", wantErr: true},
		{name: "empty alias", input: "/linux", wantErr: true},
		{name: "empty path", input: "origin/", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias, path, err := Split(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrBadName)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlias, alias)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	names := []string{
		"origin/linux",
		"origin/kernel/git/torvalds/linux.git",
		"kernel/path with spaces",
		"gh/user/repo+plus",
		"gh/100%25weird",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			encoded := Encode(name)
			assert.NotContains(t, encoded, "/", "encoded identity must be a single path component")

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, name, decoded)
		})
	}
}

func TestDecodeRejectsBadEscapes(t *testing.T) {
	_, err := Decode("origin%2")
	assert.ErrorIs(t, err, errors.ErrBadName)
}

func TestEncodeIsDeterministic(t *testing.T) {
	assert.Equal(t, Encode("origin/linux"), Encode("origin/linux"))
	assert.True(t, strings.Contains(Encode("origin/linux"), "%2F"))
}
