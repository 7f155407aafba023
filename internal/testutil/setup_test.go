package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/prefkit/pkg/types"
)

func TestSetupFs(t *testing.T) {
	fs := SetupFs(t, map[string]string{
		"/cfg/acme.test/demo.prefs": Lines("[.]", "k:v"),
	})
	assert.True(t, Exists(t, fs, "/cfg/acme.test/demo.prefs"))
	assert.False(t, Exists(t, fs, "/cfg/other.prefs"))
	assert.Equal(t, "[.]\nk:v\n", ReadFile(t, fs, "/cfg/acme.test/demo.prefs"))
	assert.Equal(t, "", Lines())
}

func TestResolver(t *testing.T) {
	r := Resolver("/home", "/etc")
	dir, err := r.Dir(types.User)
	require.NoError(t, err)
	assert.Equal(t, "/home", dir)
	dir, err = r.Dir(types.System)
	require.NoError(t, err)
	assert.Equal(t, "/etc", dir)

	_, err = Resolver("", "/etc").Dir(types.User)
	assert.ErrorIs(t, err, types.ErrIO)
}
