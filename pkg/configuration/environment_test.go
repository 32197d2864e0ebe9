package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tmp := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env.local"), []byte("CLASSHUB_TEST_ENV_LOAD=ok\n"), 0o644))

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	_ = os.Unsetenv("CLASSHUB_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ok", os.Getenv("CLASSHUB_TEST_ENV_LOAD"))
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestConfiguration_Load(t *testing.T) {
	tmp := t.TempDir()

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	t.Setenv("LOG_PATH", filepath.Join(tmp, "logs", "app.log"))
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PORT", "4000")

	c := &Configuration{}
	require.NoError(t, c.load(nil))
	t.Cleanup(c.Unload)

	assert.Equal(t, "localhost:4000", c.SocketAddress)
	assert.Equal(t, "memory", c.SelectionStore.Driver)
	assert.NotNil(t, c.Logger())
	assert.Contains(t, c.Database.Opts, "dbname=classhub")
}

func TestSelectionStoreOptions_Validate(t *testing.T) {
	for _, driver := range []string{"memory", "redis", "postgres"} {
		opts := SelectionStoreOptions{Driver: driver}
		assert.NoError(t, opts.Validate())
	}

	opts := SelectionStoreOptions{Driver: "etcd"}
	assert.Error(t, opts.Validate())
}
