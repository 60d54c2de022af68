package main

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := loadConfig("")
		require.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plexls.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte(`url: http://pms:32400
token: secret
client_id: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
timeout: 5s
`), 0600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, config{
			URL:      "http://pms:32400",
			Token:    "secret",
			ClientID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			Timeout:  5 * time.Second,
		}, cfg)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plexls.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("verbose: true\n"), 0600))

		cfg, err := loadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "http://127.0.0.1:32400", cfg.URL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plexls.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("timeout: [\n"), 0600))

		_, err := loadConfig(path)
		assert.Error(t, err)
	})
}
