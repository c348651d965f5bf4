package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"babynames/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(io.NopCloser(strings.NewReader("")), &out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	cfg := testConfig(t)

	out, err := execute(t, "convert", cfg.Data, "--db", cfg.DB, "--skip-rows", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Names")
	assert.Contains(t, out, "1981")

	s, err := storage.Load(cfg.DB)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Names.Len())
	assert.Equal(t, 1981, s.MaxYear)
}

func TestConvertCommandFails(t *testing.T) {
	cfg := testConfig(t)

	// The header row is not skipped, so its year cell is not a number.
	_, err := execute(t, "convert", cfg.Data, "--db", cfg.DB, "--skip-rows", "0")
	require.Error(t, err)

	_, err = os.Stat(cfg.DB)
	assert.True(t, os.IsNotExist(err))
}

func TestConfigFromEnvironment(t *testing.T) {
	cfg := testConfig(t)
	t.Setenv("BABYNAMES_SKIP_ROWS", "1")
	t.Setenv("BABYNAMES_DB", cfg.DB)

	_, err := execute(t, "convert", cfg.Data)
	require.NoError(t, err)

	_, err = os.Stat(cfg.DB)
	assert.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte(
		"data = \""+cfg.Data+"\"\ndb = \""+cfg.DB+"\"\nskip-rows = 1\n"), 0o600))

	_, err := execute(t, "convert", "--config", good)
	require.NoError(t, err)
	_, err = os.Stat(cfg.DB)
	assert.NoError(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("colour = \"pink\"\n"), 0o600))

	_, err = execute(t, "convert", "--config", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid option in configuration file: colour")
}

func TestConfigFileSharedByAllCommands(t *testing.T) {
	cfg := testConfig(t)
	shared := filepath.Join(t.TempDir(), "babynames.toml")
	require.NoError(t, os.WriteFile(shared, []byte(
		"data = \""+cfg.Data+"\"\n"+
			"db = \""+cfg.DB+"\"\n"+
			"skip-rows = 1\n"+
			"bind = \"127.0.0.1:0\"\n"+
			"rate-limit = 5.0\n"+
			"history = \"\"\n"+
			"chart-height = 10\n"), 0o600))

	_, err := execute(t, "convert", "--config", shared)
	require.NoError(t, err)
	_, err = os.Stat(cfg.DB)
	assert.NoError(t, err)
}

func TestConfigKeysCoverEveryCommand(t *testing.T) {
	root := NewRootCommand(io.NopCloser(strings.NewReader("")), io.Discard, io.Discard)
	keys := configKeys(root)
	for _, k := range []string{"config", "data", "db", "skip-rows", "sheet", "verbose",
		"history", "chart-height", "bind", "rate-limit"} {
		assert.True(t, keys[k], k)
	}
	assert.False(t, keys["colour"])
}

func TestFlagBeatsEnvironment(t *testing.T) {
	cfg := testConfig(t)
	t.Setenv("BABYNAMES_SKIP_ROWS", "0")

	_, err := execute(t, "convert", cfg.Data, "--db", cfg.DB, "--skip-rows", "1")
	assert.NoError(t, err)
}
