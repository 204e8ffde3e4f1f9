package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yml := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("app:\n  once: true\n"), 0o600))

	txt := filepath.Join(dir, "config.txt")
	require.NoError(t, os.WriteFile(txt, nil, 0o600))

	require.NoError(t, validateConfig(yml))
	require.Error(t, validateConfig(txt))
	require.Error(t, validateConfig(dir))
	require.Error(t, validateConfig(filepath.Join(dir, "missing.yml")))
}

func TestValidateBaseURL(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateBaseURL("https://android-kotlin-fun-mars-server.appspot.com/"))
	require.NoError(t, validateBaseURL("http://localhost:8081"))
	require.Error(t, validateBaseURL("ftp://example.com"))
	require.Error(t, validateBaseURL("://"))
}

func TestValidateLogLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "WARN", "error"} {
		require.NoError(t, validateLogLevel(level))
	}
	require.Error(t, validateLogLevel("verbose"))
}
