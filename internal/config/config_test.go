package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{"job_url":"https://example.com/posting","port":9090,"use_browser":true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/posting", cfg.JobURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.UseBrowser)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{port:`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobInputs(t *testing.T) {
	cfg := &Config{Job: "jd.txt", JobURL: "https://example.com"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestValidate_JobFileMustExist(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{JobURL: "https://example.com"}
	merged := cfg.MergeWithDefaults(Config{JobURL: "https://ignored.example", APIKey: "key", Port: 8080})

	assert.Equal(t, "https://example.com", merged.JobURL)
	assert.Equal(t, "key", merged.APIKey)
	assert.Equal(t, 8080, merged.Port)
}
