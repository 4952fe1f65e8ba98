package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, DefaultRootName, cfg.RootName)
	assert.True(t, cfg.AllFieldsNullable, "default mode marks every field nullable")
	assert.True(t, cfg.SerializationHooks)
	assert.True(t, cfg.Format)
}

func TestLoadConfig_FromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".json2dart.yml")
	content := `root_name: Invoice
all_fields_nullable: false
serialization_hooks: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Invoice", cfg.RootName)
	assert.False(t, cfg.AllFieldsNullable)
	assert.False(t, cfg.SerializationHooks)
	assert.True(t, cfg.Format, "unset values keep their defaults")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("root_name: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigWithCLI_NoConfigFile(t *testing.T) {
	cfg, err := LoadConfigWithCLI("", "Invoice", false, true, true)
	require.NoError(t, err)

	assert.Equal(t, "Invoice", cfg.RootName)
	assert.False(t, cfg.AllFieldsNullable)
	assert.True(t, cfg.SerializationHooks)
}

func TestLoadConfigWithCLI_DefaultRootNameYieldsToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".json2dart.yml")
	require.NoError(t, os.WriteFile(path, []byte("root_name: FromFile\n"), 0644))

	cfg, err := LoadConfigWithCLI(path, DefaultRootName, true, true, true)
	require.NoError(t, err)
	assert.Equal(t, "FromFile", cfg.RootName, "a default CLI root name does not override the config file")

	cfg, err = LoadConfigWithCLI(path, "Explicit", true, true, true)
	require.NoError(t, err)
	assert.Equal(t, "Explicit", cfg.RootName, "an explicit CLI root name wins")
}
