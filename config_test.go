/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package docstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/suparena/docstore/errors"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstore.yaml")
	content := []byte(`region: us-east-1
endpoint: http://localhost:8000
accessKey: local
secretKey: local
local: true
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
	assert.Equal(t, "local", cfg.AccessKey)
	assert.True(t, cfg.Local)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("region: [unclosed"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigLocalRequiresEndpoint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte("local: true\n"), 0o600))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.True(t, dserrors.IsValidationError(err))
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DOCSTORE_REGION", "us-west-2")
	t.Setenv("DOCSTORE_ENDPOINT", "http://localhost:8000")
	t.Setenv("DOCSTORE_ACCESS_KEY", "ak")
	t.Setenv("DOCSTORE_SECRET_KEY", "sk")
	t.Setenv("DOCSTORE_LOCAL", "true")

	cfg := ConfigFromEnv()
	assert.Equal(t, "us-west-2", cfg.Region)
	assert.Equal(t, "http://localhost:8000", cfg.Endpoint)
	assert.Equal(t, "ak", cfg.AccessKey)
	assert.Equal(t, "sk", cfg.SecretKey)
	assert.True(t, cfg.Local)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("DOCSTORE_REGION", "")
	t.Setenv("DOCSTORE_LOCAL", "")

	cfg := ConfigFromEnv()
	assert.Empty(t, cfg.Region)
	assert.False(t, cfg.Local)
}
