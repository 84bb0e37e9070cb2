package config

import (
	"os"
	"testing"

	internal "github.com/ZanzyTHEbar/fskit/fskit"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests the config package functionality
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
	origDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	// Viper state is global; start each test clean
	viper.Reset()

	// Save original directory
	var err error
	suite.origDir, err = os.Getwd()
	require.NoError(suite.T(), err)

	// Create temporary directory for testing
	tempDir, err := os.MkdirTemp("", "fskit-config-test-*")
	require.NoError(suite.T(), err)
	suite.tempDir = tempDir

	// Change to temp directory
	err = os.Chdir(tempDir)
	require.NoError(suite.T(), err)
}

func (suite *ConfigTestSuite) TearDownTest() {
	// Change back to original directory
	if suite.origDir != "" {
		os.Chdir(suite.origDir)
	}

	// Clean up temporary directory
	if suite.tempDir != "" {
		os.RemoveAll(suite.tempDir)
	}
}

func (suite *ConfigTestSuite) TestLoadConfigWithDefaults() {
	// Load config without config file (should use defaults)
	cfg, err := LoadConfig("")

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), cfg)

	assert.Equal(suite.T(), internal.DefaultCacheDir, cfg.Fskit.CacheDir)
	assert.Equal(suite.T(), internal.DefaultTrashDir, cfg.Fskit.TrashDir)
	assert.Equal(suite.T(), internal.DefaultCopyBufferSize, cfg.Fskit.CopyBufferSize)
	assert.Equal(suite.T(), internal.DefaultMaxSuffixAttempts, cfg.Fskit.MaxSuffixAttempts)
	assert.Equal(suite.T(), internal.DefaultWorkerCount, cfg.Fskit.WorkerCount)
}

func (suite *ConfigTestSuite) TestLoadConfigFromFile() {
	configContent := `
fskit:
  copyBufferSize: 8192
  maxSuffixAttempts: 50
  workerCount: 2
  cacheDir: /tmp/fskit-cache
`
	configPath := suite.tempDir + "/config.yaml"
	err := os.WriteFile(configPath, []byte(configContent), 0o644)
	require.NoError(suite.T(), err)

	cfg, err := LoadConfig(configPath)
	require.NoError(suite.T(), err)

	assert.Equal(suite.T(), 8192, cfg.Fskit.CopyBufferSize)
	assert.Equal(suite.T(), 50, cfg.Fskit.MaxSuffixAttempts)
	assert.Equal(suite.T(), 2, cfg.Fskit.WorkerCount)
	assert.Equal(suite.T(), "/tmp/fskit-cache", cfg.Fskit.CacheDir)

	// Values absent from the file keep their defaults
	assert.Equal(suite.T(), internal.DefaultTrashDir, cfg.Fskit.TrashDir)
}
