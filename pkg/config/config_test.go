package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndLegacyEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SEPOLIA_RPC_ENDPOINT_URL", "http://source:8545")
	t.Setenv("OP_SEPOLIA_RPC_ENDPOINT_URL", "http://destination:8545")
	t.Setenv("OPERATOR_PRIVATE_KEY", testKey)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://source:8545", cfg.Source.RPCURL)
	assert.Equal(t, "http://destination:8545", cfg.Destination.RPCURL)
	assert.Equal(t, testKey, cfg.Operator.PrivateKey)
	assert.Equal(t, "Sepolia", cfg.Source.Name)
	assert.Equal(t, "OP Sepolia", cfg.Destination.Name)
	assert.Equal(t, uint64(1), cfg.Swap.RequiredConfirmations)
	assert.Equal(t, time.Second, cfg.Swap.PollInterval)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, uint64(2000), cfg.Watcher.MaxBlockRange)

	require.Len(t, cfg.Assets, 2)
	assert.Equal(t, "BASIC", cfg.Assets[0].Ticker)
	assert.Equal(t, "Sepolia", cfg.Assets[0].Network)
	assert.Equal(t, uint8(18), cfg.Assets[0].Decimals)
	assert.True(t, cfg.Assets[0].IsAvailable())
	assert.Equal(t, "OP Sepolia", cfg.Assets[1].Network)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeFile(t, "config.yaml", `
source:
  rpc_url: http://source:8545
destination:
  rpc_url: http://destination:8545
operator:
  private_key: `+testKey+`
swap:
  required_confirmations: 3
assets:
  - ticker: BASIC
    network: Sepolia
    address: "0xF57cE903E484ca8825F2c1EDc7F9EEa3744251eB"
  - ticker: BASIC
    network: OP Sepolia
    address: "0x2BE5A3e94240Ef08764eB9Bc16CbB917741C15a1"
    decimals: 6
    available: false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(3), cfg.Swap.RequiredConfirmations)
	require.Len(t, cfg.Assets, 2)
	assert.Equal(t, uint8(18), cfg.Assets[0].Decimals)
	assert.Equal(t, uint8(6), cfg.Assets[1].Decimals)
	assert.False(t, cfg.Assets[1].IsAvailable())
}

func TestLoad_AssetsFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assets := writeFile(t, "assets.yaml", `
assets:
  - ticker: USDC
    network: OP Sepolia
    address: "0x2BE5A3e94240Ef08764eB9Bc16CbB917741C15a1"
    decimals: 6
`)
	t.Setenv("SEPOLIA_RPC_ENDPOINT_URL", "http://source:8545")
	t.Setenv("OP_SEPOLIA_RPC_ENDPOINT_URL", "http://destination:8545")
	t.Setenv("OPERATOR_PRIVATE_KEY", testKey)
	t.Setenv("ASSETS_FILE", assets)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Len(t, cfg.Assets, 1)
	assert.Equal(t, "USDC", cfg.Assets[0].Ticker)
	assert.Equal(t, uint8(6), cfg.Assets[0].Decimals)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "missing rpc url",
			yaml: "destination:\n  rpc_url: http://d\noperator:\n  private_key: " + testKey + "\n",
		},
		{
			name: "missing operator key",
			yaml: "source:\n  rpc_url: http://s\ndestination:\n  rpc_url: http://d\n",
		},
		{
			name: "bad token address",
			yaml: "source:\n  rpc_url: http://s\n  token_contract: nope\ndestination:\n  rpc_url: http://d\noperator:\n  private_key: " + testKey + "\n",
		},
		{
			name: "zero confirmations",
			yaml: "source:\n  rpc_url: http://s\ndestination:\n  rpc_url: http://d\noperator:\n  private_key: " + testKey + "\nswap:\n  required_confirmations: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			_, err := Load(writeFile(t, "config.yaml", tt.yaml))
			require.Error(t, err)
		})
	}
}
