package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Source         ChainConfig          `mapstructure:"source"`
	Destination    ChainConfig          `mapstructure:"destination"`
	Operator       OperatorConfig       `mapstructure:"operator"`
	Swap           SwapConfig           `mapstructure:"swap"`
	Watcher        WatcherConfig        `mapstructure:"watcher"`
	Reconciliation ReconciliationConfig `mapstructure:"reconciliation"`
	Assets         []AssetConfig        `mapstructure:"assets" validate:"dive"`
	AssetsFile     string               `mapstructure:"assets_file"`
	Monitoring     MonitoringConfig     `mapstructure:"monitoring"`
	Logging        LoggingConfig        `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" validate:"required"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// ChainConfig describes one side of the bridge.
type ChainConfig struct {
	Name          string `mapstructure:"name" validate:"required"`
	RPCURL        string `mapstructure:"rpc_url" validate:"required"`
	WSURL         string `mapstructure:"ws_url"`
	ChainID       int64  `mapstructure:"chain_id"`
	TokenContract string `mapstructure:"token_contract" validate:"required,eth_addr"`
	// GasLimit and MaxGasPrice only apply to the chain the operator submits on.
	GasLimit    uint64 `mapstructure:"gas_limit"`
	MaxGasPrice string `mapstructure:"max_gas_price" validate:"omitempty,number"`
}

// OperatorConfig holds the single signing credential of the engine
type OperatorConfig struct {
	PrivateKey string `mapstructure:"private_key" validate:"required"`
}

// SwapConfig contains swap execution settings
type SwapConfig struct {
	RequiredConfirmations uint64        `mapstructure:"required_confirmations" validate:"gte=1"`
	PollInterval          time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
	ConfirmationTimeout   time.Duration `mapstructure:"confirmation_timeout" validate:"gt=0"`
	SourceTicker          string        `mapstructure:"source_ticker" validate:"required"`
	DestinationTicker     string        `mapstructure:"destination_ticker" validate:"required"`
}

// WatcherConfig contains deposit watcher settings
type WatcherConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	PollInterval   time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
	LookbackBlocks uint64        `mapstructure:"lookback_blocks"`
	MaxBlockRange  uint64        `mapstructure:"max_block_range"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff" validate:"gt=0"`
	MaxBackoff     time.Duration `mapstructure:"max_backoff" validate:"gtefield=InitialBackoff"`
}

// ReconciliationConfig contains settings for execution and balance reconciliation
type ReconciliationConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
}

// AssetConfig is one seeded (ticker, network) asset.
type AssetConfig struct {
	Ticker    string `mapstructure:"ticker" yaml:"ticker" validate:"required"`
	Network   string `mapstructure:"network" yaml:"network" validate:"required"`
	Address   string `mapstructure:"address" yaml:"address" validate:"required,eth_addr"`
	Decimals  uint8  `mapstructure:"decimals" yaml:"decimals" default:"18"`
	Available *bool  `mapstructure:"available" yaml:"available" default:"true"`
}

// IsAvailable reports the seeded availability flag.
func (a AssetConfig) IsAvailable() bool {
	return a.Available == nil || *a.Available
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// legacyEnv maps config keys to the environment names used by earlier deployments.
var legacyEnv = map[string]string{
	"source.rpc_url":       "SEPOLIA_RPC_ENDPOINT_URL",
	"destination.rpc_url":  "OP_SEPOLIA_RPC_ENDPOINT_URL",
	"operator.private_key": "OPERATOR_PRIVATE_KEY",
}

// Load loads configuration from file, a .env file and environment variables.
// An empty configPath reads configuration from the environment only.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for key, env := range legacyEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.AssetsFile != "" {
		assets, err := LoadAssets(config.AssetsFile)
		if err != nil {
			return nil, err
		}
		config.Assets = assets
	}
	if len(config.Assets) == 0 {
		config.Assets = DefaultAssets(&config)
	}
	for i := range config.Assets {
		if err := defaults.Set(&config.Assets[i]); err != nil {
			return nil, fmt.Errorf("failed to apply asset defaults: %w", err)
		}
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// LoadAssets reads an asset seed list from a standalone yaml file.
func LoadAssets(path string) ([]AssetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read assets file: %w", err)
	}

	var doc struct {
		Assets []AssetConfig `yaml:"assets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse assets file: %w", err)
	}
	return doc.Assets, nil
}

// DefaultAssets seeds the bridged token on both networks.
func DefaultAssets(cfg *Config) []AssetConfig {
	return []AssetConfig{
		{
			Ticker:  cfg.Swap.SourceTicker,
			Network: cfg.Source.Name,
			Address: cfg.Source.TokenContract,
		},
		{
			Ticker:  cfg.Swap.DestinationTicker,
			Network: cfg.Destination.Name,
			Address: cfg.Destination.TokenContract,
		},
	}
}

func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15m")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.request_timeout", "15m")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "navette")

	// Chain defaults
	v.SetDefault("source.name", "Sepolia")
	v.SetDefault("source.ws_url", "")
	v.SetDefault("source.chain_id", 11155111)
	v.SetDefault("source.token_contract", "0xF57cE903E484ca8825F2c1EDc7F9EEa3744251eB")
	v.SetDefault("destination.name", "OP Sepolia")
	v.SetDefault("destination.chain_id", 11155420)
	v.SetDefault("destination.token_contract", "0x2BE5A3e94240Ef08764eB9Bc16CbB917741C15a1")
	v.SetDefault("destination.gas_limit", 100000)
	v.SetDefault("destination.max_gas_price", "")
	v.SetDefault("assets_file", "")

	// Swap defaults
	v.SetDefault("swap.required_confirmations", 1)
	v.SetDefault("swap.poll_interval", "1s")
	v.SetDefault("swap.confirmation_timeout", "10m")
	v.SetDefault("swap.source_ticker", "BASIC")
	v.SetDefault("swap.destination_ticker", "BASIC")

	// Watcher defaults
	v.SetDefault("watcher.enabled", true)
	v.SetDefault("watcher.poll_interval", "15s")
	v.SetDefault("watcher.lookback_blocks", 0)
	v.SetDefault("watcher.max_block_range", 2000)
	v.SetDefault("watcher.initial_backoff", "1s")
	v.SetDefault("watcher.max_backoff", "1m")

	// Reconciliation defaults
	v.SetDefault("reconciliation.interval", "5m")

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")
}

func validate(config *Config) error {
	if err := validator.New().Struct(config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s failed on %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}
	if strings.EqualFold(config.Source.Name, config.Destination.Name) {
		return fmt.Errorf("source.name and destination.name must differ")
	}
	seen := make(map[string]struct{}, len(config.Assets))
	for _, a := range config.Assets {
		key := a.Network + "/" + a.Ticker
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate asset %s", key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
