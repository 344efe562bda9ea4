package server

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	configDir      = "config"
	dataDir        = "data"
	configFileName = "app"
	genesisFile    = "genesis.json"
)

// Config is the node configuration stored in config/app.toml.
type Config struct {
	// Chain id written to a generated genesis file.
	ChainID string `toml:"chain_id" mapstructure:"chain_id"`

	// Execute a milestone in the first block after its voting window closes.
	AutoExecute bool `toml:"auto_execute" mapstructure:"auto_execute"`

	// Assert every invariant each N blocks, zero disables.
	InvCheckPeriod uint `toml:"inv_check_period" mapstructure:"inv_check_period"`

	// Interval between empty blocks produced by the node clock.
	BlockInterval time.Duration `toml:"block_interval" mapstructure:"block_interval"`

	LogLevel string `toml:"log_level" mapstructure:"log_level"`

	// RESTAddress is where the REST server listens. POST /txs applies any msg
	// as its named signer without a signature check, so whoever can reach
	// this address can act for every holder. Keep it on loopback or behind
	// an authenticating proxy.
	RESTAddress string `toml:"rest_address" mapstructure:"rest_address"`
}

// DefaultConfig returns the configuration of a fresh home directory.
func DefaultConfig() *Config {
	return &Config{
		ChainID:        "fund-chain",
		AutoExecute:    true,
		InvCheckPeriod: 0,
		BlockInterval:  time.Second,
		LogLevel:       "main:info,state:info,*:error",
		RESTAddress:    "tcp://127.0.0.1:1317",
	}
}

// Validate performs basic checks on the configuration.
func (c *Config) Validate() error {
	if c.ChainID == "" {
		return errors.New("chain_id must not be empty")
	}
	if c.BlockInterval <= 0 {
		return errors.Errorf("block_interval must be positive, got %s", c.BlockInterval)
	}
	if c.RESTAddress == "" {
		return errors.New("rest_address must not be empty")
	}
	return nil
}

func configFilePath(home string) string {
	return filepath.Join(home, configDir, configFileName+".toml")
}

// GenesisFilePath returns the genesis file of the home directory.
func GenesisFilePath(home string) string {
	return filepath.Join(home, configDir, genesisFile)
}

// WriteConfigFile renders cfg into the config file of home.
func WriteConfigFile(home string, cfg *Config) error {
	bz, err := toml.Marshal(*cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	if err := os.MkdirAll(filepath.Join(home, configDir), 0700); err != nil {
		return err
	}
	return ioutil.WriteFile(configFilePath(home), bz, 0644)
}

// LoadConfig reads the config file of home into the defaults. A missing
// file leaves the defaults untouched.
func LoadConfig(v *viper.Viper, home string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName(configFileName)
	v.AddConfigPath(filepath.Join(home, configDir))
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "failed to read config")
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
