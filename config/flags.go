package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the global command-line flags.
type Flags struct {
	Config     string
	DataDir    string
	URL        string
	Commitment string
	Timeout    time.Duration

	LogLevel string
	LogFile  string
	LogJSON  bool

	fs *pflag.FlagSet
}

// RegisterFlags adds the global flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.Config, "config", "C", "", "Config file path (default: <datadir>/solkey.conf)")
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory (default: ~/.solkey)")
	fs.StringVarP(&f.URL, "url", "u", "", "JSON-RPC URL or cluster name: devnet, testnet, mainnet-beta, localhost")
	fs.StringVar(&f.Commitment, "commitment", "", "Query commitment: processed, confirmed, finalized")
	fs.DurationVar(&f.Timeout, "timeout", 0, "Ledger query timeout")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write JSON logs to this file")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	return f
}

// ApplyFlags applies explicitly set flags to cfg.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.isSet("datadir") {
		cfg.DataDir = f.DataDir
	}
	if f.isSet("url") {
		u, cluster := ResolveURL(f.URL)
		cfg.RPC.URL = u
		if cluster != "" {
			cfg.Cluster = cluster
		}
	}
	if f.isSet("commitment") {
		cfg.RPC.Commitment = f.Commitment
	}
	if f.isSet("timeout") {
		cfg.RPC.Timeout = f.Timeout
	}

	if f.isSet("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if f.isSet("log-file") {
		cfg.Log.File = f.LogFile
	}
	if f.isSet("log-json") {
		cfg.Log.JSON = f.LogJSON
	}
}

func (f *Flags) isSet(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Config file
// 3. Command-line flags
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	// Datadir decides where the default config file lives.
	if f.isSet("datadir") {
		cfg.DataDir = f.DataDir
	}

	configPath := f.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	ApplyFlags(cfg, f)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
