// Package config handles solkey configuration.
//
// Settings are resolved in order: built-in defaults, then the config file,
// then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// Cluster names a public ledger cluster.
type Cluster string

const (
	Devnet      Cluster = "devnet"
	Testnet     Cluster = "testnet"
	MainnetBeta Cluster = "mainnet-beta"
	Localhost   Cluster = "localhost"
)

var clusterURLs = map[Cluster]string{
	Devnet:      "https://api.devnet.solana.com",
	Testnet:     "https://api.testnet.solana.com",
	MainnetBeta: "https://api.mainnet-beta.solana.com",
	Localhost:   "http://127.0.0.1:8899",
}

// URL returns the JSON-RPC endpoint of a known cluster.
func (c Cluster) URL() (string, bool) {
	u, ok := clusterURLs[c]
	return u, ok
}

// ResolveURL maps a cluster moniker to its endpoint. Anything else is
// returned unchanged and treated as an explicit URL.
func ResolveURL(s string) (string, Cluster) {
	if u, ok := Cluster(s).URL(); ok {
		return u, Cluster(s)
	}
	return s, ""
}

// Commitment levels accepted by ledger queries.
const (
	CommitmentProcessed = "processed"
	CommitmentConfirmed = "confirmed"
	CommitmentFinalized = "finalized"
)

// Config holds runtime configuration.
type Config struct {
	Cluster Cluster `conf:"cluster"`
	DataDir string  `conf:"datadir"`

	// Ledger queries
	RPC RPCConfig

	// Key generation
	KeyGen KeyGenConfig

	// Logging
	Log LogConfig
}

// RPCConfig holds remote query settings.
type RPCConfig struct {
	URL        string        `conf:"rpc.url"` // Overrides Cluster when set.
	Commitment string        `conf:"rpc.commitment"`
	Timeout    time.Duration `conf:"rpc.timeout"`
}

// KeyGenConfig holds key generation defaults.
type KeyGenConfig struct {
	WordCount int `conf:"keygen.words"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// Endpoint returns the JSON-RPC URL queries should use.
func (c *Config) Endpoint() string {
	if c.RPC.URL != "" {
		return c.RPC.URL
	}
	u, _ := c.Cluster.URL()
	return u
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.solkey
//	macOS:   ~/Library/Application Support/Solkey
//	Windows: %APPDATA%\Solkey
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".solkey"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Solkey")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Solkey")
		}
		return filepath.Join(home, "AppData", "Roaming", "Solkey")
	default:
		return filepath.Join(home, ".solkey")
	}
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "solkey.conf")
}
