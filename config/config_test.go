package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(Default()) error: %v", err)
	}
	if cfg.Endpoint() != "https://api.devnet.solana.com" {
		t.Errorf("Endpoint() = %q", cfg.Endpoint())
	}
	if cfg.RPC.Commitment != CommitmentFinalized {
		t.Errorf("commitment = %q", cfg.RPC.Commitment)
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		in      string
		url     string
		cluster Cluster
	}{
		{"devnet", "https://api.devnet.solana.com", Devnet},
		{"testnet", "https://api.testnet.solana.com", Testnet},
		{"mainnet-beta", "https://api.mainnet-beta.solana.com", MainnetBeta},
		{"localhost", "http://127.0.0.1:8899", Localhost},
		{"https://rpc.example.com", "https://rpc.example.com", ""},
	}
	for _, tt := range tests {
		u, c := ResolveURL(tt.in)
		if u != tt.url || c != tt.cluster {
			t.Errorf("ResolveURL(%q) = %q, %q; want %q, %q", tt.in, u, c, tt.url, tt.cluster)
		}
	}
}

func TestEndpoint_URLOverridesCluster(t *testing.T) {
	cfg := Default()
	cfg.Cluster = MainnetBeta
	cfg.RPC.URL = "http://10.0.0.1:8899"
	if got := cfg.Endpoint(); got != "http://10.0.0.1:8899" {
		t.Errorf("Endpoint() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"unknown cluster", func(c *Config) { c.Cluster = "moonnet" }, "cluster"},
		{"unknown cluster with url", func(c *Config) { c.Cluster = "moonnet"; c.RPC.URL = "http://x:1" }, ""},
		{"bad url scheme", func(c *Config) { c.RPC.URL = "ftp://example.com" }, "rpc.url"},
		{"bare word url", func(c *Config) { c.RPC.URL = "nowhere" }, "rpc.url"},
		{"bad commitment", func(c *Config) { c.RPC.Commitment = "max" }, "rpc.commitment"},
		{"zero timeout", func(c *Config) { c.RPC.Timeout = 0 }, "rpc.timeout"},
		{"bad word count", func(c *Config) { c.KeyGen.WordCount = 13 }, "keygen.words"},
		{"24 words", func(c *Config) { c.KeyGen.WordCount = 24 }, ""},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.errSub == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Fatalf("err = %v, want mention of %q", err, tt.errSub)
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solkey.conf")
	content := `# solkey settings
cluster = testnet
rpc.commitment = "confirmed"
rpc.timeout = 5
keygen.words = 24

log.level = 'debug'
log.json = yes
unknown.key = ignored
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	values, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	cfg := Default()
	if err := ApplyFileConfig(cfg, values); err != nil {
		t.Fatalf("ApplyFileConfig() error: %v", err)
	}

	if cfg.Cluster != Testnet {
		t.Errorf("cluster = %q", cfg.Cluster)
	}
	if cfg.RPC.Commitment != CommitmentConfirmed {
		t.Errorf("commitment = %q", cfg.RPC.Commitment)
	}
	if cfg.RPC.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.RPC.Timeout)
	}
	if cfg.KeyGen.WordCount != 24 {
		t.Errorf("word count = %d", cfg.KeyGen.WordCount)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("log = %+v", cfg.Log)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	values, err := LoadFile(filepath.Join(t.TempDir(), "none.conf"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}

func TestLoadFile_InvalidLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.conf")
	os.WriteFile(path, []byte("cluster = devnet\njust-a-word\n"), 0600)

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want line 2 error", err)
	}
}

func TestApplyFileConfig_BadValues(t *testing.T) {
	for _, values := range []map[string]string{
		{"keygen.words": "twelve"},
		{"rpc.timeout": "soon"},
	} {
		if err := ApplyFileConfig(Default(), values); err == nil {
			t.Errorf("ApplyFileConfig(%v) should fail", values)
		}
	}
}

func TestApplyFileConfig_URLMoniker(t *testing.T) {
	cfg := Default()
	if err := ApplyFileConfig(cfg, map[string]string{"rpc.url": "mainnet-beta"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Cluster != MainnetBeta || cfg.Endpoint() != "https://api.mainnet-beta.solana.com" {
		t.Errorf("cluster = %q, endpoint = %q", cfg.Cluster, cfg.Endpoint())
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	conf := "cluster = testnet\nrpc.commitment = confirmed\nlog.level = info\n"
	if err := os.WriteFile(filepath.Join(dir, "solkey.conf"), []byte(conf), 0600); err != nil {
		t.Fatal(err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	if err := fs.Parse([]string{"--datadir", dir, "--commitment", "processed", "-u", "localhost"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("datadir = %q", cfg.DataDir)
	}
	// Flag beats file.
	if cfg.RPC.Commitment != CommitmentProcessed {
		t.Errorf("commitment = %q, want processed", cfg.RPC.Commitment)
	}
	if cfg.Cluster != Localhost || cfg.Endpoint() != "http://127.0.0.1:8899" {
		t.Errorf("cluster = %q, endpoint = %q", cfg.Cluster, cfg.Endpoint())
	}
	// File beats default.
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
	// Unset flags keep lower layers.
	if cfg.RPC.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v", cfg.RPC.Timeout)
	}
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.conf")
	os.WriteFile(path, []byte("rpc.commitment = bogus\n"), 0600)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	fs.Parse([]string{"--config", path, "--datadir", t.TempDir()})

	if _, err := Load(flags); err == nil || !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("err = %v, want invalid config", err)
	}
}

func TestApplyFlags_BoolFalseOverride(t *testing.T) {
	cfg := Default()
	cfg.Log.JSON = true

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	fs.Parse([]string{"--log-json=false"})

	ApplyFlags(cfg, flags)
	if cfg.Log.JSON {
		t.Error("explicit --log-json=false should override")
	}
}
