package config

import (
	"fmt"
	"net/url"

	klog "github.com/Klingon-tech/solkey/internal/log"
	"github.com/Klingon-tech/solkey/internal/wallet"
)

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.RPC.URL == "" {
		if _, ok := cfg.Cluster.URL(); !ok {
			return fmt.Errorf("cluster must be one of %q, %q, %q, %q (or set rpc.url)",
				Devnet, Testnet, MainnetBeta, Localhost)
		}
	} else {
		u, err := url.Parse(cfg.RPC.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("rpc.url %q must be an http(s) URL or a cluster name", cfg.RPC.URL)
		}
	}

	switch cfg.RPC.Commitment {
	case CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized:
	default:
		return fmt.Errorf("rpc.commitment must be %s, %s, or %s",
			CommitmentProcessed, CommitmentConfirmed, CommitmentFinalized)
	}
	if cfg.RPC.Timeout <= 0 {
		return fmt.Errorf("rpc.timeout must be positive")
	}

	if !wallet.IsValidWordCount(cfg.KeyGen.WordCount) {
		return fmt.Errorf("keygen.words must be one of %v", wallet.ValidWordCounts)
	}

	if !klog.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}

	return nil
}
