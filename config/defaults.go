package config

import (
	"time"

	"github.com/Klingon-tech/solkey/internal/wallet"
)

// DefaultTimeout bounds a single ledger query.
const DefaultTimeout = 30 * time.Second

// Default returns the built-in configuration: devnet, finalized commitment,
// 12-word mnemonics, warnings only.
func Default() *Config {
	return &Config{
		Cluster: Devnet,
		DataDir: DefaultDataDir(),
		RPC: RPCConfig{
			Commitment: CommitmentFinalized,
			Timeout:    DefaultTimeout,
		},
		KeyGen: KeyGenConfig{
			WordCount: wallet.DefaultWordCount,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
