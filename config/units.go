package config

// Native token units. Ledger queries report amounts in lamports.
const (
	Decimals       = 9
	LamportsPerSOL = 1_000_000_000 // 10^9 lamports per SOL
)
