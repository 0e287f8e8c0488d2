package main

import (
	"fmt"
	"time"

	"github.com/Klingon-tech/solkey/config"
)

// formatSOL formats lamports as SOL with all 9 decimals.
func formatSOL(lamports uint64) string {
	whole := lamports / config.LamportsPerSOL
	frac := lamports % config.LamportsPerSOL
	return fmt.Sprintf("%d.%0*d", whole, config.Decimals, frac)
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}
