// solkey is a command-line tool for a Solana-style ledger cluster: it queries
// cluster progress and token supply, and generates or recovers keypairs from
// BIP-39 mnemonics.
package main

import (
	"os"

	klog "github.com/Klingon-tech/solkey/internal/log"
)

const version = "0.1.0"

func main() {
	err := newRootCmd(newApp()).Execute()
	klog.Close()
	if err != nil {
		os.Exit(1)
	}
}
