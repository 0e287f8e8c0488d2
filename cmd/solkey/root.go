package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/solkey/config"
	klog "github.com/Klingon-tech/solkey/internal/log"
)

// app carries state shared by all commands.
type app struct {
	flags *config.Flags
	cfg   *config.Config

	// entropy feeds key generation; nil means crypto/rand.
	entropy io.Reader
	// stdin supplies a mnemonic when it is not a terminal.
	stdin io.Reader
	// readSecret prompts for hidden input.
	readSecret func(prompt string) ([]byte, error)
}

func newApp() *app {
	return &app{
		stdin:      os.Stdin,
		readSecret: readPassword,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:     "solkey",
		Short:   "Ledger cluster queries and mnemonic keypair generation",
		Version: version,
		// Cobra checks required and grouped flags after persistent hooks,
		// so check them here while usage is still printed.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.ValidateArgs(args); err != nil {
				return err
			}
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return err
			}
			if err := cmd.ValidateFlagGroups(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return a.init()
		},
	}
	a.flags = config.RegisterFlags(root.PersistentFlags())

	for _, newCmd := range []func(*app) *cobra.Command{
		newClusterInfoCmd,
		newSupplyCmd,
		newKeyGenCmd,
		newKeyRecoverCmd,
		newPubkeyCmd,
		newVerifyCmd,
	} {
		root.AddCommand(newCmd(a))
	}
	return root
}

// init loads the configuration and sets up logging.
func (a *app) init() error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return err
	}
	if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		return err
	}
	a.cfg = cfg

	klog.CLI.Debug().
		Str("endpoint", cfg.Endpoint()).
		Str("commitment", cfg.RPC.Commitment).
		Msg("config loaded")
	return nil
}
