package main

import (
	"fmt"

	"github.com/spf13/cobra"

	klog "github.com/Klingon-tech/solkey/internal/log"
	"github.com/Klingon-tech/solkey/internal/wallet"
)

// passphraseFlags are shared by key-gen and key-recover.
type passphraseFlags struct {
	passphrase string
	prompt     bool
}

func (pf *passphraseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&pf.passphrase, "passphrase", "p", "", "Passphrase to use for extra security")
	cmd.Flags().BoolVar(&pf.prompt, "prompt-passphrase", false, "Read the passphrase from the terminal")
	cmd.MarkFlagsMutuallyExclusive("passphrase", "prompt-passphrase")
}

func (pf *passphraseFlags) resolve(a *app) (string, error) {
	if pf.prompt {
		return a.promptPassphrase()
	}
	return pf.passphrase, nil
}

func newKeyGenCmd(a *app) *cobra.Command {
	var (
		output string
		words  int
		force  bool
		pf     passphraseFlags
	)
	cmd := &cobra.Command{
		Use:   "key-gen",
		Short: "Generate a mnemonic and write its keypair file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mnemonic-word-count") {
				words = a.cfg.KeyGen.WordCount
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generate keys, output to: %s\n", output)

			passphrase, err := pf.resolve(a)
			if err != nil {
				return err
			}

			res, err := wallet.NewGenerator(a.entropy).Generate(wallet.KeyGenRequest{
				WordCount:  words,
				Passphrase: passphrase,
			})
			if err != nil {
				return err
			}
			defer res.Keypair.Zero()

			if err := wallet.WriteKeypairFile(output, res.Keypair, force); err != nil {
				return err
			}
			klog.CLI.Info().Str("path", output).Int("words", words).Msg("keypair file written")

			fmt.Fprintf(out, "Mnemonic: %s\n", res.Mnemonic.Sentence())
			fmt.Fprintf(out, "Public key: %s\n", res.Keypair.PublicKey())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path for keypair file")
	cmd.Flags().IntVarP(&words, "mnemonic-word-count", "m", wallet.DefaultWordCount,
		"How many words to generate for the mnemonic. Valid values are: 12, 15, 18, 21, and 24")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing keypair file")
	pf.register(cmd)
	cmd.MarkFlagRequired("output")

	return cmd
}

func newKeyRecoverCmd(a *app) *cobra.Command {
	var (
		output string
		force  bool
		pf     passphraseFlags
	)
	cmd := &cobra.Command{
		Use:   "key-recover",
		Short: "Recover a keypair file from an existing mnemonic",
		Long: `Recover a keypair file from an existing mnemonic.

The mnemonic is prompted for on a terminal, or read from the first line of
standard input otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sentence, err := a.readMnemonic()
			if err != nil {
				return err
			}
			passphrase, err := pf.resolve(a)
			if err != nil {
				return err
			}

			res, err := wallet.Recover(sentence, passphrase)
			if err != nil {
				return err
			}
			defer res.Keypair.Zero()

			if err := wallet.WriteKeypairFile(output, res.Keypair, force); err != nil {
				return err
			}
			klog.CLI.Info().Str("path", output).Msg("keypair file recovered")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recovered keypair, output to: %s\n", output)
			fmt.Fprintf(out, "Public key: %s\n", res.Keypair.PublicKey())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path for keypair file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing keypair file")
	pf.register(cmd)
	cmd.MarkFlagRequired("output")

	return cmd
}
