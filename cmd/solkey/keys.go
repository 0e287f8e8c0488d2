package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/solkey/internal/wallet"
	"github.com/Klingon-tech/solkey/pkg/types"
)

func newPubkeyCmd(a *app) *cobra.Command {
	var asHex bool
	cmd := &cobra.Command{
		Use:   "pubkey <keyfile>",
		Short: "Print the public key of a keypair file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := wallet.ReadKeypairFile(args[0])
			if err != nil {
				return err
			}
			defer kp.Zero()

			pub := kp.PublicKey()
			if asHex {
				fmt.Fprintln(cmd.OutOrStdout(), pub.Hex())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), pub.String())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHex, "hex", false, "Print the key as hex instead of base58")
	return cmd
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <pubkey> <keyfile>",
		Short: "Check that a keypair file holds the private key for a public key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			want, err := types.ParsePublicKey(args[0])
			if err != nil {
				return err
			}
			kp, err := wallet.ReadKeypairFile(args[1])
			if err != nil {
				return err
			}
			defer kp.Zero()

			if kp.PublicKey() != want {
				return fmt.Errorf("verification failed for public key %s: keypair file holds %s", want, kp.PublicKey())
			}
			if err := wallet.CheckSigner(kp); err != nil {
				return fmt.Errorf("verification failed for public key %s: %w", want, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Verification for public key: %s: Success\n", want)
			return nil
		},
	}
}
