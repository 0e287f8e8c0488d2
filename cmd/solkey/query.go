package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Klingon-tech/solkey/internal/ledger"
	"github.com/Klingon-tech/solkey/internal/rpcclient"
)

func (a *app) querier() ledger.Querier {
	rpc := rpcclient.NewWithTimeout(a.cfg.Endpoint(), a.cfg.RPC.Timeout)
	return ledger.NewClient(rpc, a.cfg.RPC.Commitment)
}

func (a *app) queryContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.cfg.RPC.Timeout)
}

func newClusterInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cluster-info",
		Short: "Show the current slot and block time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.queryContext(cmd)
			defer cancel()

			info, err := a.querier().ClusterInfo(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Block: %d, Time: %s\n", info.Slot, formatTime(info.Time()))
			if info.Version != "" {
				fmt.Fprintf(out, "Version: %s\n", info.Version)
			}
			return nil
		},
	}
}

func newSupplyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Show total, circulating and non-circulating supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.queryContext(cmd)
			defer cancel()

			s, err := a.querier().Supply(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total supply: %s SOL\n", formatSOL(s.Total))
			fmt.Fprintf(out, "Circulating: %s SOL\n", formatSOL(s.Circulating))
			fmt.Fprintf(out, "Non-Circulating: %s SOL\n", formatSOL(s.NonCirculating))
			return nil
		},
	}
}
