// Package ledger answers read-only questions about a remote ledger cluster
// over JSON-RPC: the current slot and block time, and the token supply.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	klog "github.com/Klingon-tech/solkey/internal/log"
)

// ClockSysvarID is the account holding the cluster clock.
const ClockSysvarID = "SysvarC1ock11111111111111111111111111111111"

// ErrClockUnavailable is returned when the node has no clock account data.
var ErrClockUnavailable = errors.New("clock account unavailable")

// ClusterInfo is a snapshot of cluster progress.
type ClusterInfo struct {
	Slot          uint64
	UnixTimestamp int64
	Version       string // Node software version; empty if not reported.
}

// Time returns the block time in UTC.
func (ci ClusterInfo) Time() time.Time {
	return time.Unix(ci.UnixTimestamp, 0).UTC()
}

// Supply holds token supply figures in lamports.
type Supply struct {
	Total          uint64
	Circulating    uint64
	NonCirculating uint64
}

// Querier is the read-only query surface used by the command line.
type Querier interface {
	ClusterInfo(ctx context.Context) (ClusterInfo, error)
	Supply(ctx context.Context) (Supply, error)
}

// Caller performs a single JSON-RPC call.
type Caller interface {
	CallContext(ctx context.Context, method string, params, result interface{}) error
}

// Client implements Querier on top of a JSON-RPC caller.
type Client struct {
	rpc        Caller
	commitment string
}

var _ Querier = (*Client)(nil)

// NewClient returns a Client issuing queries at the given commitment level.
func NewClient(rpc Caller, commitment string) *Client {
	return &Client{rpc: rpc, commitment: commitment}
}

type rpcContext struct {
	Slot uint64 `json:"slot"`
}

type versionResult struct {
	SolanaCore string `json:"solana-core"`
}

type clockAccountResult struct {
	Context rpcContext `json:"context"`
	Value   *struct {
		Data struct {
			Parsed struct {
				Info struct {
					UnixTimestamp int64 `json:"unixTimestamp"`
				} `json:"info"`
				Type string `json:"type"`
			} `json:"parsed"`
		} `json:"data"`
	} `json:"value"`
}

type supplyResult struct {
	Context rpcContext `json:"context"`
	Value   struct {
		Total          uint64 `json:"total"`
		Circulating    uint64 `json:"circulating"`
		NonCirculating uint64 `json:"nonCirculating"`
	} `json:"value"`
}

// ClusterInfo fetches the slot and unix timestamp of the cluster clock.
// The node version is best effort.
func (c *Client) ClusterInfo(ctx context.Context) (ClusterInfo, error) {
	var info ClusterInfo

	var ver versionResult
	if err := c.rpc.CallContext(ctx, "getVersion", nil, &ver); err != nil {
		klog.Ledger.Warn().Err(err).Msg("getVersion failed")
	} else {
		info.Version = ver.SolanaCore
	}

	params := []interface{}{
		ClockSysvarID,
		map[string]string{
			"commitment": c.commitment,
			"encoding":   "jsonParsed",
		},
	}
	var acct clockAccountResult
	if err := c.rpc.CallContext(ctx, "getAccountInfo", params, &acct); err != nil {
		return ClusterInfo{}, fmt.Errorf("get clock account: %w", err)
	}
	if acct.Value == nil {
		return ClusterInfo{}, ErrClockUnavailable
	}
	if t := acct.Value.Data.Parsed.Type; t != "" && t != "clock" {
		return ClusterInfo{}, fmt.Errorf("%w: unexpected account type %q", ErrClockUnavailable, t)
	}

	info.Slot = acct.Context.Slot
	info.UnixTimestamp = acct.Value.Data.Parsed.Info.UnixTimestamp

	klog.Ledger.Debug().
		Uint64("slot", info.Slot).
		Int64("unix_timestamp", info.UnixTimestamp).
		Str("version", info.Version).
		Msg("cluster info")

	return info, nil
}

// Supply fetches the total, circulating and non-circulating supply.
func (c *Client) Supply(ctx context.Context) (Supply, error) {
	params := []interface{}{
		map[string]interface{}{
			"commitment":                        c.commitment,
			"excludeNonCirculatingAccountsList": true,
		},
	}
	var res supplyResult
	if err := c.rpc.CallContext(ctx, "getSupply", params, &res); err != nil {
		return Supply{}, fmt.Errorf("get supply: %w", err)
	}

	s := Supply{
		Total:          res.Value.Total,
		Circulating:    res.Value.Circulating,
		NonCirculating: res.Value.NonCirculating,
	}

	klog.Ledger.Debug().
		Uint64("slot", res.Context.Slot).
		Uint64("total", s.Total).
		Msg("supply")

	return s, nil
}
