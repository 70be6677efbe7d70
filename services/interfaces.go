package services

import (
	"context"
	"memoless-api/dto"
	"time"

	"github.com/shopspring/decimal"
)

// ChainClient ... read-only THORChain queries
type ChainClient interface {
	GetPools(ctx context.Context) ([]dto.Pool, error)
	GetInboundAddresses(ctx context.Context) ([]dto.InboundAddress, error)
	GetMemoByHash(ctx context.Context, txHash string) (dto.MemoReference, error)
	CheckMemo(ctx context.Context, asset string, rawAmount string) (dto.MemoCheck, error)
	GetLastBlock(ctx context.Context) (int64, error)
	GetNetworkFee(ctx context.Context) (decimal.Decimal, error)
	GetBalance(ctx context.Context, address string, denom string) (decimal.Decimal, error)
}

// Broadcaster ... submits the memo registration transaction and returns its hash
type Broadcaster interface {
	Broadcast(ctx context.Context, request dto.BroadcastRequest) (string, error)
}

// Notifier ... outbound webhooks; delivery problems are reported, never raised
type Notifier interface {
	NotifySuccess(ctx context.Context, payload dto.SuccessNotification) AdvisoryResult
	NotifyFailure(ctx context.Context, payload dto.FailureNotification) AdvisoryResult
}

// AssetLookup ... asset registry reads
type AssetLookup interface {
	Decimals(ctx context.Context, asset string, fresh bool) (int, error)
}

// WalletChecker ... hot wallet reads used around a registration
type WalletChecker interface {
	CheckOperatingBalance(ctx context.Context) AdvisoryResult
	BalanceString(ctx context.Context) string
	AlertIfLow(ctx context.Context) AdvisoryResult
}

// Throttle ... admits one event per key per window
type Throttle interface {
	Allow(key string, window time.Duration) bool
}

// Pinger ... anything whose reachability can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}
