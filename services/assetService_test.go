package services

import (
	"context"
	"errors"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility/appError"
	"memoless-api/utility/cache"
	"memoless-api/utility/errorcode"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssetService(chain *fakeChain) *AssetService {
	return NewAssetService(cache.Initialize(time.Minute, time.Minute), Config.Data{AssetCacheDuration: time.Minute}, chain)
}

func TestAssetEnrichment(t *testing.T) {
	chain := &fakeChain{pools: []dto.Pool{
		{Asset: "BTC.BTC", Status: "Available", Decimals: 8, BalanceAsset: "150000000000", AssetTorPrice: "6000000000000"},
		{Asset: "ETH.USDC-0XA0B8", Status: "Staged", Decimals: 6, BalanceAsset: "100000000", AssetTorPrice: "100000000"},
		{Asset: "GAIA.ATOM", Status: "Available"},
	}}
	service := newTestAssetService(chain)

	list, err := service.ListAssets(context.Background(), false)

	require.NoError(t, err)
	require.Len(t, list.Assets, 3)
	btc := list.Assets[0]
	assert.Equal(t, "BTC", btc.Chain)
	assert.Equal(t, "BTC", btc.Symbol)
	assert.Equal(t, 8, btc.Decimals)
	assert.Equal(t, "60000.00000000", btc.PriceUSD)
	assert.Equal(t, "180000000.00", btc.LiquidityUSD)
	assert.True(t, btc.Available)

	usdc := list.Assets[1]
	assert.Equal(t, 6, usdc.Decimals)
	assert.Equal(t, "2.00", usdc.LiquidityUSD)
	assert.False(t, usdc.Available)

	atom := list.Assets[2]
	assert.Equal(t, 8, atom.Decimals)
	assert.Equal(t, "0.00000000", atom.PriceUSD)
}

func TestAssetCacheIsBypassedWhenFresh(t *testing.T) {
	chain := &fakeChain{pools: []dto.Pool{{Asset: "BTC.BTC", Decimals: 8}}}
	service := newTestAssetService(chain)

	decimals, err := service.Decimals(context.Background(), "btc.btc", false)
	require.NoError(t, err)
	assert.Equal(t, 8, decimals)

	chain.pools = []dto.Pool{{Asset: "BTC.BTC", Decimals: 10}}
	decimals, err = service.Decimals(context.Background(), "BTC.BTC", false)
	require.NoError(t, err)
	assert.Equal(t, 8, decimals, "cached value")

	decimals, err = service.Decimals(context.Background(), "BTC.BTC", true)
	require.NoError(t, err)
	assert.Equal(t, 10, decimals, "fresh value")
}

func TestAssetNotFound(t *testing.T) {
	service := newTestAssetService(&fakeChain{pools: []dto.Pool{{Asset: "BTC.BTC"}}})

	_, err := service.GetAsset(context.Background(), "ETH.ETH", false)

	require.Error(t, err)
	appErr := appError.As(err, "")
	assert.Equal(t, http.StatusNotFound, appErr.ErrCode)
	assert.Equal(t, errorcode.ASSET_NOT_FOUND, appErr.ErrType)
}

func TestAssetRefreshFailureKeepsCache(t *testing.T) {
	chain := &fakeChain{pools: []dto.Pool{{Asset: "BTC.BTC", Decimals: 8}}}
	service := newTestAssetService(chain)
	_, err := service.Refresh(context.Background())
	require.NoError(t, err)

	chain.poolsErr = errors.New("thornode down")
	_, err = service.Refresh(context.Background())
	require.Error(t, err)

	list, err := service.ListAssets(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, list.Assets, 1)
}
