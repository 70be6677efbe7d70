package services

import (
	"context"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility"
	"memoless-api/utility/appError"
	"memoless-api/utility/cache"
	"memoless-api/utility/constants"
	"memoless-api/utility/denoms"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AssetService object
type AssetService struct {
	Cache  *cache.Memory
	Config Config.Data
	Chain  ChainClient
	Now    func() time.Time
}

func NewAssetService(cache *cache.Memory, config Config.Data, chain ChainClient) *AssetService {
	return &AssetService{
		Cache:  cache,
		Config: config,
		Chain:  chain,
		Now:    time.Now,
	}
}

// Refresh ... reloads the pool listing and replaces the cached asset list
func (service *AssetService) Refresh(ctx context.Context) (dto.AssetList, error) {
	pools, err := service.Chain.GetPools(ctx)
	if err != nil {
		return dto.AssetList{}, err
	}
	list := dto.AssetList{Assets: make([]dto.Asset, 0, len(pools)), UpdatedAt: service.Now()}
	for _, pool := range pools {
		list.Assets = append(list.Assets, toAsset(pool))
	}
	if service.Cache != nil {
		service.Cache.SetFor(constants.ASSET_CACHE_KEY, list, service.Config.AssetCacheDuration)
	}
	logger.Debug("Asset list refreshed with %d assets", len(list.Assets))
	return list, nil
}

// ListAssets ... cached asset list; fresh forces a reload
func (service *AssetService) ListAssets(ctx context.Context, fresh bool) (dto.AssetList, error) {
	if !fresh && service.Cache != nil {
		if cached, ok := service.Cache.Get(constants.ASSET_CACHE_KEY).(dto.AssetList); ok {
			return cached, nil
		}
	}
	return service.Refresh(ctx)
}

// GetAsset ... single asset by identifier, case insensitive
func (service *AssetService) GetAsset(ctx context.Context, asset string, fresh bool) (dto.Asset, error) {
	list, err := service.ListAssets(ctx, fresh)
	if err != nil {
		return dto.Asset{}, err
	}
	for _, item := range list.Assets {
		if strings.EqualFold(item.Asset, asset) {
			return item, nil
		}
	}
	return dto.Asset{}, appError.New(http.StatusNotFound, errorcode.ASSET_NOT_FOUND, "asset "+asset+" is not listed")
}

// Decimals ... decimal precision of asset
func (service *AssetService) Decimals(ctx context.Context, asset string, fresh bool) (int, error) {
	item, err := service.GetAsset(ctx, asset, fresh)
	if err != nil {
		return 0, err
	}
	return item.Decimals, nil
}

func toAsset(pool dto.Pool) dto.Asset {
	chain, symbol, _ := utility.SplitAsset(pool.Asset)
	decimals := int(pool.Decimals)
	if decimals <= 0 {
		decimals = denoms.THOR_BASE_DECIMALS
	}
	price := parseUnits(pool.AssetTorPrice)
	depth := parseUnits(pool.BalanceAsset)
	liquidity := depth.Mul(price).Mul(decimal.New(2, 0))
	return dto.Asset{
		Asset:        pool.Asset,
		Chain:        chain,
		Symbol:       symbol,
		Status:       pool.Status,
		Decimals:     decimals,
		PriceUSD:     price.StringFixed(8),
		LiquidityUSD: liquidity.StringFixed(2),
		Available:    strings.EqualFold(pool.Status, constants.AVAILABLE_POOL_STATUS),
	}
}

// parseUnits ... thornode 1e8 fixed point string to a decimal, zero when absent
func parseUnits(value string) decimal.Decimal {
	units, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return units.Shift(-denoms.THOR_BASE_DECIMALS)
}
