package services

import (
	"context"
	"fmt"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility"
	"memoless-api/utility/apiClient"
	"memoless-api/utility/appError"
	"memoless-api/utility/denoms"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// ThornodeService ... REST client for a thornode API
type ThornodeService struct {
	Config     Config.Data
	HTTPClient *http.Client
}

func NewThornodeService(config Config.Data, httpClient *http.Client) *ThornodeService {
	return &ThornodeService{
		Config:     config,
		HTTPClient: httpClient,
	}
}

func (service *ThornodeService) get(ctx context.Context, request string, responseData interface{}, params ...interface{}) error {
	metaData := utility.GetRequestMetaData(request, service.Config)
	action := metaData.Action
	if len(params) > 0 {
		escaped := make([]interface{}, len(params))
		for i, param := range params {
			escaped[i] = url.PathEscape(fmt.Sprint(param))
		}
		action = fmt.Sprintf(action, escaped...)
	}

	APIClient := apiClient.New(service.HTTPClient, service.Config, metaData.Endpoint)
	APIRequest, err := APIClient.NewRequest(metaData.Type, action, nil)
	if err != nil {
		return appError.Wrap(http.StatusInternalServerError, errorcode.SERVER_ERR_CODE, err)
	}
	if _, err = APIClient.Do(ctx, APIRequest, responseData); err != nil {
		logger.Error("An error occured while calling thornode %s : %s", request, err)
		appErr := appError.As(err, errorcode.CHAIN_UNAVAILABLE)
		if appErr.ErrCode != http.StatusNotFound {
			appErr.ErrCode = http.StatusBadGateway
		}
		appErr.ErrType = errorcode.CHAIN_UNAVAILABLE
		return appErr
	}
	return nil
}

// GetPools ...
func (service *ThornodeService) GetPools(ctx context.Context) ([]dto.Pool, error) {
	pools := []dto.Pool{}
	err := service.get(ctx, "getPools", &pools)
	return pools, err
}

// GetInboundAddresses ...
func (service *ThornodeService) GetInboundAddresses(ctx context.Context) ([]dto.InboundAddress, error) {
	addresses := []dto.InboundAddress{}
	err := service.get(ctx, "getInboundAddresses", &addresses)
	return addresses, err
}

// GetMemoByHash ... reference registered by a memo registration transaction
func (service *ThornodeService) GetMemoByHash(ctx context.Context, txHash string) (dto.MemoReference, error) {
	reference := dto.MemoReference{}
	err := service.get(ctx, "getMemoByHash", &reference, txHash)
	return reference, err
}

// CheckMemo ... usage statistics of the reference rawAmount decodes to
func (service *ThornodeService) CheckMemo(ctx context.Context, asset string, rawAmount string) (dto.MemoCheck, error) {
	check := dto.MemoCheck{}
	err := service.get(ctx, "checkMemoReference", &check, asset, rawAmount)
	return check, err
}

// GetLastBlock ... current THORChain height
func (service *ThornodeService) GetLastBlock(ctx context.Context) (int64, error) {
	blocks := []dto.LastBlock{}
	if err := service.get(ctx, "getLastBlock", &blocks); err != nil {
		return 0, err
	}
	var height int64
	for _, block := range blocks {
		if int64(block.Thorchain) > height {
			height = int64(block.Thorchain)
		}
	}
	if height == 0 {
		return 0, appError.New(http.StatusBadGateway, errorcode.CHAIN_UNAVAILABLE, "thornode returned no block height")
	}
	return height, nil
}

// GetNetworkFee ... native transaction fee in RUNE
func (service *ThornodeService) GetNetworkFee(ctx context.Context) (decimal.Decimal, error) {
	network := dto.Network{}
	if err := service.get(ctx, "getNetwork", &network); err != nil {
		return decimal.Zero, err
	}
	return fromBaseUnits(network.NativeTxFeeRune, denoms.NATIVE_DECIMALS)
}

// GetBalance ... balance of denom held by address, in whole units
func (service *ThornodeService) GetBalance(ctx context.Context, address string, denom string) (decimal.Decimal, error) {
	balances := dto.Balances{}
	if err := service.get(ctx, "getBalances", &balances, address); err != nil {
		return decimal.Zero, err
	}
	for _, coin := range balances.Balances {
		if strings.EqualFold(coin.Denom, denom) {
			return fromBaseUnits(coin.Amount, denoms.NATIVE_DECIMALS)
		}
	}
	return decimal.Zero, nil
}

func fromBaseUnits(value string, decimals int32) (decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return decimal.Zero, nil
	}
	units, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, appError.Wrap(http.StatusBadGateway, errorcode.CHAIN_UNAVAILABLE, err)
	}
	return units.Shift(-decimals), nil
}
