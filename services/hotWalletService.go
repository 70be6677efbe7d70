package services

import (
	"context"
	"errors"
	"fmt"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility/constants"
	"memoless-api/utility/denoms"
	"memoless-api/utility/logger"
	"time"

	"github.com/shopspring/decimal"
)

// HotWalletService object
type HotWalletService struct {
	Config   Config.Data
	Chain    ChainClient
	Notifier Notifier
	Throttle Throttle
	Now      func() time.Time
}

func NewHotWalletService(config Config.Data, chain ChainClient, notifier Notifier, throttle Throttle) *HotWalletService {
	return &HotWalletService{
		Config:   config,
		Chain:    chain,
		Notifier: notifier,
		Throttle: throttle,
		Now:      time.Now,
	}
}

// Configured ...
func (service *HotWalletService) Configured() bool {
	return service.Config.HotWalletAddress != ""
}

// Balance ... RUNE held by the hot wallet
func (service *HotWalletService) Balance(ctx context.Context) (decimal.Decimal, error) {
	if !service.Configured() {
		return decimal.Zero, errors.New("hot wallet address is not configured")
	}
	return service.Chain.GetBalance(ctx, service.Config.HotWalletAddress, denoms.NATIVE_DENOM)
}

// BalanceString ... balance for notifications, "unknown" when it cannot be read
func (service *HotWalletService) BalanceString(ctx context.Context) string {
	balance, err := service.Balance(ctx)
	if err != nil {
		return "unknown"
	}
	return balance.String()
}

// CheckOperatingBalance ... warns when the wallet cannot pay for a registration; never blocks one
func (service *HotWalletService) CheckOperatingBalance(ctx context.Context) AdvisoryResult {
	operation := "check-operating-balance"
	balance, err := service.Balance(ctx)
	if err != nil {
		return advisory(operation, err)
	}
	minimum := thresholdOrZero(service.Config.MinimumOperatingBalance)
	if fee, feeErr := service.Chain.GetNetworkFee(ctx); feeErr == nil && fee.GreaterThan(minimum) {
		minimum = fee
	}
	if balance.LessThan(minimum) {
		return advisory(operation, fmt.Errorf("hot wallet balance %s is below operating minimum %s", balance, minimum))
	}
	return advisory(operation, nil)
}

// AlertIfLow ... sends one low balance alert per window when the balance drops below the threshold
func (service *HotWalletService) AlertIfLow(ctx context.Context) AdvisoryResult {
	operation := "low-balance-alert"
	threshold := thresholdOrZero(service.Config.LowBalanceThreshold)
	if threshold.IsZero() || service.Notifier == nil {
		return skipped(operation)
	}
	balance, err := service.Balance(ctx)
	if err != nil {
		return advisory(operation, err)
	}
	if !balance.LessThan(threshold) {
		return skipped(operation)
	}
	window := time.Duration(service.Config.LowBalanceAlertWindow) * time.Second
	if service.Throttle != nil && !service.Throttle.Allow(constants.LOW_BALANCE_ALERT_KEY, window) {
		logger.Info("Low balance alert already sent within %s", window)
		return skipped(operation)
	}
	result := service.Notifier.NotifyFailure(ctx, dto.FailureNotification{
		Event:            dto.EVENT_LOW_BALANCE,
		Network:          service.Config.Network,
		HotWalletAddress: service.Config.HotWalletAddress,
		HotWalletBalance: balance.String(),
		Error:            constants.LOW_BALANCE_MSG,
		ErrorDetails:     fmt.Sprintf("balance %s is below threshold %s", balance, threshold),
		Timestamp:        service.Now().UTC(),
	})
	result.Operation = operation
	return result
}

func thresholdOrZero(value string) decimal.Decimal {
	threshold, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return threshold
}
