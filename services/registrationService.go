package services

import (
	"context"
	"errors"
	"memoless-api/amount"
	Config "memoless-api/config"
	"memoless-api/database"
	"memoless-api/dto"
	"memoless-api/memo"
	"memoless-api/model"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/denoms"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// RegistrationService ... drives one memo registration from broadcast to confirmed reference
type RegistrationService struct {
	Config      Config.Data
	Affiliate   Config.AffiliateConfig
	Policy      Config.RetryPolicy
	Chain       ChainClient
	Assets      AssetLookup
	Broadcaster Broadcaster
	Repository  database.IRegistrationRepository
	Notifier    Notifier
	Wallet      WalletChecker
	Sleep       SleepFunc
	Now         func() time.Time
}

// NewRegistrationService ... repository may be nil when persistence is disabled
func NewRegistrationService(config Config.Data, chain ChainClient, assets AssetLookup, broadcaster Broadcaster,
	repository database.IRegistrationRepository, notifier Notifier, wallet WalletChecker) *RegistrationService {
	return &RegistrationService{
		Config:      config,
		Affiliate:   config.Affiliate(),
		Policy:      config.ConfirmRetryPolicy(),
		Chain:       chain,
		Assets:      assets,
		Broadcaster: broadcaster,
		Repository:  repository,
		Notifier:    notifier,
		Wallet:      wallet,
		Sleep:       Sleep,
		Now:         time.Now,
	}
}

type decimalsResult struct {
	decimals int
	err      error
}

// Register ... broadcasts the memo registration, reads the reference back and returns the amount envelope.
// Every call creates a new registration.
func (service *RegistrationService) Register(ctx context.Context, request dto.RegisterRequest) (dto.RegisterResponse, error) {
	response := dto.RegisterResponse{}
	asset := strings.TrimSpace(request.Asset)
	originalMemo := strings.TrimSpace(request.Memo)
	if asset == "" || originalMemo == "" {
		return response, appError.New(http.StatusBadRequest, errorcode.INPUT_ERR_CODE, "asset and memo are required")
	}
	requested := strings.TrimSpace(request.RequestedInAssetAmount)
	if requested != "" {
		if _, err := amount.Compare(requested, "0"); err != nil {
			return response, appError.Wrap(http.StatusBadRequest, errorcode.MALFORMED_AMOUNT, err)
		}
	}

	decimalsCh := service.lookupDecimals(ctx, asset)

	service.Wallet.CheckOperatingBalance(ctx).Log()

	memoToRegister := service.applyAffiliate(originalMemo)

	registration := &model.Registration{Asset: asset, Memo: originalMemo}
	if memoToRegister != originalMemo {
		registration.ModifiedMemo = memoToRegister
	}
	if service.Repository != nil {
		if err := service.Repository.CreatePending(registration); err != nil {
			logger.Error("Could not record pending registration for %s : %s", asset, err)
			return response, appError.As(err, errorcode.SERVER_ERR_CODE)
		}
	}

	txHash, err := service.broadcast(ctx, dto.BroadcastRequest{Memo: memoToRegister, Asset: asset, Network: service.Config.Network})
	if err != nil {
		service.fail(ctx, registration, "", memoToRegister, constants.BROADCAST_FAILED_MSG, err)
		return response, appError.Wrap(http.StatusBadGateway, errorcode.BROADCAST_FAILED, err)
	}
	logger.Info("Memo registration for %s broadcast with hash %s", asset, txHash)
	if service.Repository != nil {
		if err := service.Repository.SetTxHash(registration.ID.String(), txHash); err != nil {
			logger.Error("Could not record hash %s on registration %s : %s", txHash, registration.ID, err)
		}
	}

	reference, err := service.confirm(ctx, txHash)
	if err != nil {
		service.fail(ctx, registration, txHash, memoToRegister, constants.CONFIRMATION_FAILED_MSG, err)
		return response, appError.Err{
			ErrCode: http.StatusGatewayTimeout,
			ErrType: errorcode.CONFIRMATION_UNAVAILABLE,
			Err:     err,
			ErrData: map[string]string{"txHash": txHash},
		}
	}

	decimals := service.awaitDecimals(ctx, asset, decimalsCh)
	minimum := amount.MinimumValidAmount(reference.Reference, decimals)
	suggested := ""
	if requested != "" {
		if suggested, err = amount.EmbedAndRaise(requested, reference.Reference, decimals, amount.Up); err != nil {
			logger.Warning("Could not compute suggested amount from %s : %s", requested, err)
			suggested = ""
		}
	}

	confirmation := model.Confirmation{
		Reference:       reference.Reference,
		ReferenceLength: len(reference.Reference),
		Height:          int64(reference.Height),
		RegisteredBy:    reference.RegisteredBy,
		Decimals:        decimals,
		MinimumAmount:   minimum,
	}
	stored := service.Repository != nil
	if stored {
		if err := service.Repository.ConfirmRegistration(registration.ID.String(), confirmation); err != nil {
			logger.Error("Registration %s confirmed on chain but could not be stored : %s", registration.ID, err)
			sentry.CaptureException(err)
			stored = false
		}
	}

	response = dto.RegisterResponse{
		Asset:                  asset,
		Memo:                   memoToRegister,
		Reference:              confirmation.Reference,
		ReferenceLength:        confirmation.ReferenceLength,
		Height:                 confirmation.Height,
		RegistrationHash:       txHash,
		RegisteredBy:           confirmation.RegisteredBy,
		TxHash:                 txHash,
		Decimals:               decimals,
		MinimumAmountToSend:    minimum,
		SuggestedInAssetAmount: suggested,
	}
	// a row left pending would not resolve in preflight
	if stored {
		response.InternalAPIID = registration.ID.String()
	}

	service.Notifier.NotifySuccess(ctx, dto.SuccessNotification{
		Asset:            asset,
		Reference:        confirmation.Reference,
		Network:          service.Config.Network,
		HotWalletAddress: service.Config.HotWalletAddress,
		HotWalletBalance: service.Wallet.BalanceString(ctx),
		TxHash:           txHash,
		Memo:             memoToRegister,
		RegistrationID:   response.InternalAPIID,
		Timestamp:        service.Now().UTC(),
	}).Log()
	service.Wallet.AlertIfLow(ctx).Log()

	return response, nil
}

func (service *RegistrationService) lookupDecimals(ctx context.Context, asset string) <-chan decimalsResult {
	result := make(chan decimalsResult, 1)
	go func() {
		decimals, err := service.Assets.Decimals(ctx, asset, false)
		result <- decimalsResult{decimals: decimals, err: err}
	}()
	return result
}

// awaitDecimals ... falls back to one fresh lookup, then to the THORChain base precision
func (service *RegistrationService) awaitDecimals(ctx context.Context, asset string, pending <-chan decimalsResult) int {
	var result decimalsResult
	select {
	case result = <-pending:
	case <-ctx.Done():
		result = decimalsResult{err: ctx.Err()}
	}
	if result.err == nil {
		return result.decimals
	}
	logger.Warning("Decimals lookup for %s failed, retrying uncached : %s", asset, result.err)
	decimals, err := service.Assets.Decimals(ctx, asset, true)
	if err != nil {
		logger.Error("Decimals for %s unavailable, using %d : %s", asset, denoms.THOR_BASE_DECIMALS, err)
		return denoms.THOR_BASE_DECIMALS
	}
	return decimals
}

// applyAffiliate ... returns the memo to broadcast, the original one whenever injection does not apply
func (service *RegistrationService) applyAffiliate(original string) string {
	if !service.Affiliate.Enabled {
		return original
	}
	modified, err := memo.AddAffiliate(original, service.Affiliate.Address, service.Affiliate.FeeBps)
	if err != nil {
		logger.Info("Affiliate not added to memo, registering it unchanged : %s", err)
		return original
	}
	return modified
}

// broadcast ... one submission, retried once when the signer reports a sequence conflict
func (service *RegistrationService) broadcast(ctx context.Context, request dto.BroadcastRequest) (string, error) {
	txHash, err := service.Broadcaster.Broadcast(ctx, request)
	if errors.Is(err, ErrSequenceMismatch) {
		logger.Warning("Broadcast hit a sequence conflict, retrying once : %s", err)
		txHash, err = service.Broadcaster.Broadcast(ctx, request)
	}
	if err != nil {
		return "", err
	}
	if txHash == "" {
		return "", errors.New("broadcast returned no transaction hash")
	}
	return txHash, nil
}

// confirm ... reads back the reference bound to txHash under the retry policy
func (service *RegistrationService) confirm(ctx context.Context, txHash string) (dto.MemoReference, error) {
	reference := dto.MemoReference{}
	err := RetryWithBackoff(ctx, service.Policy, service.Sleep, func(attempt int) error {
		found, err := service.Chain.GetMemoByHash(ctx, txHash)
		if err != nil {
			return err
		}
		if found.Reference == "" || found.Height <= 0 || found.RegisteredBy == "" {
			return ErrReferenceNotReady
		}
		reference = found
		return nil
	})
	return reference, err
}

// fail ... marks the registration failed and sends the failure notification
func (service *RegistrationService) fail(ctx context.Context, registration *model.Registration, txHash string, attemptedMemo string, message string, cause error) {
	logger.Error("%s for %s : %s", message, registration.Asset, cause)
	if service.Repository != nil {
		if err := service.Repository.MarkFailed(registration.ID.String(), txHash, message+": "+cause.Error()); err != nil {
			logger.Error("Could not mark registration %s failed : %s", registration.ID, err)
		}
	}
	hash := txHash
	if hash == "" {
		hash = constants.FAILED_TO_SUBMIT
	}
	service.Notifier.NotifyFailure(ctx, dto.FailureNotification{
		Asset:            registration.Asset,
		Network:          service.Config.Network,
		HotWalletAddress: service.Config.HotWalletAddress,
		HotWalletBalance: service.Wallet.BalanceString(ctx),
		TxHash:           hash,
		Memo:             attemptedMemo,
		Error:            message,
		ErrorDetails:     cause.Error(),
		Timestamp:        service.Now().UTC(),
	}).Log()
}
