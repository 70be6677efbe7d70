package services

import (
	"context"
	"errors"
	"fmt"
	"memoless-api/amount"
	Config "memoless-api/config"
	"memoless-api/database"
	"memoless-api/dto"
	"memoless-api/model"
	"memoless-api/utility"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/denoms"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"
)

// PreflightService ... checks that an amount will be matched to its reference before funds are sent
type PreflightService struct {
	Config     Config.Data
	Chain      ChainClient
	Assets     AssetLookup
	Repository database.IRegistrationRepository
}

func NewPreflightService(config Config.Data, chain ChainClient, assets AssetLookup, repository database.IRegistrationRepository) *PreflightService {
	return &PreflightService{
		Config:     config,
		Chain:      chain,
		Assets:     assets,
		Repository: repository,
	}
}

var amountFailures = []struct {
	err  error
	code string
}{
	{amount.ErrMalformedAmount, errorcode.MALFORMED_AMOUNT},
	{amount.ErrMalformedReference, errorcode.MALFORMED_AMOUNT},
	{amount.ErrInvalidDecimals, errorcode.MALFORMED_AMOUNT},
	{amount.ErrNoReferencePrecision, errorcode.EXCESS_PRECISION},
	{amount.ErrExcessPrecision, errorcode.EXCESS_PRECISION},
	{amount.ErrAmountMismatch, errorcode.AMOUNT_MISMATCH},
	{amount.ErrBelowDustThreshold, errorcode.BELOW_DUST_THRESHOLD},
}

func amountFailure(err error) dto.PreflightFailure {
	for _, candidate := range amountFailures {
		if errors.Is(err, candidate.err) {
			return dto.PreflightFailure{Code: candidate.code, Message: err.Error()}
		}
	}
	return dto.PreflightFailure{Code: errorcode.VALIDATION_ERR_CODE, Message: err.Error()}
}

// Preflight ... evaluates request.Amount against the live state of its reference
func (service *PreflightService) Preflight(ctx context.Context, request dto.PreflightRequest) (dto.PreflightResponse, error) {
	response := dto.PreflightResponse{Amount: strings.TrimSpace(request.Amount)}
	asset, reference, err := service.resolve(request, &response)
	if err != nil {
		return response, err
	}
	response.Asset = asset
	response.Reference = reference

	decimals, err := service.Assets.Decimals(ctx, asset, true)
	if err != nil {
		return response, err
	}
	response.Decimals = decimals
	response.MinimumAmount = amount.MinimumValidAmount(reference, decimals)
	probe, err := amount.ToBaseUnits(response.MinimumAmount, decimals)
	if err != nil {
		return response, appError.Wrap(http.StatusBadRequest, errorcode.MALFORMED_AMOUNT, err)
	}

	var (
		check      dto.MemoCheck
		inbounds   []dto.InboundAddress
		inboundErr error
		height     int64
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		check, err = service.Chain.CheckMemo(groupCtx, asset, probe)
		return err
	})
	// reported after the usage checks
	group.Go(func() error {
		inbounds, inboundErr = service.Chain.GetInboundAddresses(groupCtx)
		return nil
	})
	group.Go(func() (err error) {
		height, err = service.Chain.GetLastBlock(groupCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		return response, appError.As(err, errorcode.CHAIN_UNAVAILABLE)
	}

	response.Memo = check.Memo
	response.UsageCount = int64(check.UsageCount)
	response.MaxUse = int64(check.MaxUse)
	if remaining := response.MaxUse - response.UsageCount; remaining > 0 {
		response.RemainingUses = remaining
	}
	response.ExpiresAtBlock = int64(check.ExpiresAt)
	response.CurrentBlock = height

	if failures := usageFailures(check, height); len(failures) > 0 {
		return rejected(response, failures)
	}

	if inboundErr != nil {
		return response, appError.As(inboundErr, errorcode.CHAIN_UNAVAILABLE)
	}
	chain, _, _ := utility.SplitAsset(asset)
	inbound, found := findInbound(inbounds, chain)
	if !found {
		return response, appError.New(http.StatusBadGateway, errorcode.CHAIN_UNAVAILABLE, "no inbound address for chain "+chain)
	}
	if inbound.Halted {
		return response, appError.New(http.StatusServiceUnavailable, errorcode.CHAIN_UNAVAILABLE, "chain "+chain+" is halted")
	}
	dust, err := fromBaseUnits(inbound.DustThreshold, denoms.THOR_BASE_DECIMALS)
	if err != nil {
		return response, err
	}

	failures := []dto.PreflightFailure{}
	for _, validationErr := range amount.ValidateAmount(response.Amount, reference, decimals, dust) {
		failures = append(failures, amountFailure(validationErr))
	}
	if len(failures) > 0 {
		return rejected(response, failures)
	}

	response.Valid = true
	response.InboundAddress = inbound.Address
	response.PaymentURI = PaymentURI(chain, inbound.Address, response.Amount)
	response.QRPayload = response.PaymentURI
	response.BlocksRemaining = response.ExpiresAtBlock - height
	response.SecondsRemaining = response.BlocksRemaining * int64(service.Config.BlockDuration().Seconds())
	return response, nil
}

// resolve ... asset and reference supplied directly win over a stored registration
func (service *PreflightService) resolve(request dto.PreflightRequest, response *dto.PreflightResponse) (string, string, error) {
	asset := strings.TrimSpace(request.Asset)
	reference := strings.TrimSpace(request.Reference)
	if asset != "" && reference != "" {
		service.attachRegistration(asset, reference, response)
		return asset, reference, nil
	}
	if request.InternalAPIID == "" {
		return "", "", appError.New(http.StatusBadRequest, errorcode.INPUT_ERR_CODE, "either internal_api_id or asset and reference are required")
	}
	if service.Repository == nil {
		return "", "", appError.New(http.StatusNotFound, errorcode.PERSISTENCE_DISABLED, errorcode.PERSISTENCE_DISABLED_ERR)
	}
	registration := model.Registration{}
	if err := service.Repository.GetRegistration(request.InternalAPIID, &registration); err != nil {
		return "", "", err
	}
	response.InternalAPIID = registration.ID.String()
	response.RegistrationStatus = registration.Status
	if !registration.IsTerminal() {
		return "", "", appError.New(http.StatusUnprocessableEntity, errorcode.REFERENCE_NOT_REGISTERED,
			fmt.Sprintf("registration %s is still pending", request.InternalAPIID))
	}
	if registration.Status != constants.REGISTRATION_CONFIRMED || registration.Reference == "" {
		return "", "", appError.New(http.StatusUnprocessableEntity, errorcode.REFERENCE_NOT_REGISTERED,
			fmt.Sprintf("registration %s is %s and has no reference", request.InternalAPIID, registration.Status))
	}
	return registration.Asset, registration.Reference, nil
}

// attachRegistration ... echoes the newest stored registration bound to reference, if any
func (service *PreflightService) attachRegistration(asset, reference string, response *dto.PreflightResponse) {
	if service.Repository == nil {
		return
	}
	registrations := []model.Registration{}
	if err := service.Repository.FetchByReference(asset, reference, &registrations); err != nil {
		logger.Warning("Could not look up registrations for %s reference %s : %s", asset, reference, err)
		return
	}
	for _, registration := range registrations {
		if registration.Status == constants.REGISTRATION_CONFIRMED {
			response.InternalAPIID = registration.ID.String()
			response.RegistrationStatus = registration.Status
			return
		}
	}
}

func usageFailures(check dto.MemoCheck, height int64) []dto.PreflightFailure {
	failures := []dto.PreflightFailure{}
	if check.Available {
		failures = append(failures, dto.PreflightFailure{Code: errorcode.REFERENCE_NOT_REGISTERED, Message: "reference is not registered on chain"})
	}
	if check.UsageCount >= check.MaxUse {
		failures = append(failures, dto.PreflightFailure{Code: errorcode.REFERENCE_EXHAUSTED,
			Message: fmt.Sprintf("reference used %d of %d times", check.UsageCount, check.MaxUse)})
	}
	if check.ExpiresAt <= 0 {
		failures = append(failures, dto.PreflightFailure{Code: errorcode.REFERENCE_EXPIRED, Message: "reference has no active expiry"})
	} else if int64(check.ExpiresAt) <= height {
		failures = append(failures, dto.PreflightFailure{Code: errorcode.REFERENCE_EXPIRED,
			Message: fmt.Sprintf("reference expired at block %d, current block is %d", check.ExpiresAt, height)})
	}
	return failures
}

func rejected(response dto.PreflightResponse, failures []dto.PreflightFailure) (dto.PreflightResponse, error) {
	response.Valid = false
	response.Errors = failures
	return response, appError.Err{
		ErrCode: http.StatusUnprocessableEntity,
		ErrType: failures[0].Code,
		Err:     errors.New(failures[0].Message),
		ErrData: response,
	}
}

func findInbound(inbounds []dto.InboundAddress, chain string) (dto.InboundAddress, bool) {
	for _, inbound := range inbounds {
		if strings.EqualFold(inbound.Chain, chain) {
			return inbound, true
		}
	}
	return dto.InboundAddress{}, false
}

// PaymentURI ... wallet payment URI, also used as the QR code payload
func PaymentURI(chain, address, value string) string {
	uri := fmt.Sprintf("%s:%s", denoms.PaymentScheme(chain), address)
	if value == "" {
		return uri
	}
	return uri + "?amount=" + value
}
