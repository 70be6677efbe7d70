package services

import (
	"context"
	"errors"
	"memoless-api/dto"
	"memoless-api/model"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/errorcode"
	"net/http"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/shopspring/decimal"
)

type fakeChain struct {
	mu           sync.Mutex
	pools        []dto.Pool
	poolsErr     error
	inbounds     []dto.InboundAddress
	inboundsErr  error
	references   []dto.MemoReference
	referenceErr error
	memoCalls    int
	check        dto.MemoCheck
	checkErr     error
	checkArgs    []string
	height       int64
	heightErr    error
	fee          decimal.Decimal
	balance      decimal.Decimal
	balanceErr   error
}

func (f *fakeChain) GetPools(ctx context.Context) ([]dto.Pool, error) {
	return f.pools, f.poolsErr
}

func (f *fakeChain) GetInboundAddresses(ctx context.Context) ([]dto.InboundAddress, error) {
	return f.inbounds, f.inboundsErr
}

// GetMemoByHash ... answers with references in order, repeating the last one
func (f *fakeChain) GetMemoByHash(ctx context.Context, txHash string) (dto.MemoReference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memoCalls++
	if f.referenceErr != nil {
		return dto.MemoReference{}, f.referenceErr
	}
	if len(f.references) == 0 {
		return dto.MemoReference{}, nil
	}
	index := f.memoCalls - 1
	if index >= len(f.references) {
		index = len(f.references) - 1
	}
	return f.references[index], nil
}

func (f *fakeChain) CheckMemo(ctx context.Context, asset string, rawAmount string) (dto.MemoCheck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkArgs = []string{asset, rawAmount}
	return f.check, f.checkErr
}

func (f *fakeChain) GetLastBlock(ctx context.Context) (int64, error) {
	return f.height, f.heightErr
}

func (f *fakeChain) GetNetworkFee(ctx context.Context) (decimal.Decimal, error) {
	return f.fee, nil
}

func (f *fakeChain) GetBalance(ctx context.Context, address string, denom string) (decimal.Decimal, error) {
	return f.balance, f.balanceErr
}

type broadcastResult struct {
	hash string
	err  error
}

type fakeBroadcaster struct {
	results  []broadcastResult
	requests []dto.BroadcastRequest
}

func (f *fakeBroadcaster) Broadcast(ctx context.Context, request dto.BroadcastRequest) (string, error) {
	f.requests = append(f.requests, request)
	if len(f.results) == 0 {
		return "", errors.New("no broadcast result queued")
	}
	result := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return result.hash, result.err
}

type fakeAssets struct {
	decimals int
	err      error
	freshErr error
	calls    []bool
	mu       sync.Mutex
}

func (f *fakeAssets) Decimals(ctx context.Context, asset string, fresh bool) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fresh)
	if fresh && f.freshErr != nil {
		return 0, f.freshErr
	}
	if !fresh && f.err != nil {
		return 0, f.err
	}
	return f.decimals, nil
}

type fakeNotifier struct {
	successes []dto.SuccessNotification
	failures  []dto.FailureNotification
	err       error
}

func (f *fakeNotifier) NotifySuccess(ctx context.Context, payload dto.SuccessNotification) AdvisoryResult {
	f.successes = append(f.successes, payload)
	return advisory("notify-success", f.err)
}

func (f *fakeNotifier) NotifyFailure(ctx context.Context, payload dto.FailureNotification) AdvisoryResult {
	f.failures = append(f.failures, payload)
	return advisory("notify-failure", f.err)
}

type fakeWallet struct {
	err        error
	checks     int
	alerts     int
	balanceStr string
}

func (f *fakeWallet) CheckOperatingBalance(ctx context.Context) AdvisoryResult {
	f.checks++
	return advisory("check-operating-balance", f.err)
}

func (f *fakeWallet) BalanceString(ctx context.Context) string {
	if f.balanceStr == "" {
		return "unknown"
	}
	return f.balanceStr
}

func (f *fakeWallet) AlertIfLow(ctx context.Context) AdvisoryResult {
	f.alerts++
	return advisory("low-balance-alert", f.err)
}

// fakeRepository ... in memory registrations, recording the order of writes
type fakeRepository struct {
	registrations map[string]*model.Registration
	operations    []string
	createErr     error
	confirmErr    error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{registrations: map[string]*model.Registration{}}
}

func (f *fakeRepository) Get(id interface{}, m interface{}) error { return nil }
func (f *fakeRepository) Create(m interface{}) error              { return nil }

func (f *fakeRepository) CreatePending(registration *model.Registration) error {
	f.operations = append(f.operations, "create")
	if f.createErr != nil {
		return f.createErr
	}
	registration.ID = uuid.NewV4()
	registration.Status = constants.REGISTRATION_PENDING
	registration.CreatedAt = time.Now()
	stored := *registration
	f.registrations[registration.ID.String()] = &stored
	return nil
}

func (f *fakeRepository) pending(id string) (*model.Registration, error) {
	registration, ok := f.registrations[id]
	if !ok || registration.Status != constants.REGISTRATION_PENDING {
		return nil, appError.New(http.StatusConflict, errorcode.SERVER_ERR_CODE, "registration is no longer pending")
	}
	return registration, nil
}

func (f *fakeRepository) SetTxHash(id string, txHash string) error {
	f.operations = append(f.operations, "hash")
	registration, err := f.pending(id)
	if err != nil {
		return err
	}
	registration.TxHash = &txHash
	return nil
}

func (f *fakeRepository) ConfirmRegistration(id string, confirmation model.Confirmation) error {
	f.operations = append(f.operations, "confirm")
	if f.confirmErr != nil {
		return f.confirmErr
	}
	if !confirmation.Valid() {
		return errors.New("partial confirmation")
	}
	registration, err := f.pending(id)
	if err != nil {
		return err
	}
	registration.Status = constants.REGISTRATION_CONFIRMED
	registration.Reference = confirmation.Reference
	registration.ReferenceLength = confirmation.ReferenceLength
	registration.Height = confirmation.Height
	registration.RegisteredBy = confirmation.RegisteredBy
	registration.Decimals = confirmation.Decimals
	registration.MinimumAmount = confirmation.MinimumAmount
	return nil
}

func (f *fakeRepository) MarkFailed(id string, txHash string, reason string) error {
	f.operations = append(f.operations, "fail")
	registration, err := f.pending(id)
	if err != nil {
		return err
	}
	registration.Status = constants.REGISTRATION_FAILED
	registration.FailureReason = reason
	if txHash != "" {
		registration.TxHash = &txHash
	}
	return nil
}

func (f *fakeRepository) GetRegistration(id string, registration *model.Registration) error {
	stored, ok := f.registrations[id]
	if !ok {
		return appError.New(http.StatusNotFound, errorcode.REGISTRATION_NOT_FOUND, errorcode.REGISTRATION_404_ERR)
	}
	*registration = *stored
	return nil
}

func (f *fakeRepository) FetchByReference(asset, reference string, registrations *[]model.Registration) error {
	for _, stored := range f.registrations {
		if stored.Asset == asset && stored.Reference == reference {
			*registrations = append(*registrations, *stored)
		}
	}
	return nil
}

func (f *fakeRepository) only() *model.Registration {
	for _, registration := range f.registrations {
		return registration
	}
	return nil
}

type recordedSleeps struct {
	delays []time.Duration
}

func (r *recordedSleeps) sleep(ctx context.Context, d time.Duration) error {
	r.delays = append(r.delays, d)
	return nil
}
