package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	Config "memoless-api/config"
	"memoless-api/database"
	"memoless-api/dto"
	"memoless-api/model"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/validator"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/suite"
)

type fakeRegistrar struct {
	response dto.RegisterResponse
	err      error
	requests []dto.RegisterRequest
}

func (f *fakeRegistrar) Register(ctx context.Context, request dto.RegisterRequest) (dto.RegisterResponse, error) {
	f.requests = append(f.requests, request)
	return f.response, f.err
}

type fakePreflight struct {
	response dto.PreflightResponse
	err      error
}

func (f *fakePreflight) Preflight(ctx context.Context, request dto.PreflightRequest) (dto.PreflightResponse, error) {
	return f.response, f.err
}

type fakeCatalog struct {
	list  dto.AssetList
	err   error
	fresh bool
}

func (f *fakeCatalog) ListAssets(ctx context.Context, fresh bool) (dto.AssetList, error) {
	f.fresh = fresh
	return f.list, f.err
}

func (f *fakeCatalog) GetAsset(ctx context.Context, asset string, fresh bool) (dto.Asset, error) {
	for _, item := range f.list.Assets {
		if item.Asset == asset {
			return item, nil
		}
	}
	return dto.Asset{}, appError.New(http.StatusNotFound, errorcode.ASSET_NOT_FOUND, "asset "+asset+" is not listed")
}

type fakeHealth struct {
	response dto.HealthResponse
}

func (f fakeHealth) Check(ctx context.Context) dto.HealthResponse {
	return f.response
}

// storedRegistrations ... only GetRegistration is reached by the controllers
type storedRegistrations struct {
	database.IRegistrationRepository
	registrations map[string]model.Registration
}

func (s storedRegistrations) GetRegistration(id string, registration *model.Registration) error {
	stored, ok := s.registrations[id]
	if !ok {
		return appError.New(http.StatusNotFound, errorcode.REGISTRATION_NOT_FOUND, errorcode.REGISTRATION_404_ERR)
	}
	*registration = stored
	return nil
}

type errorBody struct {
	Success          bool                `json:"success"`
	Code             string              `json:"code"`
	Message          string              `json:"message"`
	Data             json.RawMessage     `json:"data"`
	ValidationErrors []map[string]string `json:"validation_errors"`
}

type ControllerSuite struct {
	suite.Suite
	Config     Config.Data
	Registrar  *fakeRegistrar
	Preflight  *fakePreflight
	Catalog    *fakeCatalog
	Health     *fakeHealth
	Repository database.IRegistrationRepository
	Stored     model.Registration
}

func TestControllers(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.Config = Config.Data{ExplorerURL: "https://runescan.io/tx/"}
	s.Registrar = &fakeRegistrar{}
	s.Preflight = &fakePreflight{}
	s.Catalog = &fakeCatalog{list: dto.AssetList{Assets: []dto.Asset{{Asset: "BTC.BTC", Decimals: 8}}}}
	s.Health = &fakeHealth{response: dto.HealthResponse{Status: "ok"}}
	hash := "ABC"
	s.Stored = model.Registration{Asset: "BTC.BTC", Memo: "=:ETH.ETH:0xabc", Status: constants.REGISTRATION_CONFIRMED,
		TxHash: &hash, Reference: "00023", ReferenceLength: 5, Height: 100, RegisteredBy: "thor1hot", Decimals: 8, MinimumAmount: "0.00100023"}
	s.Stored.ID = uuid.NewV4()
	s.Stored.CreatedAt = time.Now()
	s.Repository = storedRegistrations{registrations: map[string]model.Registration{s.Stored.ID.String(): s.Stored}}
}

func (s *ControllerSuite) router() *mux.Router {
	validate := validator.New()
	router := mux.NewRouter()
	base := NewController(s.Config, validate)
	registration := NewRegistrationController(s.Config, validate, s.Registrar, s.Repository)
	preflight := NewPreflightController(s.Config, validate, s.Preflight)
	assets := NewAssetController(s.Config, validate, s.Catalog)
	health := NewHealthController(s.Config, validate, s.Health)

	router.HandleFunc("/ping", base.Ping).Methods(http.MethodGet)
	router.HandleFunc("/register", registration.Register).Methods(http.MethodPost)
	router.HandleFunc("/register/{id}", registration.GetRegistration).Methods(http.MethodGet)
	router.HandleFunc("/preflight", preflight.Preflight).Methods(http.MethodPost)
	router.HandleFunc("/assets", assets.FetchAssets).Methods(http.MethodGet)
	router.HandleFunc("/assets/{asset}", assets.GetAsset).Methods(http.MethodGet)
	router.HandleFunc("/track-transaction", assets.TrackTransaction).Methods(http.MethodPost)
	router.HandleFunc("/health", health.Health).Methods(http.MethodGet)
	return router
}

func (s *ControllerSuite) serve(method, path, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	recorder := httptest.NewRecorder()
	s.router().ServeHTTP(recorder, request)
	return recorder
}

func (s *ControllerSuite) decodeError(recorder *httptest.ResponseRecorder) errorBody {
	body := errorBody{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.False(body.Success)
	return body
}

func (s *ControllerSuite) Test_Ping() {
	recorder := s.serve(http.MethodGet, "/ping", "")
	s.Equal(http.StatusOK, recorder.Code)
}

func (s *ControllerSuite) Test_RegisterCreated() {
	s.Registrar.response = dto.RegisterResponse{Asset: "BTC.BTC", Reference: "00023", ReferenceLength: 5, TxHash: "ABC", MinimumAmountToSend: "0.00100023"}

	recorder := s.serve(http.MethodPost, "/register", `{"asset":"BTC.BTC","memo":"=:ETH.ETH:0xabc","requested_in_asset_amount":"0.5"}`)

	s.Equal(http.StatusCreated, recorder.Code)
	s.Equal("application/json", recorder.Header().Get("Content-Type"))
	body := dto.RegisterResponse{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Equal("00023", body.Reference)
	s.Equal("0.00100023", body.MinimumAmountToSend)
	s.Require().Len(s.Registrar.requests, 1)
	s.Equal("0.5", s.Registrar.requests[0].RequestedInAssetAmount)
}

func (s *ControllerSuite) Test_RegisterValidation() {
	recorder := s.serve(http.MethodPost, "/register", `{"asset":"BTCBTC"}`)

	s.Equal(http.StatusBadRequest, recorder.Code)
	body := s.decodeError(recorder)
	s.Equal(errorcode.INPUT_ERR_CODE, body.Code)
	s.Len(body.ValidationErrors, 2)
	s.Empty(s.Registrar.requests)
}

func (s *ControllerSuite) Test_RegisterMalformedBody() {
	recorder := s.serve(http.MethodPost, "/register", `{"asset":`)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Equal(errorcode.INPUT_ERR_CODE, s.decodeError(recorder).Code)
}

func (s *ControllerSuite) Test_RegisterFailureCarriesCode() {
	s.Registrar.err = appError.Err{ErrCode: http.StatusGatewayTimeout, ErrType: errorcode.CONFIRMATION_UNAVAILABLE,
		Err: errors.New("reference not found"), ErrData: map[string]string{"txHash": "ABC"}}

	recorder := s.serve(http.MethodPost, "/register", `{"asset":"BTC.BTC","memo":"=:ETH.ETH:0xabc"}`)

	s.Equal(http.StatusGatewayTimeout, recorder.Code)
	body := s.decodeError(recorder)
	s.Equal(errorcode.CONFIRMATION_UNAVAILABLE, body.Code)
	s.JSONEq(`{"txHash":"ABC"}`, string(body.Data))
}

func (s *ControllerSuite) Test_RegisterInternalErrorHidesDetails() {
	s.Registrar.err = errors.New("dial tcp: secret host")

	recorder := s.serve(http.MethodPost, "/register", `{"asset":"BTC.BTC","memo":"=:ETH.ETH:0xabc"}`)

	s.Equal(http.StatusInternalServerError, recorder.Code)
	body := s.decodeError(recorder)
	s.Equal(errorcode.SERVER_ERR_CODE, body.Code)
	s.Equal(errorcode.SERVER_ERR, body.Message)
}

func (s *ControllerSuite) Test_GetRegistration() {
	recorder := s.serve(http.MethodGet, "/register/"+s.Stored.ID.String(), "")

	s.Equal(http.StatusOK, recorder.Code)
	body := dto.RegistrationStatus{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Equal(s.Stored.ID.String(), body.InternalAPIID)
	s.Equal(constants.REGISTRATION_CONFIRMED, body.Status)
	s.Equal("ABC", body.TxHash)
	s.Equal("0.00100023", body.MinimumAmountToSend)
}

func (s *ControllerSuite) Test_GetRegistrationNotFound() {
	recorder := s.serve(http.MethodGet, "/register/"+uuid.NewV4().String(), "")

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal(errorcode.REGISTRATION_NOT_FOUND, s.decodeError(recorder).Code)
}

func (s *ControllerSuite) Test_GetRegistrationPersistenceDisabled() {
	s.Repository = nil

	recorder := s.serve(http.MethodGet, "/register/"+s.Stored.ID.String(), "")

	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal(errorcode.PERSISTENCE_DISABLED, s.decodeError(recorder).Code)
}

func (s *ControllerSuite) Test_PreflightValid() {
	s.Preflight.response = dto.PreflightResponse{Valid: true, Asset: "BTC.BTC", Reference: "00023", PaymentURI: "bitcoin:bc1q?amount=0.00100023"}

	recorder := s.serve(http.MethodPost, "/preflight", `{"asset":"BTC.BTC","reference":"00023","amount":"0.00100023"}`)

	s.Equal(http.StatusOK, recorder.Code)
	body := dto.PreflightResponse{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.True(body.Valid)
	s.Equal("bitcoin:bc1q?amount=0.00100023", body.PaymentURI)
}

func (s *ControllerSuite) Test_PreflightRejected() {
	failures := []dto.PreflightFailure{
		{Code: errorcode.REFERENCE_EXHAUSTED, Message: "reference used 3 of 3 times"},
		{Code: errorcode.AMOUNT_MISMATCH, Message: "tail mismatch"},
	}
	evaluation := dto.PreflightResponse{Asset: "BTC.BTC", Reference: "00023", Errors: failures}
	s.Preflight.err = appError.Err{ErrCode: http.StatusUnprocessableEntity, ErrType: failures[0].Code, Err: errors.New(failures[0].Message), ErrData: evaluation}

	recorder := s.serve(http.MethodPost, "/preflight", `{"asset":"BTC.BTC","reference":"00023","amount":"0.5"}`)

	s.Equal(http.StatusUnprocessableEntity, recorder.Code)
	body := s.decodeError(recorder)
	s.Equal(errorcode.REFERENCE_EXHAUSTED, body.Code)
	data := dto.PreflightResponse{}
	s.Require().NoError(json.Unmarshal(body.Data, &data))
	s.Len(data.Errors, 2)
	s.Equal(errorcode.AMOUNT_MISMATCH, data.Errors[1].Code)
}

func (s *ControllerSuite) Test_PreflightValidation() {
	recorder := s.serve(http.MethodPost, "/preflight", `{"asset":"BTC.BTC","reference":"12a"}`)

	s.Equal(http.StatusBadRequest, recorder.Code)
	s.Len(s.decodeError(recorder).ValidationErrors, 2)
}

func (s *ControllerSuite) Test_Assets() {
	recorder := s.serve(http.MethodGet, "/assets?fresh=true", "")

	s.Equal(http.StatusOK, recorder.Code)
	s.True(s.Catalog.fresh)
	body := dto.AssetList{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Len(body.Assets, 1)
}

func (s *ControllerSuite) Test_AssetsUnavailable() {
	s.Catalog.err = appError.New(http.StatusBadGateway, errorcode.CHAIN_UNAVAILABLE, "thornode unreachable")

	recorder := s.serve(http.MethodGet, "/assets", "")

	s.Equal(http.StatusBadGateway, recorder.Code)
	s.Equal(errorcode.CHAIN_UNAVAILABLE, s.decodeError(recorder).Code)
}

func (s *ControllerSuite) Test_GetAsset() {
	recorder := s.serve(http.MethodGet, "/assets/BTC.BTC", "")
	s.Equal(http.StatusOK, recorder.Code)

	recorder = s.serve(http.MethodGet, "/assets/ETH.ETH", "")
	s.Equal(http.StatusNotFound, recorder.Code)
	s.Equal(errorcode.ASSET_NOT_FOUND, s.decodeError(recorder).Code)
}

func (s *ControllerSuite) Test_TrackTransaction() {
	recorder := s.serve(http.MethodPost, "/track-transaction", `{"tx_hash":"0xdeadbeef"}`)

	s.Equal(http.StatusOK, recorder.Code)
	body := dto.TrackTransactionResponse{}
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &body))
	s.Equal("DEADBEEF", body.TxHash)
	s.Equal("https://runescan.io/tx/DEADBEEF", body.URL)

	recorder = s.serve(http.MethodPost, "/track-transaction", `{"tx_hash":"0x"}`)
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *ControllerSuite) Test_Health() {
	recorder := s.serve(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, recorder.Code)

	s.Health.response.Status = "degraded"
	recorder = s.serve(http.MethodGet, "/health", "")
	s.Equal(http.StatusServiceUnavailable, recorder.Code)
}
