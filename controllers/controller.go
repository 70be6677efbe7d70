package controllers

import (
	"context"
	"encoding/json"
	Config "memoless-api/config"
	"memoless-api/database"
	"memoless-api/dto"
	"memoless-api/utility/appError"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"memoless-api/utility/response"
	"memoless-api/utility/validator"
	"net/http"

	validation "gopkg.in/go-playground/validator.v9"
)

// Registrar ... registers memos on chain
type Registrar interface {
	Register(ctx context.Context, request dto.RegisterRequest) (dto.RegisterResponse, error)
}

// PreflightEvaluator ... checks an amount against a registered reference
type PreflightEvaluator interface {
	Preflight(ctx context.Context, request dto.PreflightRequest) (dto.PreflightResponse, error)
}

// AssetCatalog ... read-through asset registry
type AssetCatalog interface {
	ListAssets(ctx context.Context, fresh bool) (dto.AssetList, error)
	GetAsset(ctx context.Context, asset string, fresh bool) (dto.Asset, error)
}

// HealthChecker ...
type HealthChecker interface {
	Check(ctx context.Context) dto.HealthResponse
}

// BaseController : Base controller struct
type BaseController struct {
	Config    Config.Data
	Validator *validation.Validate
}

// RegistrationController : registration and registration lookup
type RegistrationController struct {
	BaseController
	Service    Registrar
	Repository database.IRegistrationRepository
}

// PreflightController : preflight checks
type PreflightController struct {
	BaseController
	Service PreflightEvaluator
}

// AssetController : asset registry and explorer links
type AssetController struct {
	BaseController
	Service AssetCatalog
}

// HealthController : readiness report
type HealthController struct {
	BaseController
	Service HealthChecker
}

// NewController ... Create a new base controller instance
func NewController(configData Config.Data, validate *validation.Validate) *BaseController {
	controller := &BaseController{}
	controller.Config = configData
	controller.Validator = validate

	return controller
}

// NewRegistrationController ... repository may be nil when persistence is disabled
func NewRegistrationController(configData Config.Data, validate *validation.Validate, service Registrar, repository database.IRegistrationRepository) *RegistrationController {
	return &RegistrationController{BaseController: *NewController(configData, validate), Service: service, Repository: repository}
}

// NewPreflightController ...
func NewPreflightController(configData Config.Data, validate *validation.Validate, service PreflightEvaluator) *PreflightController {
	return &PreflightController{BaseController: *NewController(configData, validate), Service: service}
}

// NewAssetController ...
func NewAssetController(configData Config.Data, validate *validation.Validate, service AssetCatalog) *AssetController {
	return &AssetController{BaseController: *NewController(configData, validate), Service: service}
}

// NewHealthController ...
func NewHealthController(configData Config.Data, validate *validation.Validate, service HealthChecker) *HealthController {
	return &HealthController{BaseController: *NewController(configData, validate), Service: service}
}

// Ping : Ping function
func (controller *BaseController) Ping(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()

	logger.Info("Ping request successful! Server is up and listening")

	writeJSON(responseWriter, http.StatusOK, apiResponse.PlainSuccess("SUCCESS", "Ping request successful! Server is up and listening"))
}

// ValidateRequest ... runs struct validation, returning the failures keyed by field
func ValidateRequest(validate *validation.Validate, requestData interface{}) []map[string]string {
	validationErr := validator.Validate(validate, requestData)
	if len(validationErr) > 0 {
		logger.Error("Request validation failed : %+v", validationErr)
	}
	return validationErr
}

// ReturnError ... logs the failure and writes the error body with status
func ReturnError(responseWriter http.ResponseWriter, operation string, status int, err interface{}, responseData interface{}) {
	logger.Error("Outgoing response to %s request %+v", operation, err)
	writeJSON(responseWriter, status, responseData)
}

// ReturnAppError ... writes err using the status and code it carries
func ReturnAppError(responseWriter http.ResponseWriter, operation string, err error) {
	apiResponse := response.New()
	appErr := appError.As(err, errorcode.SERVER_ERR_CODE)
	status := appErr.ErrCode
	if status == 0 {
		status = http.StatusInternalServerError
	}
	message := appErr.Error()
	if status == http.StatusInternalServerError {
		message = errorcode.SERVER_ERR
	}
	ReturnError(responseWriter, operation, status, err, apiResponse.Error(appErr.ErrType, message, appErr.ErrData))
}

func decodeRequest(responseWriter http.ResponseWriter, requestReader *http.Request, operation string, requestData interface{}) bool {
	if err := json.NewDecoder(requestReader.Body).Decode(requestData); err != nil {
		ReturnError(responseWriter, operation, http.StatusBadRequest, err, response.New().PlainError(errorcode.INPUT_ERR_CODE, errorcode.INPUT_ERR))
		return false
	}
	return true
}

func writeJSON(responseWriter http.ResponseWriter, status int, body interface{}) {
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(body)
}
