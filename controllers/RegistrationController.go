package controllers

import (
	"memoless-api/dto"
	"memoless-api/model"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"memoless-api/utility/response"
	"net/http"

	"github.com/gorilla/mux"
)

// Register ... registers a memo on chain and returns the reference bound to it
func (controller RegistrationController) Register(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()
	requestData := dto.RegisterRequest{}

	if !decodeRequest(responseWriter, requestReader, "Register", &requestData) {
		return
	}
	logger.Info("Incoming request details for Register : %+v", requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "Register", http.StatusBadRequest, validationErr, apiResponse.ValidateError(errorcode.INPUT_ERR_CODE, errorcode.INPUT_ERR, validationErr))
		return
	}

	responseData, err := controller.Service.Register(requestReader.Context(), requestData)
	if err != nil {
		ReturnAppError(responseWriter, "Register", err)
		return
	}

	logger.Info("Outgoing response to Register request %+v", responseData)
	writeJSON(responseWriter, http.StatusCreated, responseData)
}

// GetRegistration ... stored registration by internal id
func (controller RegistrationController) GetRegistration(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()
	registrationID := mux.Vars(requestReader)["id"]
	logger.Info("Incoming request details for GetRegistration : id : %s", registrationID)

	if controller.Repository == nil {
		ReturnError(responseWriter, "GetRegistration", http.StatusNotFound, errorcode.PERSISTENCE_DISABLED_ERR,
			apiResponse.PlainError(errorcode.PERSISTENCE_DISABLED, errorcode.PERSISTENCE_DISABLED_ERR))
		return
	}

	registration := model.Registration{}
	if err := controller.Repository.GetRegistration(registrationID, &registration); err != nil {
		ReturnAppError(responseWriter, "GetRegistration", err)
		return
	}

	responseData := registrationStatus(registration)
	logger.Info("Outgoing response to GetRegistration request %+v", responseData)
	writeJSON(responseWriter, http.StatusOK, responseData)
}

func registrationStatus(registration model.Registration) dto.RegistrationStatus {
	return dto.RegistrationStatus{
		InternalAPIID:       registration.ID.String(),
		Asset:               registration.Asset,
		Memo:                registration.Memo,
		ModifiedMemo:        registration.ModifiedMemo,
		Status:              registration.Status,
		TxHash:              registration.Hash(),
		Reference:           registration.Reference,
		ReferenceLength:     registration.ReferenceLength,
		Height:              registration.Height,
		RegisteredBy:        registration.RegisteredBy,
		Decimals:            registration.Decimals,
		MinimumAmountToSend: registration.MinimumAmount,
		FailureReason:       registration.FailureReason,
		CreatedAt:           registration.CreatedAt,
		UpdatedAt:           registration.UpdatedAt,
	}
}
