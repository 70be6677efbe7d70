package controllers

import (
	"memoless-api/dto"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"memoless-api/utility/response"
	"net/http"
)

// Preflight ... checks that an amount will be matched to its reference before the user sends funds.
// A rejected amount answers 422 with the evaluation, including every failed check, in data.
func (controller PreflightController) Preflight(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()
	requestData := dto.PreflightRequest{}

	if !decodeRequest(responseWriter, requestReader, "Preflight", &requestData) {
		return
	}
	logger.Info("Incoming request details for Preflight : %+v", requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "Preflight", http.StatusBadRequest, validationErr, apiResponse.ValidateError(errorcode.INPUT_ERR_CODE, errorcode.INPUT_ERR, validationErr))
		return
	}

	responseData, err := controller.Service.Preflight(requestReader.Context(), requestData)
	if err != nil {
		ReturnAppError(responseWriter, "Preflight", err)
		return
	}

	logger.Info("Outgoing response to Preflight request %+v", responseData)
	writeJSON(responseWriter, http.StatusOK, responseData)
}
