package controllers

import (
	"memoless-api/dto"
	"memoless-api/services"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/logger"
	"memoless-api/utility/response"
	"net/http"

	"github.com/gorilla/mux"
)

func freshRequested(requestReader *http.Request) bool {
	return requestReader.URL.Query().Get("fresh") == "true"
}

// FetchAssets ... pools with decimals and USD valuation; ?fresh=true bypasses the cache
func (controller AssetController) FetchAssets(responseWriter http.ResponseWriter, requestReader *http.Request) {

	responseData, err := controller.Service.ListAssets(requestReader.Context(), freshRequested(requestReader))
	if err != nil {
		ReturnAppError(responseWriter, "FetchAssets", err)
		return
	}

	logger.Info("Outgoing response to FetchAssets request with %d assets", len(responseData.Assets))
	writeJSON(responseWriter, http.StatusOK, responseData)
}

// GetAsset ...
func (controller AssetController) GetAsset(responseWriter http.ResponseWriter, requestReader *http.Request) {

	asset := mux.Vars(requestReader)["asset"]
	logger.Info("Incoming request details for GetAsset : asset : %s", asset)

	responseData, err := controller.Service.GetAsset(requestReader.Context(), asset, freshRequested(requestReader))
	if err != nil {
		ReturnAppError(responseWriter, "GetAsset", err)
		return
	}

	logger.Info("Outgoing response to GetAsset request %+v", responseData)
	writeJSON(responseWriter, http.StatusOK, responseData)
}

// TrackTransaction ... block explorer link for a transaction hash
func (controller AssetController) TrackTransaction(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()
	requestData := dto.TrackTransactionRequest{}

	if !decodeRequest(responseWriter, requestReader, "TrackTransaction", &requestData) {
		return
	}
	logger.Info("Incoming request details for TrackTransaction : %+v", requestData)

	if validationErr := ValidateRequest(controller.Validator, requestData); len(validationErr) > 0 {
		ReturnError(responseWriter, "TrackTransaction", http.StatusBadRequest, validationErr, apiResponse.ValidateError(errorcode.INPUT_ERR_CODE, errorcode.INPUT_ERR, validationErr))
		return
	}

	responseData, err := services.TrackTransaction(controller.Config, requestData)
	if err != nil {
		ReturnAppError(responseWriter, "TrackTransaction", err)
		return
	}

	logger.Info("Outgoing response to TrackTransaction request %+v", responseData)
	writeJSON(responseWriter, http.StatusOK, responseData)
}
