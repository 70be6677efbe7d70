package controllers

import (
	"memoless-api/utility/logger"
	"net/http"
)

// Health ... 200 when every dependency answers, 503 when degraded
func (controller HealthController) Health(responseWriter http.ResponseWriter, requestReader *http.Request) {

	responseData := controller.Service.Check(requestReader.Context())

	status := http.StatusOK
	if responseData.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	logger.Info("Outgoing response to Health request %+v", responseData)
	writeJSON(responseWriter, status, responseData)
}
