package services

import (
	"context"
	"errors"
	"fmt"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility/apiClient"
	"memoless-api/utility/logger"
	"net/http"
	"strings"

	"github.com/getsentry/sentry-go"
)

// NotificationService ... posts registration outcomes to the configured webhooks
type NotificationService struct {
	Config     Config.Data
	HTTPClient *http.Client
}

func NewNotificationService(config Config.Data, httpClient *http.Client) *NotificationService {
	return &NotificationService{
		Config:     config,
		HTTPClient: httpClient,
	}
}

// NotifySuccess ...
func (service *NotificationService) NotifySuccess(ctx context.Context, payload dto.SuccessNotification) AdvisoryResult {
	if payload.Event == "" {
		payload.Event = dto.EVENT_REGISTRATION_SUCCEEDED
	}
	return service.post(ctx, "notify-success", service.Config.SuccessWebhookURLs, payload)
}

// NotifyFailure ... also reported to sentry
func (service *NotificationService) NotifyFailure(ctx context.Context, payload dto.FailureNotification) AdvisoryResult {
	if payload.Event == "" {
		payload.Event = dto.EVENT_REGISTRATION_FAILED
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("event", payload.Event)
		scope.SetTag("asset", payload.Asset)
		scope.SetExtra("memo", payload.Memo)
		scope.SetExtra("tx_hash", payload.TxHash)
		scope.SetExtra("error_details", payload.ErrorDetails)
		sentry.CaptureMessage(payload.Error)
	})
	return service.post(ctx, "notify-failure", service.Config.FailureWebhookURLs, payload)
}

func (service *NotificationService) post(ctx context.Context, operation string, webhooks []string, payload interface{}) AdvisoryResult {
	if len(webhooks) == 0 {
		return skipped(operation)
	}
	var failures []string
	for _, webhook := range webhooks {
		APIClient := apiClient.New(service.HTTPClient, service.Config, webhook)
		APIRequest, err := APIClient.NewRequest(http.MethodPost, "", payload)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %s", webhook, err))
			continue
		}
		if _, err = APIClient.Do(ctx, APIRequest, nil); err != nil {
			logger.Error("Webhook delivery to %s failed : %s", webhook, err)
			failures = append(failures, fmt.Sprintf("%s: %s", webhook, err))
		}
	}
	if len(failures) > 0 {
		return advisory(operation, errors.New(strings.Join(failures, "; ")))
	}
	return advisory(operation, nil)
}
