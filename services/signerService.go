package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility"
	"memoless-api/utility/apiClient"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/errorcode"
	"memoless-api/utility/jwt"
	"memoless-api/utility/logger"
	"net/http"
	"strings"
	"time"
)

// SignerService ... transaction signer holding the hot wallet key
type SignerService struct {
	Config     Config.Data
	HTTPClient *http.Client
	Now        func() time.Time
}

func NewSignerService(config Config.Data, httpClient *http.Client) *SignerService {
	return &SignerService{
		Config:     config,
		HTTPClient: httpClient,
		Now:        time.Now,
	}
}

// Broadcast ... asks the signer to broadcast a memo reference registration
func (service *SignerService) Broadcast(ctx context.Context, requestData dto.BroadcastRequest) (string, error) {
	authToken, err := jwt.ServiceToken(service.Config, service.Now())
	if err != nil {
		return "", err
	}
	metaData := utility.GetRequestMetaData("registerMemoReference", service.Config)

	APIClient := apiClient.New(service.HTTPClient, service.Config, metaData.Endpoint)
	APIRequest, err := APIClient.NewRequest(metaData.Type, metaData.Action, requestData)
	if err != nil {
		return "", err
	}
	APIClient.AddHeader(APIRequest, map[string]string{
		jwt.X_AUTH_TOKEN: authToken,
	})

	responseData := dto.BroadcastResponse{}
	if _, err = APIClient.Do(ctx, APIRequest, &responseData); err != nil {
		logger.Error("An error occured while calling the transaction signer : %s", err)
		return "", signerError(err)
	}
	if responseData.Code != 0 {
		return "", signerError(errors.New(responseData.RawLog))
	}
	if responseData.TxHash == "" {
		return "", appError.New(http.StatusBadGateway, errorcode.BROADCAST_FAILED, "signer returned no transaction hash")
	}
	return responseData.TxHash, nil
}

func signerError(err error) error {
	message := err.Error()
	serviceErr := dto.ExternalServicesRequestErr{}
	var appErr appError.Err
	if errors.As(err, &appErr) {
		if body, ok := appErr.ErrData.(string); ok && json.Unmarshal([]byte(body), &serviceErr) == nil && serviceErr.Message != "" {
			message = serviceErr.Message
		}
	}
	if serviceErr.Code == errorcode.SEQUENCE_MISMATCH || strings.Contains(strings.ToLower(message), constants.SEQUENCE_MISMATCH_PATTERN) {
		return fmt.Errorf("%w: %s", ErrSequenceMismatch, message)
	}
	return appError.Wrap(http.StatusBadGateway, errorcode.BROADCAST_FAILED, errors.New(message))
}
