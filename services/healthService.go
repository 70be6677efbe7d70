package services

import (
	"context"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility"
	"memoless-api/utility/appError"
	"memoless-api/utility/constants"
	"memoless-api/utility/errorcode"
	"net/http"
	"strings"
)

// HealthService ... readiness of the wallet, thornode and database
type HealthService struct {
	Config   Config.Data
	Chain    ChainClient
	Wallet   *HotWalletService
	Database Pinger
}

func NewHealthService(config Config.Data, chain ChainClient, wallet *HotWalletService, database Pinger) *HealthService {
	return &HealthService{
		Config:   config,
		Chain:    chain,
		Wallet:   wallet,
		Database: database,
	}
}

// Check ... status is "ok" only when every dependency answers
func (service *HealthService) Check(ctx context.Context) dto.HealthResponse {
	health := dto.HealthResponse{Status: "ok", Persistence: constants.PERSISTENCE_DISABLED}

	health.Wallet.Configured = service.Wallet.Configured()
	health.Wallet.Address = service.Config.HotWalletAddress
	if health.Wallet.Configured {
		if balance, err := service.Wallet.Balance(ctx); err == nil {
			health.Wallet.Balance = balance.String()
			health.Wallet.Ready = true
		}
	}

	if height, err := service.Chain.GetLastBlock(ctx); err == nil {
		health.Chain.Connected = true
		health.Chain.Height = height
	}

	if service.Database != nil {
		health.Persistence = constants.PERSISTENCE_ENABLED
		if err := service.Database.Ping(ctx); err != nil {
			health.Persistence = constants.PERSISTENCE_UNREACHABLE
		}
	}

	if !health.Wallet.Ready || !health.Chain.Connected || health.Persistence == constants.PERSISTENCE_UNREACHABLE {
		health.Status = "degraded"
	}
	return health
}

// TrackTransaction ... explorer link for a transaction hash; no chain call is made
func TrackTransaction(config Config.Data, request dto.TrackTransactionRequest) (dto.TrackTransactionResponse, error) {
	hash := utility.NormalizeTxHash(request.TxHash)
	if hash == "" {
		return dto.TrackTransactionResponse{}, appError.New(http.StatusBadRequest, errorcode.INPUT_ERR_CODE, "tx_hash is required")
	}
	explorer := config.ExplorerURL
	if explorer != "" && !strings.HasSuffix(explorer, "/") {
		explorer += "/"
	}
	return dto.TrackTransactionResponse{TxHash: hash, URL: explorer + hash}, nil
}
