package tasks

import (
	"context"
	Config "memoless-api/config"
	"memoless-api/dto"
	"memoless-api/utility/logger"
	"time"

	"github.com/robfig/cron/v3"
)

// AssetRefresher ... reloads the cached asset list
type AssetRefresher interface {
	Refresh(ctx context.Context) (dto.AssetList, error)
}

// RefreshAssets ... one refresh bounded by timeout; failures keep the previous cache and are logged
func RefreshAssets(refresher AssetRefresher, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	logger.Info("Asset refresh begins")
	list, err := refresher.Refresh(ctx)
	if err != nil {
		logger.Error("Error response from asset refresh job : %s", err)
		return
	}
	logger.Info("Asset refresh completed with %d assets", len(list.Assets))
}

// ExecuteAssetRefreshCronJob ... warms the asset cache on config.AssetRefreshSchedule. The caller stops the returned scheduler.
func ExecuteAssetRefreshCronJob(config Config.Data, refresher AssetRefresher) (*cron.Cron, error) {
	timeout := time.Duration(config.RequestTimeout) * time.Second
	c := cron.New()
	if _, err := c.AddFunc(config.AssetRefreshSchedule, func() { RefreshAssets(refresher, timeout) }); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
