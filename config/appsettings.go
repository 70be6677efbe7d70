package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Data : config data
type Data struct {
	AppPort        string `mapstructure:"appPort"  yaml:"appPort,omitempty"`
	ServiceName    string `mapstructure:"serviceName"  yaml:"serviceName,omitempty"`
	BasePath       string `mapstructure:"basePath"  yaml:"basePath,omitempty"`
	RequestTimeout int64  `mapstructure:"requestTimeout"  yaml:"requestTimeout,omitempty"`
	Network        string `mapstructure:"network"  yaml:"network,omitempty"`
	ExplorerURL    string `mapstructure:"explorerURL"  yaml:"explorerURL,omitempty"`

	ThornodeURL      string `mapstructure:"thornodeURL"  yaml:"thornodeURL,omitempty"`
	SignerServiceURL string `mapstructure:"signerServiceURL"  yaml:"signerServiceURL,omitempty"`
	ServiceID        string `mapstructure:"serviceId"  yaml:"serviceId,omitempty"`
	ServiceKey       string `mapstructure:"serviceKey"  yaml:"serviceKey,omitempty"`
	HotWalletAddress string `mapstructure:"hotWalletAddress"  yaml:"hotWalletAddress,omitempty"`

	AffiliateEnabled bool   `mapstructure:"affiliateEnabled"  yaml:"affiliateEnabled,omitempty"`
	AffiliateAddress string `mapstructure:"affiliateAddress"  yaml:"affiliateAddress,omitempty"`
	AffiliateFeeBps  string `mapstructure:"affiliateFeeBps"  yaml:"affiliateFeeBps,omitempty"`

	MinimumOperatingBalance string `mapstructure:"minimumOperatingBalance"  yaml:"minimumOperatingBalance,omitempty"`
	LowBalanceThreshold     string `mapstructure:"lowBalanceThreshold"  yaml:"lowBalanceThreshold,omitempty"`
	LowBalanceAlertWindow   int64  `mapstructure:"lowBalanceAlertWindow"  yaml:"lowBalanceAlertWindow,omitempty"`

	ConfirmMaxAttempts int     `mapstructure:"confirmMaxAttempts"  yaml:"confirmMaxAttempts,omitempty"`
	ConfirmBaseDelay   int64   `mapstructure:"confirmBaseDelay"  yaml:"confirmBaseDelay,omitempty"`
	ConfirmMultiplier  float64 `mapstructure:"confirmMultiplier"  yaml:"confirmMultiplier,omitempty"`
	SecondsPerBlock    int64   `mapstructure:"secondsPerBlock"  yaml:"secondsPerBlock,omitempty"`

	PersistenceEnabled bool   `mapstructure:"persistenceEnabled"  yaml:"persistenceEnabled,omitempty"`
	DBUser             string `mapstructure:"dbUser"  yaml:"dbUser,omitempty"`
	DBPassword         string `mapstructure:"dbPassword"  yaml:"dbPassword,omitempty"`
	DBHost             string `mapstructure:"dbHost"  yaml:"dbHost,omitempty"`
	DBName             string `mapstructure:"dbName"  yaml:"dbName,omitempty"`
	MaxIdleConns       int    `mapstructure:"maxIdleConns"  yaml:"maxIdleConns,omitempty"`
	MaxOpenConns       int    `mapstructure:"maxOpenConns"  yaml:"maxOpenConns,omitempty"`
	ConnMaxLifetime    int    `mapstructure:"connMaxLifetime"  yaml:"connMaxLifetime,omitempty"`
	DBMigrationPath    string `mapstructure:"dbMigrationPath"  yaml:"dbMigrationPath,omitempty"`
	RedisURL           string `mapstructure:"redisURL"  yaml:"redisURL,omitempty"`

	SuccessWebhookURLs []string `mapstructure:"successWebhookURLs"  yaml:"successWebhookURLs,omitempty"`
	FailureWebhookURLs []string `mapstructure:"failureWebhookURLs"  yaml:"failureWebhookURLs,omitempty"`
	SentryDSN          string   `mapstructure:"sentryDSN"  yaml:"sentryDSN,omitempty"`

	AssetCacheDuration   time.Duration `mapstructure:"assetCacheDuration"  yaml:"assetCacheDuration,omitempty"`
	PurgeCacheInterval   time.Duration `mapstructure:"purgeCacheInterval"  yaml:"purgeCacheInterval,omitempty"`
	AssetRefreshSchedule string        `mapstructure:"assetRefreshSchedule"  yaml:"assetRefreshSchedule,omitempty"`
	RegisterRateLimit    float64       `mapstructure:"registerRateLimit"  yaml:"registerRateLimit,omitempty"`
	RegisterRateBurst    int           `mapstructure:"registerRateBurst"  yaml:"registerRateBurst,omitempty"`
}

// AffiliateConfig ... affiliate settings handed to the registration service
type AffiliateConfig struct {
	Enabled bool
	Address string
	FeeBps  string
}

// RetryPolicy ... backoff settings for reference confirmation
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
}

func setDefaults() {
	viper.SetDefault("appPort", "8080")
	viper.SetDefault("serviceName", "memoless-api")
	viper.SetDefault("basePath", "/api/v1")
	viper.SetDefault("requestTimeout", 60)
	viper.SetDefault("network", "mainnet")
	viper.SetDefault("explorerURL", "https://runescan.io/tx/")
	viper.SetDefault("affiliateFeeBps", "0")
	viper.SetDefault("minimumOperatingBalance", "1")
	viper.SetDefault("lowBalanceThreshold", "10")
	viper.SetDefault("lowBalanceAlertWindow", 3600)
	viper.SetDefault("confirmMaxAttempts", 4)
	viper.SetDefault("confirmBaseDelay", 3)
	viper.SetDefault("confirmMultiplier", 2)
	viper.SetDefault("secondsPerBlock", 6)
	viper.SetDefault("maxIdleConns", 5)
	viper.SetDefault("maxOpenConns", 10)
	viper.SetDefault("connMaxLifetime", 300)
	viper.SetDefault("dbMigrationPath", "./migration")
	viper.SetDefault("assetCacheDuration", 60*time.Second)
	viper.SetDefault("purgeCacheInterval", 120*time.Second)
	viper.SetDefault("assetRefreshSchedule", "@every 1m")
	viper.SetDefault("registerRateLimit", 2)
	viper.SetDefault("registerRateBurst", 5)
}

// Init : initialize data
func (c *Data) Init(configDir string) {

	dir, dirErr := os.Getwd()
	if dirErr != nil {
		log.Printf("Cannot set default input/output directory to the current working directory >> %s", dirErr)
	}

	setDefaults()
	viper.SetEnvPrefix("mla") // Prefix all env variable with MLA (MemoLess API)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("appPort")
	viper.BindEnv("serviceId")
	viper.BindEnv("serviceKey")
	viper.BindEnv("dbPassword")
	viper.BindEnv("sentryDSN")

	viper.SetConfigName("config")
	viper.AddConfigPath("../")
	viper.AddConfigPath(dir)
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Configuration file not found, using defaults and environment >> %s", err)
		} else {
			panic(fmt.Errorf("\n fatal error: could not read from config file >>%s ", err))
		}
	} else {
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			log.Printf("Config file changed: %s, restart the service to apply it", e.Name)
		})
	}

	if err := viper.Unmarshal(c); err != nil {
		panic(fmt.Errorf("\n fatal error: could not decode config >>%s ", err))
	}
	log.Println("App configuration loaded successfully!")
}

// Affiliate ... returns the affiliate settings, disabled when no address is set
func (c Data) Affiliate() AffiliateConfig {
	return AffiliateConfig{
		Enabled: c.AffiliateEnabled && strings.TrimSpace(c.AffiliateAddress) != "",
		Address: strings.TrimSpace(c.AffiliateAddress),
		FeeBps:  c.AffiliateFeeBps,
	}
}

// ConfirmRetryPolicy ... returns the backoff used while waiting for a reference
func (c Data) ConfirmRetryPolicy() RetryPolicy {
	policy := RetryPolicy{
		MaxAttempts: c.ConfirmMaxAttempts,
		BaseDelay:   time.Duration(c.ConfirmBaseDelay) * time.Second,
		Multiplier:  c.ConfirmMultiplier,
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	if policy.Multiplier < 1 {
		policy.Multiplier = 1
	}
	return policy
}

// BlockDuration ... time between two THORChain blocks
func (c Data) BlockDuration() time.Duration {
	if c.SecondsPerBlock <= 0 {
		return 6 * time.Second
	}
	return time.Duration(c.SecondsPerBlock) * time.Second
}

// Delay ... wait before the given retry (1 based): BaseDelay * Multiplier^(retry-1)
func (p RetryPolicy) Delay(retry int) time.Duration {
	if retry < 1 {
		return 0
	}
	return time.Duration(float64(p.BaseDelay) * math.Pow(p.Multiplier, float64(retry-1)))
}
