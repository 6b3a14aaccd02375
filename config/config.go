package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	liveGatewaySiteURL    = "https://www.payfast.co.za"
	sandboxGatewaySiteURL = "https://sandbox.payfast.co.za"
	defaultSiteURL        = "https://slyzah.co.za"
)

type Config struct {
	App               AppConfig
	HTTP              ServerConfig
	GRPC              ServerConfig
	MySQL             MySQLConfig
	Log               LogConfig
	InternalEndpoints InternalEndpointsConfig
	Gateway           GatewayConfig
	Billing           BillingConfig
	Jobs              JobsConfig
}

type AppConfig struct {
	ServiceName string
	APIKey      string
	Env         string
	BrandName   string
}

type ServerConfig struct {
	Host string
	Port string
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type InternalEndpointsConfig struct {
	AuthGRPCAddr string
}

// GatewayConfig carries the merchant credentials and endpoints of the payment gateway.
// Credentials may be empty at load; payment initiation rejects them later.
type GatewayConfig struct {
	MerchantID     string
	MerchantKey    string
	Passphrase     string
	ProcessURL     string
	APIURL         string
	SiteURL        string
	AppSiteURL     string
	ReturnURL      string
	CancelURL      string
	NotifyURL      string
	BrandName      string
	Sandbox        bool
	RequestTimeout time.Duration
}

type BillingConfig struct {
	TimeZone string
}

type JobsConfig struct {
	PendingReportInterval time.Duration
	PendingStaleAge       time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}

	appEnv := getEnv("APP_ENV", "development")
	brandName := getEnv("APP_BRAND_NAME", "Slyzah")
	sandbox := getBoolEnv("GATEWAY_SANDBOX", appEnv != "production")

	gatewaySite := liveGatewaySiteURL
	if sandbox {
		gatewaySite = sandboxGatewaySiteURL
	}
	gatewaySite = strings.TrimRight(getEnv("GATEWAY_SITE_URL", gatewaySite), "/")
	appSite := NormalizeSiteURL(getEnv("SITE_URL", defaultSiteURL))

	return &Config{
		App: AppConfig{
			ServiceName: getEnv("APP_SERVICE_NAME", "vendor-billing-service"),
			APIKey:      getEnv("APP_API_KEY", ""),
			Env:         appEnv,
			BrandName:   brandName,
		},
		HTTP: ServerConfig{
			Host: getEnv("HTTP_HOST", "0.0.0.0"),
			Port: getEnv("HTTP_PORT", "8080"),
		},
		GRPC: ServerConfig{
			Host: getEnv("GRPC_HOST", "0.0.0.0"),
			Port: getEnv("GRPC_PORT", "9090"),
		},
		MySQL: MySQLConfig{
			DSN:             mysqlDSN,
			MaxOpenConns:    getIntEnv("MYSQL_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntEnv("MYSQL_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("MYSQL_CONN_MAX_LIFETIME_MINUTES", 30*time.Minute),
		},
		Log: LogConfig{Level: getEnv("LOG_LEVEL", "info")},
		InternalEndpoints: InternalEndpointsConfig{
			AuthGRPCAddr: getEnv("AUTH_SERVICE_GRPC_ADDR", "localhost:9090"),
		},
		Gateway: GatewayConfig{
			MerchantID:     strings.TrimSpace(os.Getenv("GATEWAY_MERCHANT_ID")),
			MerchantKey:    strings.TrimSpace(os.Getenv("GATEWAY_MERCHANT_KEY")),
			Passphrase:     os.Getenv("GATEWAY_PASSPHRASE"),
			ProcessURL:     getEnv("GATEWAY_PROCESS_URL", gatewaySite+"/eng/process"),
			APIURL:         strings.TrimRight(getEnv("GATEWAY_API_URL", "https://api.payfast.co.za"), "/"),
			SiteURL:        gatewaySite,
			AppSiteURL:     appSite,
			ReturnURL:      getEnv("GATEWAY_RETURN_URL", appSite+"/payment-return?status=success"),
			CancelURL:      getEnv("GATEWAY_CANCEL_URL", appSite+"/payment-cancel?status=cancel"),
			NotifyURL:      getEnv("GATEWAY_NOTIFY_URL", appSite+"/api/payfast/itn"),
			BrandName:      brandName,
			Sandbox:        sandbox,
			RequestTimeout: getSecondsEnv("GATEWAY_REQUEST_TIMEOUT_SECONDS", 15*time.Second),
		},
		Billing: BillingConfig{
			TimeZone: getEnv("BILLING_TIMEZONE", "Africa/Johannesburg"),
		},
		Jobs: JobsConfig{
			PendingReportInterval: getDurationEnv("PENDING_REPORT_INTERVAL_MINUTES", time.Hour),
			PendingStaleAge:       getDurationEnv("PENDING_STALE_AGE_MINUTES", 1440*time.Minute),
		},
	}, nil
}

// Location resolves the billing time zone; calendar days for billing terms are taken in it.
func (c BillingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

// NormalizeSiteURL drops a trailing slash and defaults the scheme to https.
func NormalizeSiteURL(raw string) string {
	url := strings.TrimRight(strings.TrimSpace(raw), "/")
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}
	return url
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}

func getSecondsEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
