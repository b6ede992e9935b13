package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KeyAppName           = "APP_NAME"
	KeyAppVersion        = "APP_VERSION"
	KeyAppPort           = "APP_PORT"
	KeyTaskAPIURL        = "TASK_API_URL"
	KeyTaskAPITimeout    = "TASK_API_TIMEOUT"
	KeyTaskAPIRetryCount = "TASK_API_RETRY_COUNT"
	KeyTaskAPIRetryWait  = "TASK_API_RETRY_WAIT"
	KeySessionCookieName = "SESSION_COOKIE_NAME"
	KeySessionToken      = "SESSION_TOKEN"
	KeyPartitionPolicy   = "PARTITION_POLICY"
	KeyTranslationFolder = "TRANSLATION_FOLDER"
	KeyTrustedProxies    = "TRUSTED_PROXIES"
)

type Config struct {
	AppName           string
	AppVersion        string
	AppPort           string
	TaskAPIURL        string
	TaskAPITimeout    time.Duration
	TaskAPIRetryCount int
	TaskAPIRetryWait  time.Duration
	SessionCookieName string
	SessionToken      string
	PartitionPolicy   string
	TranslationFolder string
	TrustedProxies    []string
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() *Config {
	_ = godotenv.Load(".env")
	return FromViper(NewViper())
}

// NewViper returns a viper instance with every key defaulted and bound to the
// environment. Callers may bind command-line flags on top of it.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyAppName, "taskboard")
	v.SetDefault(KeyAppVersion, "dev")
	v.SetDefault(KeyAppPort, "8080")
	v.SetDefault(KeyTaskAPIURL, "http://localhost:5000")
	v.SetDefault(KeyTaskAPITimeout, 10*time.Second)
	v.SetDefault(KeyTaskAPIRetryCount, 2)
	v.SetDefault(KeyTaskAPIRetryWait, 200*time.Millisecond)
	v.SetDefault(KeySessionCookieName, "token")
	v.SetDefault(KeySessionToken, "")
	v.SetDefault(KeyPartitionPolicy, "prune")
	v.SetDefault(KeyTranslationFolder, "pkg/translator/translation")
	v.SetDefault(KeyTrustedProxies, "")
	v.AutomaticEnv()
	return v
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:           v.GetString(KeyAppName),
		AppVersion:        v.GetString(KeyAppVersion),
		AppPort:           v.GetString(KeyAppPort),
		TaskAPIURL:        v.GetString(KeyTaskAPIURL),
		TaskAPITimeout:    v.GetDuration(KeyTaskAPITimeout),
		TaskAPIRetryCount: v.GetInt(KeyTaskAPIRetryCount),
		TaskAPIRetryWait:  v.GetDuration(KeyTaskAPIRetryWait),
		SessionCookieName: v.GetString(KeySessionCookieName),
		SessionToken:      v.GetString(KeySessionToken),
		PartitionPolicy:   v.GetString(KeyPartitionPolicy),
		TranslationFolder: v.GetString(KeyTranslationFolder),
		TrustedProxies:    parseTrustedProxies(v.GetString(KeyTrustedProxies)),
	}
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
