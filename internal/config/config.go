package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BotToken           string
	SpreadsheetID      string
	ServiceAccountFile string
	ServiceAccountRaw  string // содержимое ключа из окружения (деплой без файла)
	ChannelUsername    string // канал, членство в котором обязательно
	OwnerID            int64
	HTTPAddr           string
	LogLevel           string
	Env                string // dev|prod
	SentryDSN          string
	QREnabled          bool
	Location           *time.Location
}

func Load() (*Config, error) {
	tz := getenv("TZ", "Asia/Tashkent")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.Local
	}

	ownerID, err := strconv.ParseInt(mustEnv("OWNER_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("OWNER_ID: %w", err)
	}

	cfg := &Config{
		BotToken:           mustEnv("BOT_TOKEN"),
		SpreadsheetID:      mustEnv("SPREADSHEET_ID"),
		ServiceAccountFile: getenv("SERVICE_ACCOUNT_FILE", "service-account.json"),
		ServiceAccountRaw:  os.Getenv("SERVICE_ACCOUNT_JSON"),
		ChannelUsername:    getenv("CHANNEL_USERNAME", "@PR_klubi"),
		OwnerID:            ownerID,
		HTTPAddr:           getenv("HTTP_ADDR", ":8080"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		Env:                getenv("ENV", "dev"),
		SentryDSN:          os.Getenv("SENTRY_DSN"),
		QREnabled:          getenv("QR_ENABLED", "true") == "true",
		Location:           loc,
	}
	return cfg, nil
}

// ServiceAccountJSON возвращает ключ сервисного аккаунта: из окружения,
// если задан, иначе из файла.
func (c *Config) ServiceAccountJSON() ([]byte, error) {
	if c.ServiceAccountRaw != "" {
		return []byte(c.ServiceAccountRaw), nil
	}
	b, err := os.ReadFile(c.ServiceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("service account key: %w", err)
	}
	return b, nil
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("required env " + k + " is empty")
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
