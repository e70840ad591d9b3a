package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/bookline/internal/flagx"
	"github.com/dmitrijs2005/bookline/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "10s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files; after unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	EncryptionSecret      string         `json:"encryption_secret"`
	AdminUser             string         `json:"admin_user"`
	AdminPasswordHash     string         `json:"admin_password_hash"`
	JWTSecret             string         `json:"jwt_secret"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	WhatsAppToken         string         `json:"whatsapp_access_token"`
	WhatsAppPhoneID       string         `json:"whatsapp_phone_number_id"`
	AdminNotifyRecipient  string         `json:"admin_notify_recipient"`
	TelegramBotToken      string         `json:"telegram_bot_token"`
	RedisAddr             string         `json:"redis_addr"`
	RateLimitMax          int            `json:"rate_limit_max"`
	RateLimitWindow       timex.Duration `json:"rate_limit_window"`
	NotifyTimeout         timex.Duration `json:"notify_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; if
// neither is set, no JSON file is loaded. An unreadable or invalid file
// panics: a deployment pointing at a broken config file should not start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.EncryptionSecret != "" {
		config.EncryptionSecret = c.EncryptionSecret
	}
	if c.AdminUser != "" {
		config.AdminUser = c.AdminUser
	}
	if c.AdminPasswordHash != "" {
		config.AdminPasswordHash = c.AdminPasswordHash
	}
	if c.JWTSecret != "" {
		config.JWTSecret = c.JWTSecret
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.WhatsAppToken != "" {
		config.WhatsAppToken = c.WhatsAppToken
	}
	if c.WhatsAppPhoneID != "" {
		config.WhatsAppPhoneID = c.WhatsAppPhoneID
	}
	if c.AdminNotifyRecipient != "" {
		config.AdminNotifyRecipient = c.AdminNotifyRecipient
	}
	if c.TelegramBotToken != "" {
		config.TelegramBotToken = c.TelegramBotToken
	}
	if c.RedisAddr != "" {
		config.RedisAddr = c.RedisAddr
	}
	if c.RateLimitMax != 0 {
		config.RateLimitMax = c.RateLimitMax
	}
	if c.RateLimitWindow.Duration != 0 {
		config.RateLimitWindow = time.Duration(c.RateLimitWindow.Duration)
	}
	if c.NotifyTimeout.Duration != 0 {
		config.NotifyTimeout = time.Duration(c.NotifyTimeout.Duration)
	}
}
