package config

import "os"

// parseEnv overlays configuration from environment variables. Only variables
// that are actually set override the current values, so defaults survive an
// empty environment.
func parseEnv(config *Config) {
	overlay := map[string]*string{
		"ADDRESS":                  &config.EndpointAddr,
		"DATABASE_DSN":             &config.DatabaseDSN,
		"APP_ENCRYPTION_KEY":       &config.EncryptionSecret,
		"ADMIN_USER":               &config.AdminUser,
		"ADMIN_PASSWORD_HASH":      &config.AdminPasswordHash,
		"JWT_SECRET":               &config.JWTSecret,
		"WHATSAPP_ACCESS_TOKEN":    &config.WhatsAppToken,
		"WHATSAPP_PHONE_NUMBER_ID": &config.WhatsAppPhoneID,
		"ADMIN_WHATSAPP_NUMBER":    &config.AdminNotifyRecipient,
		"TELEGRAM_BOT_TOKEN":       &config.TelegramBotToken,
		"REDIS_ADDR":               &config.RedisAddr,
	}

	for name, target := range overlay {
		if value, ok := os.LookupEnv(name); ok {
			*target = value
		}
	}
}
