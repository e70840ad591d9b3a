package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/bookline/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-k string   field-encryption secret
//	-s string   JWT HMAC secret key
//	-t int      admin token validity, minutes
//	-w string   WhatsApp access token
//	-p string   WhatsApp phone number ID
//	-n string   admin notification recipient
//	-r string   Redis address for the booking rate limiter
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k", "-s", "-t", "-w", "-p", "-n", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.EncryptionSecret, "k", config.EncryptionSecret, "field-encryption secret")
	fs.StringVar(&config.JWTSecret, "s", config.JWTSecret, "JWT secret key")

	tokenValidityDuration := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token_validity_duration (in minutes)")

	fs.StringVar(&config.WhatsAppToken, "w", config.WhatsAppToken, "WhatsApp access token")
	fs.StringVar(&config.WhatsAppPhoneID, "p", config.WhatsAppPhoneID, "WhatsApp phone number ID")
	fs.StringVar(&config.AdminNotifyRecipient, "n", config.AdminNotifyRecipient, "admin notification recipient")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "Redis address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidityDuration) * time.Minute
}
