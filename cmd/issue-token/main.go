// Command issue-token mints a back-office operator token signed with the
// configured RSA key.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"accounts-service/internal/config"
	"accounts-service/internal/logging"
	"accounts-service/internal/models"
	"accounts-service/internal/services"
)

func main() {
	operatorID := flag.String("operator", "", "operator ID to embed in the token (required)")
	role := flag.String("role", models.RoleOperator, "operator role: operator or admin")
	ttl := flag.Duration("ttl", 0, "token lifetime; defaults to AUTH_TOKEN_DURATION")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, "issue-token", cfg.LogLevel, cfg.Server.Environment)

	if *operatorID == "" {
		logger.Error("missing -operator")
		flag.Usage()
		os.Exit(2)
	}
	if *role != models.RoleOperator && *role != models.RoleAdmin {
		logger.Error("invalid role", "role", *role)
		os.Exit(2)
	}

	// An ephemeral keypair would mint tokens no server accepts
	privateKeyB64, publicKeyB64 := os.Getenv("AUTH_PRIVATE_KEY"), os.Getenv("AUTH_PUBLIC_KEY")
	if privateKeyB64 == "" || publicKeyB64 == "" {
		logger.Error("AUTH_PRIVATE_KEY and AUTH_PUBLIC_KEY must be set")
		os.Exit(1)
	}
	cfg.Auth.PrivateKey, cfg.Auth.PublicKey, err = config.LoadKeysFromBase64(privateKeyB64, publicKeyB64)
	if err != nil {
		logger.Error("failed to load signing keys", "error", err)
		os.Exit(1)
	}
	if *ttl > 0 {
		cfg.Auth.TokenDuration = *ttl
	}

	token, expiresAt, err := services.NewTokenService(&cfg.Auth).GenerateAccessToken(*operatorID, *role)
	if err != nil {
		logger.Error("failed to issue token", "error", err)
		os.Exit(1)
	}

	logger.Info("token issued", "operator_id", *operatorID, "role", *role, "expires_at", expiresAt.Format(time.RFC3339))
	fmt.Println(token)
}
