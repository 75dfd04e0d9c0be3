// admintoken выпускает JWT для PUT probabilities и POST stats/reset.
// Секрет и срок жизни берутся из ADMIN_TOKEN_SECRET и ADMIN_TOKEN_DURATION.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"slot_game/internal/config"
	"slot_game/internal/config/env"
	"slot_game/pkg/token"
)

var (
	flagEnv     string
	flagSubject string
)

func init() {
	flag.StringVar(&flagEnv, "env", ".env", "path to .env file")
	flag.StringVar(&flagSubject, "sub", "admin", "token subject")
}

func main() {
	flag.Parse()

	if err := config.Load(flagEnv); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	cfg, err := env.NewAdminTokenConfig()
	if err != nil {
		log.Fatalf("admin token config: %v", err)
	}

	tok, err := token.GenerateAdminToken(flagSubject, cfg.SecretKey(), cfg.TokenDuration())
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	fmt.Println(tok)
}
