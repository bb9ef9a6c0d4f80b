// Command token issues a bearer token for a principal address, signed with
// the configured AUTH_JWT_SECRET.
//
// Usage:
//
//	token --address=GADDR
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/heartmarshall/campus-ledger/internal/auth"
	"github.com/heartmarshall/campus-ledger/internal/config"
	"github.com/heartmarshall/campus-ledger/internal/domain"
)

func main() {
	address := flag.String("address", "", "principal address to embed in the token")
	flag.Parse()

	if *address == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --address=GADDR")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := tokens.GenerateAccessToken(domain.Address(*address))
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
