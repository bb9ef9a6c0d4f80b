// Command init-ledger records the administrator of each ledger namespace.
// Initialization is unguarded, so running it again replaces the admin and
// resets the governance counters.
//
// Usage:
//
//	init-ledger --governance-admin=GADDR --wallet-admin=GADDR
//
// Either flag may be omitted to leave that namespace untouched.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/campus-ledger/internal/app"
	"github.com/heartmarshall/campus-ledger/internal/config"
	"github.com/heartmarshall/campus-ledger/internal/domain"
)

func main() {
	govAdmin := flag.String("governance-admin", "", "address that may create clubs")
	walletAdmin := flag.String("wallet-admin", "", "address that may create events")
	flag.Parse()

	if *govAdmin == "" && *walletAdmin == "" {
		fmt.Fprintln(os.Stderr, "Usage: init-ledger --governance-admin=GADDR --wallet-admin=GADDR")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if cfg.Database.Driver == config.DriverMemory {
		logger.Warn("memory driver: initialization is lost when this process exits")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	be, err := app.OpenBackend(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("open backend: %v", err)
	}
	defer be.Close()

	svcs := app.NewServices(logger, be, clockwork.NewRealClock())

	if *govAdmin != "" {
		if err := svcs.Governance.Initialize(ctx, domain.Address(*govAdmin)); err != nil {
			log.Fatalf("initialize governance: %v", err)
		}
		fmt.Printf("Governance admin set to %q.\n", *govAdmin)
	}
	if *walletAdmin != "" {
		if err := svcs.Wallet.Initialize(ctx, domain.Address(*walletAdmin)); err != nil {
			log.Fatalf("initialize wallet: %v", err)
		}
		fmt.Printf("Wallet admin set to %q.\n", *walletAdmin)
	}
}
