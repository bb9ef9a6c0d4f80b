package app

import (
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/campus-ledger/internal/auth"
	"github.com/heartmarshall/campus-ledger/internal/config"
	"github.com/heartmarshall/campus-ledger/internal/transport/middleware"
	"github.com/heartmarshall/campus-ledger/internal/transport/rest"
)

// RouterDeps collects everything the HTTP host needs.
type RouterDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Backend  *Backend
	Services *Services
	Tokens   *auth.JWTManager
	Limiter  *middleware.RateLimiter // nil disables rate limiting
	Clock    clockwork.Clock
}

// NewRouter mounts all routes and wraps them in the middleware chain:
// Recovery, RequestID, Logger, CORS, Auth, RateLimit.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	rest.NewHealthHandler(d.Backend, d.Backend.Driver, BuildVersion(), d.Clock).Register(mux)
	rest.NewGovernanceHandler(d.Services.Governance, d.Logger).Register(mux)
	rest.NewWalletHandler(d.Services.Wallet, d.Logger).Register(mux)
	// Both namespaces share one journal table.
	rest.NewJournalHandler(d.Backend.Governance.Journal, d.Logger).Register(mux)

	var rateLimit middleware.Middleware
	if d.Limiter != nil {
		rateLimit = d.Limiter.Limit(d.Config.RateLimit.PerMinute)
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.Config.CORS),
		middleware.Auth(d.Tokens),
		rateLimit,
	)(mux)
}
