// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"
	"sync"

	"github.com/nitechain/nitechain/app/services/node/handlers/v1/public"
	"github.com/nitechain/nitechain/foundation/events"
	"github.com/nitechain/nitechain/foundation/ledger"
	"github.com/nitechain/nitechain/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Evts   *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {

	// The engine is purely sequential; every operation takes this one lock
	// so a submission can never interleave with the mempool drain inside a
	// mine call.
	var mu sync.Mutex

	pbl := public.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
		Mu:     &mu,
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodPost, version, "/wallet", pbl.CreateWallet)
	app.Handle(http.MethodPost, version, "/tx/submit", pbl.SubmitTransaction)
	app.Handle(http.MethodPost, version, "/mine", pbl.Mine)
	app.Handle(http.MethodGet, version, "/chain", pbl.Chain)
	app.Handle(http.MethodGet, version, "/mempool", pbl.Mempool)
	app.Handle(http.MethodGet, version, "/balance/:address", pbl.Balance)
	app.Handle(http.MethodGet, version, "/validate", pbl.Validate)
	app.Handle(http.MethodGet, version, "/events", pbl.Events)
}
