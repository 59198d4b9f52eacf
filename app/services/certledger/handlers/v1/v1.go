// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/certchain/certledger/app/services/certledger/handlers/v1/certgrp"
	"github.com/certchain/certledger/app/services/certledger/handlers/v1/ledgergrp"
	"github.com/certchain/certledger/business/core/ledger"
	"github.com/certchain/certledger/foundation/events"
	"github.com/certchain/certledger/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Core
	Evts   *events.Events
}

// Routes binds all the version 1 routes.
func Routes(app *web.App, cfg Config) {
	cgh := certgrp.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
	}

	app.Handle(http.MethodPost, version, "/institutions", cgh.Register)
	app.Handle(http.MethodGet, version, "/institutions", cgh.QueryInstitutions)
	app.Handle(http.MethodPost, version, "/certificates", cgh.Issue)
	app.Handle(http.MethodGet, version, "/certificates", cgh.QueryCertificates)
	app.Handle(http.MethodPost, version, "/certificates/verify/:hash", cgh.Verify)

	lgh := ledgergrp.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/blocks/latest", lgh.LatestBlock)
	app.Handle(http.MethodGet, version, "/blocks/:number", lgh.BlockByNumber)
	app.Handle(http.MethodGet, version, "/tx/list", lgh.Transactions)
	app.Handle(http.MethodGet, version, "/tx/:hash", lgh.TransactionByHash)
	app.Handle(http.MethodGet, version, "/stats", lgh.Stats)
	app.Handle(http.MethodGet, version, "/events", lgh.Events)
}
