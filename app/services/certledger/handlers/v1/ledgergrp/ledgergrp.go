// Package ledgergrp maintains the group of handlers for chain and
// transaction queries.
package ledgergrp

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/certchain/certledger/business/core/ledger"
	v1 "github.com/certchain/certledger/business/web/v1"
	"github.com/certchain/certledger/foundation/events"
	"github.com/certchain/certledger/foundation/web"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger query endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Core
	WS     websocket.Upgrader
	Evts   *events.Events
}

// LatestBlock returns the most recently sealed block.
func (h Handlers) LatestBlock(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blk := h.Ledger.QueryLatestBlock()
	return web.Respond(ctx, w, toBlock(blk), http.StatusOK)
}

// BlockByNumber returns the block with the specified number.
func (h Handlers) BlockByNumber(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	number, err := strconv.ParseUint(web.Param(r, "number"), 10, 64)
	if err != nil {
		return v1.NewRequestError(errors.New("invalid block number"), http.StatusBadRequest)
	}

	blk, err := h.Ledger.QueryBlockByNumber(number)
	if err != nil {
		return v1.NewRequestError(err, http.StatusNotFound)
	}

	return web.Respond(ctx, w, toBlock(blk), http.StatusOK)
}

// Transactions returns every transaction in chain order, pending last.
func (h Handlers) Transactions(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	trans := h.Ledger.QueryTransactions()

	out := make([]tx, len(trans))
	for i, tran := range trans {
		out[i] = toTx(tran)
	}

	return web.Respond(ctx, w, out, http.StatusOK)
}

// TransactionByHash returns the transaction with the specified hash.
func (h Handlers) TransactionByHash(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	hash := web.Param(r, "hash")

	tran, err := h.Ledger.QueryTransactionByHash(hash)
	if err != nil {
		return v1.NewRequestError(err, http.StatusNotFound)
	}

	return web.Respond(ctx, w, toTx(tran), http.StatusOK)
}

// Stats returns a point in time snapshot of the ledger.
func (h Handlers) Stats(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	stats, err := h.Ledger.QueryStats(ctx)
	if err != nil {
		return err
	}

	return web.Respond(ctx, w, stats, http.StatusOK)
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	h.Log.Infow("events", "traceid", v.TraceID, "status", "websocket open")

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}
