// Package public maintains the group of handlers for public access to the
// ledger node.
package public

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nitechain/nitechain/business/sys/validate"
	"github.com/nitechain/nitechain/business/web/errs"
	"github.com/nitechain/nitechain/foundation/events"
	"github.com/nitechain/nitechain/foundation/ledger"
	"github.com/nitechain/nitechain/foundation/ledger/wallet"
	"github.com/nitechain/nitechain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints. Mu guards the Ledger as one
// shared resource: submission, mining, balance queries and validation all
// take it for their full duration.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Mu     *sync.Mutex
	WS     websocket.Upgrader
	Evts   *events.Events
}

// CreateWallet generates a fresh keypair. The private key is exported in the
// response and never retrievable again.
func (h Handlers) CreateWallet(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	wlt, err := wallet.New()
	if err != nil {
		return fmt.Errorf("generating wallet: %w", err)
	}

	h.Log.Infow("wallet created", "traceid", web.GetTraceID(ctx), "address", wlt.Address())

	resp := newWallet{
		Address:    wlt.Address(),
		PrivateKey: wlt.PrivateKeyExport(),
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// SubmitTransaction signs a transfer with the provided private key and
// admits it to the mempool.
func (h Handlers) SubmitTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req submitTx
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := validate.Check(req); err != nil {
		return err
	}

	wlt, err := wallet.FromPrivateKeyHex(req.PrivateKey)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if wlt.Address() != req.From {
		return errs.NewTrustedf(http.StatusBadRequest, "private key does not match the from address")
	}

	tx := ledger.NewTx(req.From, req.To, req.Amount)
	if err := tx.Sign(wlt); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	h.Mu.Lock()
	defer h.Mu.Unlock()

	if err := h.Ledger.Submit(tx); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	resp := submitTxResult{
		Status:  "transaction added to mempool",
		Amount:  req.Amount,
		Pending: h.Ledger.MempoolCount(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Mine drains the mempool into a new block and performs the proof-of-work
// search. The request blocks until the puzzle is solved.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req mineRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	if err := validate.Check(req); err != nil {
		return err
	}

	h.Mu.Lock()
	defer h.Mu.Unlock()

	block, err := h.Ledger.MinePending(req.MinerAddress)
	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	resp := mineResult{
		Index:        block.Index,
		Hash:         block.Hash,
		Nonce:        block.Nonce,
		Transactions: len(block.Transactions),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Chain returns the full chain of blocks with all fields.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Mu.Lock()
	blocks := h.Ledger.Chain()
	h.Mu.Unlock()

	return web.Respond(ctx, w, chainResult{Blocks: blocks}, http.StatusOK)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Mu.Lock()
	txs := h.Ledger.Mempool()
	h.Mu.Unlock()

	return web.Respond(ctx, w, txs, http.StatusOK)
}

// Balance replays the chain and returns the address's balance.
func (h Handlers) Balance(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	address := web.Param(r, "address")

	h.Mu.Lock()
	balance, err := h.Ledger.BalanceOf(address)
	h.Mu.Unlock()

	if err != nil {
		return errs.NewTrusted(err, http.StatusBadRequest)
	}

	resp := balanceResult{
		Address: address,
		Balance: balance,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Validate walks the whole chain and reports the first integrity failure.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	h.Mu.Lock()
	err := h.Ledger.Validate()
	blocks := len(h.Ledger.Chain())
	h.Mu.Unlock()

	resp := validateResult{
		Valid:  err == nil,
		Blocks: blocks,
	}
	if err != nil {
		resp.Error = err.Error()
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
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
