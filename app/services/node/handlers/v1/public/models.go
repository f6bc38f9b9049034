package public

import "github.com/nitechain/nitechain/foundation/ledger"

// newWallet is the response for wallet creation. This is the only read path
// that ever carries the private key.
type newWallet struct {
	Address    string `json:"address"`
	PrivateKey string `json:"private_key"`
}

// submitTx is the request to sign and submit a transfer.
type submitTx struct {
	From       string  `json:"from" validate:"required,len=64,hexadecimal"`
	To         string  `json:"to" validate:"required,len=64,hexadecimal"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	PrivateKey string  `json:"private_key" validate:"required"`
}

// submitTxResult reports the accepted amount and the mempool depth.
type submitTxResult struct {
	Status  string  `json:"status"`
	Amount  float64 `json:"amount"`
	Pending int     `json:"pending"`
}

// mineRequest names the address to credit with the coinbase reward.
type mineRequest struct {
	MinerAddress string `json:"miner_address" validate:"required,len=64,hexadecimal"`
}

// mineResult describes the newly mined block.
type mineResult struct {
	Index        uint32 `json:"index"`
	Hash         string `json:"hash"`
	Nonce        uint64 `json:"nonce"`
	Transactions int    `json:"transactions"`
}

// balanceResult is the replayed balance in decimal tokens.
type balanceResult struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

// validateResult reports the chain's integrity. Integrity errors surface
// verbatim; proving tampering is their entire purpose.
type validateResult struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Blocks int    `json:"blocks"`
}

// chainResult is the full chain with all block fields.
type chainResult struct {
	Blocks []ledger.Block `json:"blocks"`
}
