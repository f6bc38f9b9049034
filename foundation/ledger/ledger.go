// Package ledger is the core API for the blockchain and implements the
// block/transaction data model, proof-of-work mining, replay-based balances
// and full-chain validation. The package is purely sequential; a layer that
// hosts it behind a concurrent boundary must guard the whole Ledger with a
// single lock.
package ledger

import (
	"fmt"
	"math"

	"github.com/nitechain/nitechain/foundation/ledger/mempool"
	"github.com/nitechain/nitechain/foundation/ledger/signature"
)

// DefaultRewardNits is the coinbase reward credited to a miner per block,
// 50 tokens expressed in nits.
const DefaultRewardNits = 50 * NitsPerToken

// EventHandler defines a function that is called when events occur in the
// processing of transactions and blocks.
type EventHandler func(v string, args ...any)

// Config represents the configuration required to construct a ledger.
type Config struct {
	Difficulty string
	RewardNits uint64
	EvHandler  EventHandler
}

// Ledger owns the chain of blocks and the pool of pending transactions. The
// chain is never empty; the genesis block is mined at construction.
type Ledger struct {
	chain      []Block
	difficulty string
	mempool    *mempool.Mempool[Tx]
	reward     uint64
	evHandler  EventHandler
}

// New constructs a ledger and mines its genesis block: no transactions,
// the NETWORK sentinel as miner, and the all-zero parent hash. The
// difficulty prefix must be composed of digest-alphabet characters only.
func New(cfg Config) (*Ledger, error) {
	if !signature.IsHexDigest(cfg.Difficulty) {
		return nil, fmt.Errorf("difficulty %q: %w", cfg.Difficulty, ErrInvalidDifficulty)
	}

	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	reward := cfg.RewardNits
	if reward == 0 {
		reward = DefaultRewardNits
	}

	genesis := NewBlock(0, nil, signature.ZeroHash, NetworkSender)
	genesis.Mine(cfg.Difficulty, ev)

	l := Ledger{
		chain:      []Block{genesis},
		difficulty: cfg.Difficulty,
		mempool:    mempool.New[Tx](),
		reward:     reward,
		evHandler:  ev,
	}

	return &l, nil
}

// Submit validates a transaction and appends it to the mempool in submission
// order. A transaction never enters the mempool unless it independently
// validates; this admission control is what makes mined blocks trustworthy.
func (l *Ledger) Submit(tx Tx) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	count := l.mempool.Add(tx)
	l.evHandler("ledger: submit: accepted: %s: pool[%d]", tx, count)

	return nil
}

// MinePending drains the entire mempool into a new block, appends a coinbase
// transaction rewarding the miner, performs the proof-of-work search and
// appends the block to the chain. Mining an empty mempool is disallowed so
// no proof of work is wasted on a block that carries nothing but its own
// coinbase.
func (l *Ledger) MinePending(minerAddress string) (Block, error) {
	if l.mempool.Count() == 0 {
		return Block{}, ErrEmptyMempool
	}

	txs := l.mempool.Drain()
	txs = append(txs, NewTxInNits(NetworkSender, minerAddress, l.reward))

	tip := l.chain[len(l.chain)-1]

	block := NewBlock(tip.Index+1, txs, tip.Hash, minerAddress)
	block.Mine(l.difficulty, l.evHandler)

	l.chain = append(l.chain, block)

	return block, nil
}

// BalanceOf replays every transaction in every block from genesis onward and
// returns the address's balance in decimal tokens. Arithmetic is checked:
// overflow and underflow are reported rather than wrapped, since on a
// legitimately mined chain spends never exceed receipts and either failure
// proves corruption.
func (l *Ledger) BalanceOf(address string) (float64, error) {
	var balance uint64

	for _, block := range l.chain {
		for _, tx := range block.Transactions {
			if tx.To == address {
				if balance > math.MaxUint64-tx.Amount {
					return 0, fmt.Errorf("address %s: %w", shortAddr(address), ErrBalanceOverflow)
				}
				balance += tx.Amount
			}

			if tx.From == address {
				if tx.Amount > balance {
					return 0, fmt.Errorf("address %s: %w", shortAddr(address), ErrBalanceUnderflow)
				}
				balance -= tx.Amount
			}
		}
	}

	return float64(balance) / NitsPerToken, nil
}

// Validate walks the chain from block 1 onward and returns the first
// integrity failure found. Genesis is the root of trust and is not checked
// against a predecessor. For each block, in order: the stored hash must
// reproduce from the block's contents, the parent link must match the prior
// block's stored hash, and every transaction must validate.
func (l *Ledger) Validate() error {
	for i := 1; i < len(l.chain); i++ {
		current := l.chain[i]
		previous := l.chain[i-1]

		if current.Hash != current.ContentDigest() {
			return fmt.Errorf("block %d: %w", i, ErrHashMismatch)
		}

		if current.PrevHash != previous.Hash {
			return fmt.Errorf("block %d: %w", i, ErrBrokenLink)
		}

		if err := current.ValidateTransactions(); err != nil {
			return err
		}
	}

	return nil
}

// Tamper overwrites a historical transaction's amount in place. This exists
// only to simulate an attack so Validate's tamper detection can be
// demonstrated; it is not part of normal operation.
func (l *Ledger) Tamper(blockIndex int, txIndex int, amountNits uint64) error {
	if blockIndex < 0 || blockIndex >= len(l.chain) {
		return fmt.Errorf("no block at index %d", blockIndex)
	}

	block := &l.chain[blockIndex]
	if txIndex < 0 || txIndex >= len(block.Transactions) {
		return fmt.Errorf("block %d has no transaction at index %d", blockIndex, txIndex)
	}

	block.Transactions[txIndex].Amount = amountNits

	return nil
}

// Chain returns a copy of the chain of blocks in order.
func (l *Ledger) Chain() []Block {
	chain := make([]Block, len(l.chain))
	copy(chain, l.chain)
	return chain
}

// LatestBlock returns the block at the tip of the chain.
func (l *Ledger) LatestBlock() Block {
	return l.chain[len(l.chain)-1]
}

// Mempool returns a copy of the pending transactions in submission order.
func (l *Ledger) Mempool() []Tx {
	return l.mempool.Copy()
}

// MempoolCount returns the number of pending transactions.
func (l *Ledger) MempoolCount() int {
	return l.mempool.Count()
}

// Difficulty returns the required hash prefix for mined blocks.
func (l *Ledger) Difficulty() string {
	return l.difficulty
}

// Reward returns the coinbase reward in nits.
func (l *Ledger) Reward() uint64 {
	return l.reward
}
