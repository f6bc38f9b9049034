package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/nitechain/nitechain/foundation/ledger/signature"
)

// Block represents a group of transactions sealed together by proof of work
// and linked to its parent by hash.
type Block struct {
	Index        uint32 `json:"index"`
	TimeStamp    uint64 `json:"timestamp"`
	Transactions []Tx   `json:"transactions"`
	PrevHash     string `json:"previous_hash"`
	Nonce        uint64 `json:"nonce"`
	Hash         string `json:"hash"`
	Miner        string `json:"miner"`
}

// NewBlock constructs an unmined block. The wall clock is sampled once here;
// the timestamp is part of the mined content and must stay fixed across
// nonce attempts.
func NewBlock(index uint32, txs []Tx, prevHash string, miner string) Block {
	return Block{
		Index:        index,
		TimeStamp:    uint64(time.Now().UTC().Unix()),
		Transactions: txs,
		PrevHash:     prevHash,
		Miner:        miner,
	}
}

// ContentDigest hashes a canonical string built from the block's complete
// contents. Any change to any field, including any nested transaction field,
// produces a different digest. The encoding is byte-for-byte reproducible
// from the same field values regardless of when it is recomputed.
func (b Block) ContentDigest() string {
	txData := make([]string, len(b.Transactions))
	for i, tx := range b.Transactions {
		txData[i] = fmt.Sprintf("%s|%s|%d", tx.From, tx.To, tx.Amount)
	}

	input := fmt.Sprintf("%d::%d::%s::%s::%d", b.Index, b.TimeStamp, strings.Join(txData, "::"), b.PrevHash, b.Nonce)

	return signature.HashString(input)
}

// Mine performs the proof-of-work search: the nonce is incremented from zero
// until the content digest starts with the difficulty prefix. The search is
// CPU bound and runs to completion; each additional prefix character
// multiplies the expected cost by 16. Pointer semantics are being used since
// a nonce is being discovered.
func (b *Block) Mine(difficultyPrefix string, ev EventHandler) {
	ev("ledger: mine: block[%d]: started: difficulty[%s]", b.Index, difficultyPrefix)

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("ledger: mine: block[%d]: attempts[%d]", b.Index, attempts)
		}

		hash := b.ContentDigest()
		if strings.HasPrefix(hash, difficultyPrefix) {
			b.Hash = hash
			ev("ledger: mine: block[%d]: solved: nonce[%d] hash[%s]", b.Index, b.Nonce, hash)
			return
		}

		b.Nonce++
	}
}

// ValidateTransactions runs Validate over every transaction in the block in
// order, annotating the first failure with the transaction's position.
func (b Block) ValidateTransactions() error {
	for i, tx := range b.Transactions {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("block %d: transaction %d: %w", b.Index, i, err)
		}
	}

	return nil
}
