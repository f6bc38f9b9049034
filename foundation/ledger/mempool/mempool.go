// Package mempool maintains the pool of transactions waiting to be mined.
// Submission order is preserved so blocks carry transactions in the order
// they were accepted. The pool carries no locking of its own; the ledger is
// guarded as a whole by whatever layer hosts it.
package mempool

// Mempool represents an ordered pool of pending transactions.
type Mempool[T any] struct {
	pool []T
}

// New constructs an empty mempool.
func New[T any]() *Mempool[T] {
	return &Mempool[T]{}
}

// Add appends a transaction to the pool, preserving submission order.
func (mp *Mempool[T]) Add(tx T) int {
	mp.pool = append(mp.pool, tx)
	return len(mp.pool)
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool[T]) Count() int {
	return len(mp.pool)
}

// Copy returns a copy of the pool in submission order.
func (mp *Mempool[T]) Copy() []T {
	txs := make([]T, len(mp.pool))
	copy(txs, mp.pool)
	return txs
}

// Drain removes and returns the entire contents of the pool in submission
// order. The pool is empty afterwards.
func (mp *Mempool[T]) Drain() []T {
	txs := mp.pool
	mp.pool = nil
	return txs
}

// Truncate clears all the transactions from the pool.
func (mp *Mempool[T]) Truncate() {
	mp.pool = nil
}
