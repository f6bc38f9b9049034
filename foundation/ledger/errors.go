package ledger

import "errors"

// The engine reports every expected failure as one of this closed set of
// error kinds. Callers depend on matching these with errors.Is; the wrapped
// context (block index, transaction position) is presentation detail.
var (
	// Transaction admission errors.
	ErrZeroAmount           = errors.New("transaction amount cannot be zero")
	ErrUnsigned             = errors.New("transaction has no signature")
	ErrMalformedSignature   = errors.New("transaction signature is malformed")
	ErrInvalidSenderAddress = errors.New("sender address is not a valid public key")
	ErrSignatureInvalid     = errors.New("transaction signature is invalid")
	ErrWrongSigner          = errors.New("wallet address does not match transaction sender")

	// Ledger state errors.
	ErrEmptyMempool      = errors.New("mempool is empty, nothing to mine")
	ErrInvalidDifficulty = errors.New("difficulty must contain only hex digest characters")

	// Chain integrity errors. These are never recovered silently; their whole
	// purpose is to prove tampering occurred.
	ErrHashMismatch     = errors.New("block hash does not match its contents")
	ErrBrokenLink       = errors.New("block is disconnected from its parent")
	ErrBalanceOverflow  = errors.New("balance overflow")
	ErrBalanceUnderflow = errors.New("balance underflow, spending more than available")
)
