package ledger

import (
	"crypto/ed25519"
	"fmt"
	"math"

	"github.com/nitechain/nitechain/foundation/ledger/signature"
	"github.com/nitechain/nitechain/foundation/ledger/wallet"
)

// NetworkSender is the privileged coinbase sender. Transactions from this
// sender carry mining rewards and are exempt from signature checks.
const NetworkSender = "NETWORK"

// NitsPerToken is the number of minor units in one token. Amounts are stored
// as integer nits so monetary sums never suffer floating point drift.
const NitsPerToken = 1000

// Tx represents a single value transfer between two addresses. The amount is
// stored in nits. A transaction is unsigned until Sign is called; mutating
// any field afterwards invalidates the signature on the next Validate.
type Tx struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Amount    uint64 `json:"amount"`
	Signature string `json:"signature,omitempty"`
}

// NewTx constructs an unsigned transaction from a decimal token amount,
// converting to nits by rounding.
func NewTx(from string, to string, amountTokens float64) Tx {
	return Tx{
		From:   from,
		To:     to,
		Amount: uint64(math.Round(amountTokens * NitsPerToken)),
	}
}

// NewTxInNits constructs an unsigned transaction directly in nits. Used for
// coinbase transactions where the reward is already a nits value.
func NewTxInNits(from string, to string, amountNits uint64) Tx {
	return Tx{
		From:   from,
		To:     to,
		Amount: amountNits,
	}
}

// AmountTokens converts the internal nits amount back to decimal tokens.
func (tx Tx) AmountTokens() float64 {
	return float64(tx.Amount) / NitsPerToken
}

// SignableDigest returns the fixed-size digest of the transaction's signable
// content: from, to and the integer amount, in that order. This digest is
// what gets signed and re-verified, not the raw fields.
func (tx Tx) SignableDigest() []byte {
	data := fmt.Sprintf("%s%s%d", tx.From, tx.To, tx.Amount)
	return signature.HashBytes([]byte(data))
}

// Sign attaches the wallet's signature over the transaction's signable
// digest. A wallet may only sign its own outgoing transfers; signing a
// transaction whose sender is a different address fails with ErrWrongSigner
// before any signature is produced.
func (tx *Tx) Sign(w *wallet.Wallet) error {
	if tx.From != NetworkSender && w.Address() != tx.From {
		return fmt.Errorf("sender %s, wallet %s: %w", shortAddr(tx.From), shortAddr(w.Address()), ErrWrongSigner)
	}

	sig := w.Sign(tx.SignableDigest())
	tx.Signature = signature.EncodeToString(sig)

	return nil
}

// Validate checks the transaction can be admitted into the ledger. The
// checks run in a fixed order and the first failure determines the reported
// error, which callers may depend on for diagnostics:
//
//	coinbase exemption, zero amount, missing signature, malformed signature,
//	invalid sender address, signature verification.
func (tx Tx) Validate() error {
	if tx.From == NetworkSender {
		return nil
	}

	if tx.Amount == 0 {
		return ErrZeroAmount
	}

	if tx.Signature == "" {
		return ErrUnsigned
	}

	sig, err := signature.DecodeString(tx.Signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return ErrMalformedSignature
	}

	publicKey, err := wallet.DecodeAddress(tx.From)
	if err != nil {
		return ErrInvalidSenderAddress
	}

	if !signature.Verify(publicKey, tx.SignableDigest(), sig) {
		return ErrSignatureInvalid
	}

	return nil
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	signed := "unsigned"
	if tx.Signature != "" {
		signed = "signed"
	}

	return fmt.Sprintf("%s -> %s: %g tokens [%s]", shortAddr(tx.From), shortAddr(tx.To), tx.AmountTokens(), signed)
}

// shortAddr truncates an address for display. The NETWORK sentinel and
// anything already short passes through unchanged.
func shortAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}

	return addr[:10] + "..."
}
