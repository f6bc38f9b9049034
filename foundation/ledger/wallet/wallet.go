// Package wallet implements the keypair that signs transactions for the
// ledger. The public key doubles as the account's address, so an address can
// always be decoded back into the key that verifies its signatures.
package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/nitechain/nitechain/foundation/ledger/signature"
)

// ErrInvalidKeyFormat is returned when raw private key material doesn't have
// the expected length for the signing scheme.
var ErrInvalidKeyFormat = errors.New("invalid private key format")

// ErrInvalidAddress is returned when a string doesn't decode to a public key
// of the expected length.
var ErrInvalidAddress = errors.New("invalid address")

// AddressLength is the number of hex characters in an address. An address is
// the hex encoding of a 32 byte ed25519 public key.
const AddressLength = 2 * ed25519.PublicKeySize

// Wallet represents a keypair for signing transactions. The signing key never
// leaves the wallet except through PrivateKeyExport.
type Wallet struct {
	signingKey   ed25519.PrivateKey
	verifyingKey ed25519.PublicKey
}

// New generates a fresh wallet using the operating system's CSPRNG. A
// non-cryptographic generator must never be used for key material.
func New() (*Wallet, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	w := Wallet{
		signingKey:   priv,
		verifyingKey: pub,
	}

	return &w, nil
}

// FromPrivateKey reconstructs a wallet from a raw 32 byte ed25519 seed.
func FromPrivateKey(seed []byte) (*Wallet, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("seed is %d bytes, expected %d: %w", len(seed), ed25519.SeedSize, ErrInvalidKeyFormat)
	}

	priv := ed25519.NewKeyFromSeed(seed)

	w := Wallet{
		signingKey:   priv,
		verifyingKey: priv.Public().(ed25519.PublicKey),
	}

	return &w, nil
}

// FromPrivateKeyHex reconstructs a wallet from the portable 0x-hex form
// produced by PrivateKeyExport.
func FromPrivateKeyHex(s string) (*Wallet, error) {
	seed, err := signature.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding private key: %w", ErrInvalidKeyFormat)
	}

	return FromPrivateKey(seed)
}

// Address returns the wallet's address, the hex encoding of the verifying
// key. It is a pure function of the key and stable across calls.
func (w *Wallet) Address() string {
	return hex.EncodeToString(w.verifyingKey)
}

// PrivateKeyExport returns the portable 0x-hex form of the signing key seed.
// This exists so a caller can hold on to the key at creation time. It must
// never be logged or returned by any other read path.
func (w *Wallet) PrivateKeyExport() string {
	return signature.EncodeToString(w.signingKey.Seed())
}

// Sign produces an ed25519 signature over exactly the given bytes. Any
// hashing is the caller's responsibility and must be repeated at verify time.
func (w *Wallet) Sign(msg []byte) []byte {
	return ed25519.Sign(w.signingKey, msg)
}

// =============================================================================

// DecodeAddress converts an address back into the public key it encodes,
// rejecting malformed or wrong-length input.
func DecodeAddress(address string) (ed25519.PublicKey, error) {
	b, err := hex.DecodeString(address)
	if err != nil {
		return nil, fmt.Errorf("address is not hex: %w", ErrInvalidAddress)
	}

	if len(b) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("address is %d bytes, expected %d: %w", len(b), ed25519.PublicKeySize, ErrInvalidAddress)
	}

	return ed25519.PublicKey(b), nil
}

// =============================================================================

// SaveFile writes the wallet's seed to disk in the portable hex form for use
// by the wallet tooling.
func (w *Wallet) SaveFile(path string) error {
	return os.WriteFile(path, []byte(w.PrivateKeyExport()), 0600)
}

// LoadFile reads a wallet previously written by SaveFile.
func LoadFile(path string) (*Wallet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	return FromPrivateKeyHex(string(data))
}
