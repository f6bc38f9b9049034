// Package signature provides the hashing and signing primitives shared by the
// ledger's transactions and blocks.
package signature

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros. The genesis block links to this
// value since it has no parent.
const ZeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

// HashString returns the hex-encoded SHA-256 digest of the specified string.
// The encoding is bare hex so the proof-of-work prefix comparison works on
// the first character of the digest.
func HashString(s string) string {
	hash := sha256.Sum256([]byte(s))
	return hex.EncodeToString(hash[:])
}

// HashBytes returns the raw SHA-256 digest of the specified bytes. This is
// the fixed-size value that gets signed, so signature size is independent of
// the length of the data.
func HashBytes(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

// Verify reports whether sig is a valid ed25519 signature over msg for the
// specified public key. It is pure and side-effect free.
func Verify(publicKey ed25519.PublicKey, msg []byte, sig []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize {
		return false
	}

	return ed25519.Verify(publicKey, msg, sig)
}

// EncodeToString returns the portable 0x-hex form of a signature or key so
// transactions remain serializable.
func EncodeToString(b []byte) string {
	return hexutil.Encode(b)
}

// DecodeString converts the portable 0x-hex form back to raw bytes.
func DecodeString(s string) ([]byte, error) {
	return hexutil.Decode(s)
}

// IsHexDigest verifies every character of the specified string belongs to
// the lowercase hex alphabet used by the digest encoding.
func IsHexDigest(s string) bool {
	for _, c := range []byte(s) {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
