package signature_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/nitechain/nitechain/foundation/ledger/signature"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_HashString(t *testing.T) {
	t.Log("Given the need for a reproducible digest encoding.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same input twice.")
		{
			h1 := signature.HashString("0::1700000000::a|b|100::prev::42")
			h2 := signature.HashString("0::1700000000::a|b|100::prev::42")

			if h1 != h2 {
				t.Fatalf("\t%s\tTest 0:\tShould get identical digests, got %s and %s.", failed, h1, h2)
			}
			t.Logf("\t%s\tTest 0:\tShould get identical digests.", success)

			if len(h1) != 64 || !signature.IsHexDigest(h1) {
				t.Fatalf("\t%s\tTest 0:\tShould get a 64 character hex digest, got %q.", failed, h1)
			}
			t.Logf("\t%s\tTest 0:\tShould get a 64 character hex digest.", success)
		}

		t.Logf("\tTest 1:\tWhen hashing different inputs.")
		{
			if signature.HashString("a") == signature.HashString("b") {
				t.Fatalf("\t%s\tTest 1:\tShould get different digests for different inputs.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould get different digests for different inputs.", success)
		}
	}
}

func Test_IsHexDigest(t *testing.T) {
	type table struct {
		name  string
		input string
		valid bool
	}

	tt := []table{
		{name: "zeros", input: "0000", valid: true},
		{name: "empty", input: "", valid: true},
		{name: "full alphabet", input: "0123456789abcdef", valid: true},
		{name: "uppercase", input: "00AB", valid: false},
		{name: "non hex", input: "00g0", valid: false},
	}

	t.Log("Given the need to validate difficulty prefixes.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen checking a %s prefix.", testID, tst.name)
			{
				if got := signature.IsHexDigest(tst.input); got != tst.valid {
					t.Fatalf("\t%s\tTest %d:\tShould report %v, got %v.", failed, testID, tst.valid, got)
				}
				t.Logf("\t%s\tTest %d:\tShould report %v.", success, testID, tst.valid)
			}
		}
	}
}

func Test_Verify(t *testing.T) {
	t.Log("Given the need to verify signatures against exact message bytes.")
	{
		t.Logf("\tTest 0:\tWhen signing and verifying a message.")
		{
			pub, priv, err := ed25519.GenerateKey(rand.Reader)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate a key: %v", failed, err)
			}

			msg := signature.HashBytes([]byte("transfer"))
			sig := ed25519.Sign(priv, msg)

			if !signature.Verify(pub, msg, sig) {
				t.Fatalf("\t%s\tTest 0:\tShould verify a valid signature.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould verify a valid signature.", success)

			other := signature.HashBytes([]byte("transfer2"))
			if signature.Verify(pub, other, sig) {
				t.Fatalf("\t%s\tTest 0:\tShould reject a signature over different bytes.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould reject a signature over different bytes.", success)

			if signature.Verify(pub[:16], msg, sig) {
				t.Fatalf("\t%s\tTest 0:\tShould reject a truncated public key.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould reject a truncated public key.", success)
		}
	}
}
