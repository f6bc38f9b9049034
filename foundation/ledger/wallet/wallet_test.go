package wallet_test

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nitechain/nitechain/foundation/ledger/wallet"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_AddressRoundTrip(t *testing.T) {
	t.Log("Given the need to derive and decode wallet addresses.")
	{
		t.Logf("\tTest 0:\tWhen generating a fresh wallet.")
		{
			w, err := wallet.New()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate a wallet: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to generate a wallet.", success)

			addr := w.Address()
			if len(addr) != wallet.AddressLength {
				t.Fatalf("\t%s\tTest 0:\tShould get a %d character address, got %d.", failed, wallet.AddressLength, len(addr))
			}
			t.Logf("\t%s\tTest 0:\tShould get a %d character address.", success, wallet.AddressLength)

			if w.Address() != addr {
				t.Fatalf("\t%s\tTest 0:\tShould get a stable address across calls.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get a stable address across calls.", success)

			pub, err := wallet.DecodeAddress(addr)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to decode the address: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to decode the address.", success)

			sig := w.Sign([]byte("round trip"))
			if !ed25519.Verify(pub, []byte("round trip"), sig) {
				t.Fatalf("\t%s\tTest 0:\tShould verify a signature with the decoded key.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould verify a signature with the decoded key.", success)

			w2, err := wallet.FromPrivateKeyHex(w.PrivateKeyExport())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to rebuild the wallet from its export: %v", failed, err)
			}
			if w2.Address() != addr {
				t.Fatalf("\t%s\tTest 0:\tShould get the same address from the rebuilt wallet.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould get the same address from the rebuilt wallet.", success)
		}
	}
}

func Test_InvalidKeyMaterial(t *testing.T) {
	type table struct {
		name string
		seed []byte
	}

	tt := []table{
		{name: "short", seed: bytes.Repeat([]byte{0x01}, 16)},
		{name: "long", seed: bytes.Repeat([]byte{0x01}, 64)},
		{name: "empty", seed: nil},
	}

	t.Log("Given the need to reject malformed private keys.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s seed.", testID, tst.name)
			{
				if _, err := wallet.FromPrivateKey(tst.seed); !errors.Is(err, wallet.ErrInvalidKeyFormat) {
					t.Fatalf("\t%s\tTest %d:\tShould get ErrInvalidKeyFormat, got %v.", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould get ErrInvalidKeyFormat.", success, testID)
			}
		}

		t.Logf("\tTest %d:\tWhen handling a non-hex export.", len(tt))
		{
			if _, err := wallet.FromPrivateKeyHex("not-hex-at-all"); !errors.Is(err, wallet.ErrInvalidKeyFormat) {
				t.Fatalf("\t%s\tTest %d:\tShould get ErrInvalidKeyFormat, got %v.", failed, len(tt), err)
			}
			t.Logf("\t%s\tTest %d:\tShould get ErrInvalidKeyFormat.", success, len(tt))
		}
	}
}

func Test_DecodeAddressRejectsMalformed(t *testing.T) {
	type table struct {
		name string
		addr string
	}

	tt := []table{
		{name: "odd length", addr: "abc"},
		{name: "non hex", addr: "zz6b972ffcc631a62cae1bb9d80b7ff429c8eba4zz6b972ffcc631a62cae1bb9"},
		{name: "wrong length", addr: "abcdef"},
		{name: "empty", addr: ""},
	}

	t.Log("Given the need to reject malformed addresses.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen decoding a %s address.", testID, tst.name)
			{
				if _, err := wallet.DecodeAddress(tst.addr); !errors.Is(err, wallet.ErrInvalidAddress) {
					t.Fatalf("\t%s\tTest %d:\tShould get ErrInvalidAddress, got %v.", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould get ErrInvalidAddress.", success, testID)
			}
		}
	}
}

func Test_SaveLoadFile(t *testing.T) {
	t.Log("Given the need to persist a wallet for the CLI tooling.")
	{
		t.Logf("\tTest 0:\tWhen saving and reloading a key file.")
		{
			w, err := wallet.New()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate a wallet: %v", failed, err)
			}

			path := filepath.Join(t.TempDir(), "private.key")
			if err := w.SaveFile(path); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to save the key file: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to save the key file.", success)

			w2, err := wallet.LoadFile(path)
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to load the key file: %v", failed, err)
			}
			if w2.Address() != w.Address() {
				t.Fatalf("\t%s\tTest 0:\tShould get the same address back, got %s exp %s.", failed, w2.Address(), w.Address())
			}
			t.Logf("\t%s\tTest 0:\tShould get the same address back.", success)
		}
	}
}
