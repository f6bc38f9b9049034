package ledger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nitechain/nitechain/foundation/ledger"
	"github.com/nitechain/nitechain/foundation/ledger/signature"
)

func Test_MineBlock(t *testing.T) {
	t.Log("Given the need to seal a block with proof of work.")
	{
		t.Logf("\tTest 0:\tWhen mining a block with difficulty \"0\".")
		{
			alice := newWallet(t)
			bob := newWallet(t)

			tx := ledger.NewTx(alice.Address(), bob.Address(), 10)
			if err := tx.Sign(alice); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to sign: %v", failed, err)
			}

			block := ledger.NewBlock(1, []ledger.Tx{tx}, signature.ZeroHash, bob.Address())
			ts := block.TimeStamp

			block.Mine("0", func(v string, args ...any) {})

			if !strings.HasPrefix(block.Hash, "0") {
				t.Fatalf("\t%s\tTest 0:\tShould get a hash starting with the difficulty prefix, got %s.", failed, block.Hash)
			}
			t.Logf("\t%s\tTest 0:\tShould get a hash starting with the difficulty prefix.", success)

			if block.Hash != block.ContentDigest() {
				t.Fatalf("\t%s\tTest 0:\tShould store a hash reproducible from the contents.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould store a hash reproducible from the contents.", success)

			if block.TimeStamp != ts {
				t.Fatalf("\t%s\tTest 0:\tShould keep the timestamp fixed across nonce attempts.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould keep the timestamp fixed across nonce attempts.", success)
		}
	}
}

func Test_ContentDigestCoversEverything(t *testing.T) {
	base := ledger.Block{
		Index:        3,
		TimeStamp:    1_700_000_000,
		Transactions: []ledger.Tx{ledger.NewTxInNits("a", "b", 100)},
		PrevHash:     signature.ZeroHash,
		Nonce:        7,
		Miner:        "m",
	}

	type table struct {
		name   string
		mutate func(b ledger.Block) ledger.Block
	}

	tt := []table{
		{name: "index", mutate: func(b ledger.Block) ledger.Block { b.Index++; return b }},
		{name: "timestamp", mutate: func(b ledger.Block) ledger.Block { b.TimeStamp++; return b }},
		{name: "previous hash", mutate: func(b ledger.Block) ledger.Block { b.PrevHash = "ff" + b.PrevHash[2:]; return b }},
		{name: "nonce", mutate: func(b ledger.Block) ledger.Block { b.Nonce++; return b }},
		{name: "transaction amount", mutate: func(b ledger.Block) ledger.Block {
			txs := []ledger.Tx{ledger.NewTxInNits("a", "b", 101)}
			b.Transactions = txs
			return b
		}},
		{name: "transaction recipient", mutate: func(b ledger.Block) ledger.Block {
			txs := []ledger.Tx{ledger.NewTxInNits("a", "c", 100)}
			b.Transactions = txs
			return b
		}},
	}

	t.Log("Given the need for the digest to cover every block field.")
	{
		want := base.ContentDigest()

		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen changing the %s.", testID, tst.name)
			{
				if tst.mutate(base).ContentDigest() == want {
					t.Fatalf("\t%s\tTest %d:\tShould change the digest.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould change the digest.", success, testID)
			}
		}

		if base.ContentDigest() != want {
			t.Fatalf("\t%s\tShould keep the digest stable for unchanged contents.", failed)
		}
		t.Logf("\t%s\tShould keep the digest stable for unchanged contents.", success)
	}
}

func Test_ValidateTransactionsPosition(t *testing.T) {
	t.Log("Given the need to report the failing transaction's position.")
	{
		t.Logf("\tTest 0:\tWhen the second of three transactions is invalid.")
		{
			alice := newWallet(t)
			bob := newWallet(t)

			good := ledger.NewTx(alice.Address(), bob.Address(), 10)
			if err := good.Sign(alice); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to sign: %v", failed, err)
			}

			bad := ledger.NewTx(alice.Address(), bob.Address(), 20)

			coinbase := ledger.NewTxInNits(ledger.NetworkSender, bob.Address(), 50_000)

			block := ledger.NewBlock(2, []ledger.Tx{good, bad, coinbase}, signature.ZeroHash, bob.Address())

			err := block.ValidateTransactions()
			if !errors.Is(err, ledger.ErrUnsigned) {
				t.Fatalf("\t%s\tTest 0:\tShould get ErrUnsigned, got %v.", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould get ErrUnsigned.", success)

			if !strings.Contains(err.Error(), "transaction 1") {
				t.Fatalf("\t%s\tTest 0:\tShould name the failing position, got %q.", failed, err.Error())
			}
			t.Logf("\t%s\tTest 0:\tShould name the failing position.", success)
		}
	}
}
