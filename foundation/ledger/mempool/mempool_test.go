package mempool_test

import (
	"testing"

	"github.com/nitechain/nitechain/foundation/ledger/mempool"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_OrderAndDrain(t *testing.T) {
	t.Log("Given the need to keep pending transactions in submission order.")
	{
		t.Logf("\tTest 0:\tWhen adding and draining a set of transactions.")
		{
			mp := mempool.New[string]()

			input := []string{"tx1", "tx2", "tx3", "tx4"}
			for i, tx := range input {
				if count := mp.Add(tx); count != i+1 {
					t.Fatalf("\t%s\tTest 0:\tShould report pool size %d after add, got %d.", failed, i+1, count)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould report the pool size after each add.", success)

			cp := mp.Copy()
			for i := range input {
				if cp[i] != input[i] {
					t.Fatalf("\t%s\tTest 0:\tShould copy in submission order, got %v.", failed, cp)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould copy in submission order.", success)

			cp[0] = "mutated"
			if mp.Copy()[0] != "tx1" {
				t.Fatalf("\t%s\tTest 0:\tShould not share the copy with the pool.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not share the copy with the pool.", success)

			drained := mp.Drain()
			if len(drained) != len(input) || drained[3] != "tx4" {
				t.Fatalf("\t%s\tTest 0:\tShould drain everything in order, got %v.", failed, drained)
			}
			t.Logf("\t%s\tTest 0:\tShould drain everything in order.", success)

			if mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould be empty after drain, got %d.", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould be empty after drain.", success)
		}

		t.Logf("\tTest 1:\tWhen truncating the pool.")
		{
			mp := mempool.New[string]()
			mp.Add("tx1")
			mp.Truncate()

			if mp.Count() != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould be empty after truncate, got %d.", failed, mp.Count())
			}
			t.Logf("\t%s\tTest 1:\tShould be empty after truncate.", success)
		}
	}
}
