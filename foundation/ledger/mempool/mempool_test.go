package mempool_test

import (
	"testing"

	"github.com/certchain/certledger/foundation/ledger/mempool"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestPool(t *testing.T) {
	t.Log("Given the need to validate the pending pool.")
	{
		t.Logf("\tTest 0:\tWhen submitting and draining values.")
		{
			pool := mempool.New[string]()

			values := []string{"tx1", "tx2", "tx3", "tx4"}
			for _, v := range values {
				pool.Submit(v)
			}

			if pool.Count() != len(values) {
				t.Fatalf("\t%s\tTest 0:\tShould hold every submitted value: got %d exp %d", failed, pool.Count(), len(values))
			}
			t.Logf("\t%s\tTest 0:\tShould hold every submitted value.", success)

			cpy := pool.Copy()
			for i, v := range cpy {
				if v != values[i] {
					t.Fatalf("\t%s\tTest 0:\tShould copy in submission order: got %q exp %q", failed, v, values[i])
				}
			}
			t.Logf("\t%s\tTest 0:\tShould copy in submission order.", success)

			if pool.Count() != len(values) {
				t.Fatalf("\t%s\tTest 0:\tShould not drain on copy.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould not drain on copy.", success)

			drained := pool.DrainAll()
			for i, v := range drained {
				if v != values[i] {
					t.Fatalf("\t%s\tTest 0:\tShould drain in submission order: got %q exp %q", failed, v, values[i])
				}
			}
			t.Logf("\t%s\tTest 0:\tShould drain in submission order.", success)

			if pool.Count() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould be empty after a drain: got %d", failed, pool.Count())
			}
			t.Logf("\t%s\tTest 0:\tShould be empty after a drain.", success)
		}

		t.Logf("\tTest 1:\tWhen draining an empty pool.")
		{
			pool := mempool.New[int]()

			if drained := pool.DrainAll(); len(drained) != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould drain nothing: got %d", failed, len(drained))
			}
			t.Logf("\t%s\tTest 1:\tShould drain nothing.", success)
		}
	}
}
