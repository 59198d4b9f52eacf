package address_test

import (
	"math/rand"
	"testing"

	"github.com/certchain/certledger/foundation/ledger/address"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func TestNewAddress(t *testing.T) {
	t.Log("Given the need to validate wallet address generation.")
	{
		t.Logf("\tTest 0:\tWhen generating with a fixed entropy source.")
		{
			g1 := address.New(rand.New(rand.NewSource(1)))
			g2 := address.New(rand.New(rand.NewSource(1)))

			a1, err := g1.NewAddress()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate an address: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to generate an address.", success)

			a2, err := g2.NewAddress()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to generate an address: %v", failed, err)
			}

			if a1 != a2 {
				t.Logf("\t%s\tTest 0:\tgot: %s", failed, a2)
				t.Logf("\t%s\tTest 0:\texp: %s", failed, a1)
				t.Fatalf("\t%s\tTest 0:\tShould generate deterministically from equal entropy.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould generate deterministically from equal entropy.", success)

			if len(a1) != 42 || a1[:2] != "0x" {
				t.Fatalf("\t%s\tTest 0:\tShould get a 0x prefixed 20 byte address: got %q", failed, a1)
			}
			t.Logf("\t%s\tTest 0:\tShould get a 0x prefixed 20 byte address.", success)
		}

		t.Logf("\tTest 1:\tWhen generating successive addresses.")
		{
			g := address.New(rand.New(rand.NewSource(1)))

			a1, err := g.NewAddress()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to generate an address: %v", failed, err)
			}

			a2, err := g.NewAddress()
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to generate an address: %v", failed, err)
			}

			if a1 == a2 {
				t.Fatalf("\t%s\tTest 1:\tShould generate unique addresses.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould generate unique addresses.", success)
		}
	}
}
