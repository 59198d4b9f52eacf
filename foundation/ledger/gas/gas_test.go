package gas_test

import (
	"testing"

	"github.com/certchain/certledger/foundation/ledger/gas"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCostOf(t *testing.T) {
	type table struct {
		name string
		kind gas.OpKind
		cost uint64
	}

	tt := []table{
		{"register", gas.OpRegisterInstitution, 150_000},
		{"issue", gas.OpIssueCertificate, 100_000},
		{"verify", gas.OpVerifyCertificate, 21_000},
		{"transfer", gas.OpTransfer, 21_000},
		{"unknown", gas.OpKind("BURN"), 21_000},
	}

	t.Log("Given the need to validate the gas schedule.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen looking up the cost of %s.", testID, tst.name)
			{
				cost := gas.CostOf(tst.kind)
				if cost != tst.cost {
					t.Fatalf("\t%s\tTest %d:\tShould get the right cost: got %d exp %d", failed, testID, cost, tst.cost)
				}
				t.Logf("\t%s\tTest %d:\tShould get the right cost: %d", success, testID, cost)
			}
		}
	}
}

func TestCharged(t *testing.T) {
	type table struct {
		name    string
		kind    gas.OpKind
		limit   uint64
		charged uint64
	}

	tt := []table{
		{"limit above cost", gas.OpRegisterInstitution, 200_000, 150_000},
		{"limit equals cost", gas.OpIssueCertificate, 100_000, 100_000},
		{"limit below cost", gas.OpRegisterInstitution, 90_000, 90_000},
		{"limit of zero", gas.OpVerifyCertificate, 0, 0},
		{"unknown kind", gas.OpKind("BURN"), 50_000, 21_000},
	}

	t.Log("Given the need to validate charged gas.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen charging with %s.", testID, tst.name)
			{
				charged := gas.Charged(tst.kind, tst.limit)
				if charged != tst.charged {
					t.Fatalf("\t%s\tTest %d:\tShould charge min(limit, cost): got %d exp %d", failed, testID, charged, tst.charged)
				}
				t.Logf("\t%s\tTest %d:\tShould charge min(limit, cost): %d", success, testID, charged)

				if charged > tst.limit {
					t.Fatalf("\t%s\tTest %d:\tShould never charge above the limit.", failed, testID)
				}
				t.Logf("\t%s\tTest %d:\tShould never charge above the limit.", success, testID)
			}
		}
	}
}
