package chain_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/certchain/certledger/foundation/ledger/chain"
	"github.com/certchain/certledger/foundation/ledger/gas"
	"github.com/certchain/certledger/foundation/ledger/genesis"
	"github.com/certchain/certledger/foundation/ledger/hashing"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func newTestChain() *chain.Chain {
	clock := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	return chain.New(chain.Config{
		Genesis: genesis.Default(),
		Now:     func() time.Time { return clock },
	})
}

func submitVerify(c *chain.Chain, hash string) chain.Tx {
	return c.Submit(chain.SubmitTx{
		From:     "0x0000000000000000000000000000000000000000",
		To:       "0x0000000000000000000000000000000000000000",
		Kind:     gas.OpVerifyCertificate,
		Payload:  chain.VerifyPayload{CertificateHash: hash},
		GasLimit: 50_000,
		GasPrice: 20,
	})
}

func TestGenesis(t *testing.T) {
	t.Log("Given the need to validate the genesis state of a new chain.")
	{
		c := newTestChain()

		latest := c.Latest()
		if latest.Header.Number != 0 {
			t.Fatalf("\t%s\tShould start at block 0: got %d", failed, latest.Header.Number)
		}
		t.Logf("\t%s\tShould start at block 0.", success)

		if latest.Hash != hashing.ZeroHash {
			t.Fatalf("\t%s\tShould use the zero sentinel for the genesis hash: got %s", failed, latest.Hash)
		}
		t.Logf("\t%s\tShould use the zero sentinel for the genesis hash.", success)

		if latest.Header.PrevBlockHash != hashing.ZeroHash {
			t.Fatalf("\t%s\tShould use the zero sentinel for the genesis parent: got %s", failed, latest.Header.PrevBlockHash)
		}
		t.Logf("\t%s\tShould use the zero sentinel for the genesis parent.", success)

		if c.PendingCount() != 0 {
			t.Fatalf("\t%s\tShould start with an empty pool.", failed)
		}
		t.Logf("\t%s\tShould start with an empty pool.", success)
	}
}

func TestSeal(t *testing.T) {
	t.Log("Given the need to validate sealing the pending pool into a block.")
	{
		t.Logf("\tTest 0:\tWhen sealing a pool of transactions.")
		{
			c := newTestChain()

			tx1 := submitVerify(c, "0xaaa")
			tx2 := submitVerify(c, "0xbbb")

			if tx1.Status != chain.StatusPending || tx2.Status != chain.StatusPending {
				t.Fatalf("\t%s\tTest 0:\tShould submit transactions as pending.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould submit transactions as pending.", success)

			block, err := c.Seal()
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to seal a block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to seal a block.", success)

			if block.Header.Number != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould seal block number 1: got %d", failed, block.Header.Number)
			}
			t.Logf("\t%s\tTest 0:\tShould seal block number 1.", success)

			if c.PendingCount() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould drain the pool on seal.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould drain the pool on seal.", success)

			if len(block.Trans) != 2 || block.Trans[0].Hash != tx1.Hash || block.Trans[1].Hash != tx2.Hash {
				t.Fatalf("\t%s\tTest 0:\tShould keep pool order inside the block.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould keep pool order inside the block.", success)

			for _, tx := range block.Trans {
				if tx.Status != chain.StatusConfirmed {
					t.Fatalf("\t%s\tTest 0:\tShould confirm every sealed transaction.", failed)
				}
				if tx.BlockNumber != block.Header.Number {
					t.Fatalf("\t%s\tTest 0:\tShould set the block number on every sealed transaction.", failed)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould confirm every sealed transaction.", success)
			t.Logf("\t%s\tTest 0:\tShould set the block number on every sealed transaction.", success)

			var totalGas uint64
			for _, tx := range block.Trans {
				totalGas += tx.GasUsed
			}
			if block.Header.TotalGasUsed != totalGas {
				t.Fatalf("\t%s\tTest 0:\tShould sum the member gas: got %d exp %d", failed, block.Header.TotalGasUsed, totalGas)
			}
			t.Logf("\t%s\tTest 0:\tShould sum the member gas.", success)
		}

		t.Logf("\tTest 1:\tWhen sealing with an empty pool.")
		{
			c := newTestChain()

			if _, err := c.Seal(); !errors.Is(err, chain.ErrNoTransactions) {
				t.Fatalf("\t%s\tTest 1:\tShould get ErrNoTransactions: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould get ErrNoTransactions.", success)

			if c.Height() != 0 {
				t.Fatalf("\t%s\tTest 1:\tShould leave the chain unchanged.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould leave the chain unchanged.", success)
		}
	}
}

func TestHashChain(t *testing.T) {
	t.Log("Given the need to validate the hash chain across blocks.")
	{
		c := newTestChain()

		for i := 0; i < 5; i++ {
			submitVerify(c, "0xaaa")
			if _, err := c.Seal(); err != nil {
				t.Fatalf("\t%s\tShould be able to seal block %d: %v", failed, i+1, err)
			}
		}

		if c.Height() != 5 {
			t.Fatalf("\t%s\tShould have 5 sealed blocks: got %d", failed, c.Height())
		}
		t.Logf("\t%s\tShould have 5 sealed blocks.", success)

		for n := uint64(1); n <= c.Height(); n++ {
			block, err := c.BlockByNumber(n)
			if err != nil {
				t.Fatalf("\t%s\tShould find block %d: %v", failed, n, err)
			}

			parent, err := c.BlockByNumber(n - 1)
			if err != nil {
				t.Fatalf("\t%s\tShould find block %d: %v", failed, n-1, err)
			}

			if block.Header.PrevBlockHash != parent.Hash {
				t.Logf("\t%s\tgot: %s", failed, block.Header.PrevBlockHash)
				t.Logf("\t%s\texp: %s", failed, parent.Hash)
				t.Fatalf("\t%s\tShould link block %d to its parent hash.", failed, n)
			}
		}
		t.Logf("\t%s\tShould link every block to its parent hash.", success)
	}
}

func TestCommit(t *testing.T) {
	t.Log("Given the need to validate atomic submit and seal.")
	{
		c := newTestChain()

		tx, block, err := c.Commit(chain.SubmitTx{
			From:     "0xissuer",
			To:       "0x0000000000000000000000000000000000000000",
			Kind:     gas.OpRegisterInstitution,
			Payload:  chain.InstitutionPayload{Name: "Acme U", ContactAddress: "1 Acme Way", Email: "admin@acme.edu"},
			GasLimit: 200_000,
			GasPrice: 20,
		})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to commit: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to commit.", success)

		if tx.GasUsed != 150_000 {
			t.Fatalf("\t%s\tShould charge min(limit, cost): got %d exp %d", failed, tx.GasUsed, 150_000)
		}
		t.Logf("\t%s\tShould charge min(limit, cost).", success)

		if tx.Status != chain.StatusConfirmed || tx.BlockNumber != block.Header.Number {
			t.Fatalf("\t%s\tShould return the confirmed transaction copy.", failed)
		}
		t.Logf("\t%s\tShould return the confirmed transaction copy.", success)

		if len(block.Trans) != 1 {
			t.Fatalf("\t%s\tShould seal exactly the committed transaction: got %d", failed, len(block.Trans))
		}
		t.Logf("\t%s\tShould seal exactly the committed transaction.", success)
	}
}

func TestSnapshot(t *testing.T) {
	t.Log("Given the need to validate snapshot consistency under concurrent submits.")
	{
		c := newTestChain()

		submitVerify(c, "0xaaa")
		if _, err := c.Seal(); err != nil {
			t.Fatalf("\t%s\tShould be able to seal: %v", failed, err)
		}

		// One sealed transaction exists. Submits keep landing while the
		// snapshot is read in a loop, the confirmed count must never move
		// off the sealed total.
		done := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					submitVerify(c, "0xbbb")
				}
			}
		}()

		for i := 0; i < 1_000; i++ {
			snap := c.Snapshot()
			if snap.Confirmed != 1 {
				close(done)
				wg.Wait()
				t.Fatalf("\t%s\tShould never count a pending transaction as confirmed: got %d pending %d", failed, snap.Confirmed, snap.Pending)
			}
			if snap.Latest.Header.Number != 1 {
				close(done)
				wg.Wait()
				t.Fatalf("\t%s\tShould keep the latest block stable: got %d", failed, snap.Latest.Header.Number)
			}
		}
		close(done)
		wg.Wait()
		t.Logf("\t%s\tShould never count a pending transaction as confirmed.", success)
		t.Logf("\t%s\tShould keep the latest block stable.", success)

		snap := c.Snapshot()
		if snap.TotalGasUsed != 21_000 {
			t.Fatalf("\t%s\tShould sum gas over sealed blocks only: got %d", failed, snap.TotalGasUsed)
		}
		t.Logf("\t%s\tShould sum gas over sealed blocks only.", success)
	}
}

func TestConcurrentCommit(t *testing.T) {
	t.Log("Given the need to validate commits racing on the same chain.")
	{
		c := newTestChain()

		const goroutines = 50

		hashes := make(chan string, goroutines)
		var wg sync.WaitGroup
		wg.Add(goroutines)
		for i := 0; i < goroutines; i++ {
			go func() {
				defer wg.Done()
				tx, _, err := c.Commit(chain.SubmitTx{
					From:     "0x0000000000000000000000000000000000000000",
					To:       "0x0000000000000000000000000000000000000000",
					Kind:     gas.OpVerifyCertificate,
					Payload:  chain.VerifyPayload{CertificateHash: "0xaaa"},
					GasLimit: 50_000,
					GasPrice: 20,
				})
				if err != nil {
					t.Errorf("commit: %v", err)
					return
				}
				hashes <- tx.Hash
			}()
		}
		wg.Wait()
		close(hashes)

		if c.PendingCount() != 0 {
			t.Fatalf("\t%s\tShould leave the pool empty: got %d", failed, c.PendingCount())
		}
		t.Logf("\t%s\tShould leave the pool empty.", success)

		sealed := make(map[string]int)
		for n := uint64(1); n <= c.Height(); n++ {
			block, err := c.BlockByNumber(n)
			if err != nil {
				t.Fatalf("\t%s\tShould find block %d: %v", failed, n, err)
			}
			for _, tx := range block.Trans {
				sealed[tx.Hash]++
			}
		}

		count := 0
		for hash := range hashes {
			count++
			if sealed[hash] != 1 {
				t.Fatalf("\t%s\tShould seal every transaction into exactly one block: tx[%s] sealed %d times", failed, hash, sealed[hash])
			}
		}
		if count != goroutines || len(sealed) != goroutines {
			t.Fatalf("\t%s\tShould seal every transaction into exactly one block: got %d sealed exp %d", failed, len(sealed), goroutines)
		}
		t.Logf("\t%s\tShould seal every transaction into exactly one block.", success)
	}
}

func TestQueries(t *testing.T) {
	t.Log("Given the need to validate chain queries.")
	{
		c := newTestChain()

		sealed := submitVerify(c, "0xaaa")
		if _, err := c.Seal(); err != nil {
			t.Fatalf("\t%s\tShould be able to seal: %v", failed, err)
		}
		pending := submitVerify(c, "0xbbb")

		t.Logf("\tTest 0:\tWhen listing all transactions.")
		{
			all := c.AllTransactions()
			if len(all) != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould list sealed and pending transactions: got %d", failed, len(all))
			}
			t.Logf("\t%s\tTest 0:\tShould list sealed and pending transactions.", success)

			if all[0].Hash != sealed.Hash || all[1].Hash != pending.Hash {
				t.Fatalf("\t%s\tTest 0:\tShould order chain transactions before pending.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould order chain transactions before pending.", success)

			if all[0].Status != chain.StatusConfirmed || all[1].Status != chain.StatusPending {
				t.Fatalf("\t%s\tTest 0:\tShould report the right statuses.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould report the right statuses.", success)
		}

		t.Logf("\tTest 1:\tWhen looking up transactions by hash.")
		{
			tx, err := c.TransactionByHash(sealed.Hash)
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould find a sealed transaction: %v", failed, err)
			}
			if tx.Status != chain.StatusConfirmed {
				t.Fatalf("\t%s\tTest 1:\tShould find the confirmed copy.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould find a sealed transaction.", success)

			if _, err := c.TransactionByHash(pending.Hash); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould find a pending transaction: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould find a pending transaction.", success)

			if _, err := c.TransactionByHash("0xmissing"); !errors.Is(err, chain.ErrNotFound) {
				t.Fatalf("\t%s\tTest 1:\tShould get ErrNotFound for an unknown hash: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould get ErrNotFound for an unknown hash.", success)
		}

		t.Logf("\tTest 2:\tWhen looking up blocks by number.")
		{
			if _, err := c.BlockByNumber(1); err != nil {
				t.Fatalf("\t%s\tTest 2:\tShould find block 1: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould find block 1.", success)

			if _, err := c.BlockByNumber(99); !errors.Is(err, chain.ErrNotFound) {
				t.Fatalf("\t%s\tTest 2:\tShould get ErrNotFound for an unknown number: got %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould get ErrNotFound for an unknown number.", success)
		}
	}
}
