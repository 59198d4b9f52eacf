// Package chain implements the in-memory, append-only chain of blocks at
// the heart of the ledger simulator. Sealing is deterministic and single
// party, there is no proof of work and no peer network.
package chain

import (
	"errors"
	"sync"
	"time"

	"github.com/certchain/certledger/foundation/ledger/gas"
	"github.com/certchain/certledger/foundation/ledger/genesis"
	"github.com/certchain/certledger/foundation/ledger/hashing"
	"github.com/certchain/certledger/foundation/ledger/mempool"
)

// ErrNoTransactions is returned when a seal is requested and the pending
// pool is empty. The chain is unchanged, this is a normal outcome.
var ErrNoTransactions = errors.New("no transactions in mempool")

// ErrNotFound is returned when a block or transaction lookup misses.
var ErrNotFound = errors.New("not found")

// EventHandler defines a function that is called when events occur in the
// processing of transactions and blocks.
type EventHandler func(v string, args ...any)

// =============================================================================

// Config represents the dependencies required to construct a chain.
type Config struct {
	Genesis   genesis.Genesis
	Now       func() time.Time
	EvHandler EventHandler
}

// Chain owns the ordered sequence of blocks and the pending pool. All
// mutating operations execute under one exclusive critical section so a
// submit followed by a seal is atomic from the caller's perspective and no
// transaction is ever lost or sealed twice.
type Chain struct {
	genesis genesis.Genesis
	now     func() time.Time
	ev      EventHandler

	mu     sync.RWMutex
	blocks []Block
	pool   *mempool.Pool[Tx]
	nonce  uint64
}

// New constructs a chain holding only the genesis block. The chain does not
// persist, it is process lifetime state reconstructed as genesis-only on
// restart.
func New(cfg Config) *Chain {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	ev := cfg.EvHandler
	if ev == nil {
		ev = func(v string, args ...any) {}
	}

	c := Chain{
		genesis: cfg.Genesis,
		now:     now,
		ev:      ev,
		pool:    mempool.New[Tx](),
	}
	c.blocks = append(c.blocks, newGenesisBlock(c.timeStamp(), cfg.Genesis.BlockGasLimit))

	return &c
}

// Submit adds a transaction to the pending pool. The transaction is
// assigned its hash, timestamp and charged gas at this point.
func (c *Chain) Submit(st SubmitTx) Tx {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.submit(st)
}

// Seal drains the pending pool into the next block. If the pool is empty
// ErrNoTransactions is returned and the chain is unchanged.
func (c *Chain) Seal() (Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.seal()
}

// Commit submits a transaction and immediately seals it, with any other
// pending transactions, into the next block. Both steps run under a single
// critical section. The returned transaction is the confirmed copy.
func (c *Chain) Commit(st SubmitTx) (Tx, Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx := c.submit(st)

	block, err := c.seal()
	if err != nil {
		return Tx{}, Block{}, err
	}

	for _, sealed := range block.Trans {
		if sealed.Hash == tx.Hash {
			return sealed, block, nil
		}
	}

	// The seal drains everything that is pending, including the
	// transaction submitted above, so this cannot be reached.
	return Tx{}, Block{}, ErrNotFound
}

// =============================================================================

// Latest returns the most recently appended block, genesis if no block has
// been sealed yet.
func (c *Chain) Latest() Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1]
}

// BlockByNumber returns the block with the specified number.
func (c *Chain) BlockByNumber(number uint64) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if number >= uint64(len(c.blocks)) {
		return Block{}, ErrNotFound
	}

	return c.blocks[number], nil
}

// Height returns the number of the latest block.
func (c *Chain) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1].Header.Number
}

// AllTransactions returns every transaction in block order from block 0
// upward, each block's transactions in their sealed order, followed by any
// still pending transactions.
func (c *Chain) AllTransactions() []Tx {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Tx
	for _, block := range c.blocks {
		out = append(out, block.Trans...)
	}

	return append(out, c.pool.Copy()...)
}

// TransactionByHash returns the transaction with the specified hash,
// searching sealed blocks first and then the pending pool.
func (c *Chain) TransactionByHash(hash string) (Tx, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, block := range c.blocks {
		for _, tx := range block.Trans {
			if tx.Hash == hash {
				return tx, nil
			}
		}
	}

	for _, tx := range c.pool.Copy() {
		if tx.Hash == hash {
			return tx, nil
		}
	}

	return Tx{}, ErrNotFound
}

// Stats is a point in time snapshot of the chain taken under a single
// read lock, so the counts are mutually consistent.
type Stats struct {
	Latest       Block
	Pending      int
	Confirmed    int
	TotalGasUsed uint64
}

// Snapshot returns the latest block, the pending and confirmed transaction
// counts and the total gas used, all observed at the same instant.
func (c *Chain) Snapshot() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var confirmed int
	var totalGasUsed uint64
	for _, block := range c.blocks {
		confirmed += len(block.Trans)
		totalGasUsed += block.Header.TotalGasUsed
	}

	return Stats{
		Latest:       c.blocks[len(c.blocks)-1],
		Pending:      c.pool.Count(),
		Confirmed:    confirmed,
		TotalGasUsed: totalGasUsed,
	}
}

// PendingCount returns the current number of pending transactions.
func (c *Chain) PendingCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pool.Count()
}

// Name returns the chain name from the genesis parameters.
func (c *Chain) Name() string {
	return c.genesis.ChainName
}

// GasPrice returns the fixed gas price from the genesis parameters.
func (c *Chain) GasPrice() uint64 {
	return c.genesis.GasPrice
}

// =============================================================================

// submit builds the transaction and adds it to the pool. The caller must
// hold the chain mutex.
func (c *Chain) submit(st SubmitTx) Tx {
	c.nonce++

	tx := Tx{
		Nonce:     c.nonce,
		From:      st.From,
		To:        st.To,
		Kind:      st.Kind,
		Payload:   st.Payload,
		GasLimit:  st.GasLimit,
		GasUsed:   gas.Charged(st.Kind, st.GasLimit),
		GasPrice:  st.GasPrice,
		TimeStamp: c.timeStamp(),
		Status:    StatusPending,
	}
	tx.Hash = hashing.Hash(struct {
		Nonce     uint64     `json:"nonce"`
		From      string     `json:"from"`
		To        string     `json:"to"`
		Kind      gas.OpKind `json:"kind"`
		Payload   Payload    `json:"payload"`
		GasLimit  uint64     `json:"gas_limit"`
		GasPrice  uint64     `json:"gas_price"`
		TimeStamp uint64     `json:"timestamp"`
	}{
		Nonce:     tx.Nonce,
		From:      tx.From,
		To:        tx.To,
		Kind:      tx.Kind,
		Payload:   tx.Payload,
		GasLimit:  tx.GasLimit,
		GasPrice:  tx.GasPrice,
		TimeStamp: tx.TimeStamp,
	})

	c.pool.Submit(tx)
	c.ev("chain: submit: tx[%s] kind[%s] pending[%d]", tx.Hash, tx.Kind, c.pool.Count())

	return tx
}

// seal drains the pool and appends the next block. The caller must hold the
// chain mutex.
func (c *Chain) seal() (Block, error) {
	trans := c.pool.DrainAll()
	if len(trans) == 0 {
		return Block{}, ErrNoTransactions
	}

	prev := c.blocks[len(c.blocks)-1]
	number := prev.Header.Number + 1

	for i := range trans {
		trans[i].Status = StatusConfirmed
		trans[i].BlockNumber = number
	}

	block := newBlock(prev, trans, c.timeStamp(), c.genesis.BlockGasLimit)
	c.blocks = append(c.blocks, block)

	c.ev("chain: seal: block[%d] hash[%s] txs[%d] gas[%d]", block.Header.Number, block.Hash, len(block.Trans), block.Header.TotalGasUsed)

	return block, nil
}

func (c *Chain) timeStamp() uint64 {
	return uint64(c.now().UTC().Unix())
}
