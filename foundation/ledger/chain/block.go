package chain

import (
	"github.com/certchain/certledger/foundation/ledger/hashing"
)

// BlockHeader represents common information recorded for each block.
type BlockHeader struct {
	Number        uint64 `json:"number"`          // Block number in the chain, 0 for genesis.
	PrevBlockHash string `json:"prev_block_hash"` // Hash of the previous block in the chain.
	TimeStamp     uint64 `json:"timestamp"`       // Time the block was sealed.
	TotalGasUsed  uint64 `json:"total_gas_used"`  // Sum of gas used by the member transactions.
	GasLimit      uint64 `json:"gas_limit"`       // Advisory capacity ceiling, never enforced.
}

// Block is an immutable, ordered container of confirmed transactions. Once
// appended to the chain none of its fields change.
type Block struct {
	Hash   string      `json:"hash"`
	Header BlockHeader `json:"header"`
	Trans  []Tx        `json:"txs"`
}

// newGenesisBlock constructs block 0. Its hash and parent hash are the zero
// sentinel, not values derived by the hash function.
func newGenesisBlock(timeStamp uint64, gasLimit uint64) Block {
	return Block{
		Hash: hashing.ZeroHash,
		Header: BlockHeader{
			Number:        0,
			PrevBlockHash: hashing.ZeroHash,
			TimeStamp:     timeStamp,
			GasLimit:      gasLimit,
		},
	}
}

// newBlock seals the specified transactions into the block following prev.
// The transactions must already be confirmed with this block's number.
func newBlock(prev Block, trans []Tx, timeStamp uint64, gasLimit uint64) Block {
	var totalGasUsed uint64
	for _, tx := range trans {
		totalGasUsed += tx.GasUsed
	}

	header := BlockHeader{
		Number:        prev.Header.Number + 1,
		PrevBlockHash: prev.Hash,
		TimeStamp:     timeStamp,
		TotalGasUsed:  totalGasUsed,
		GasLimit:      gasLimit,
	}

	hash := hashing.Hash(struct {
		Number        uint64 `json:"number"`
		PrevBlockHash string `json:"prev_block_hash"`
		Trans         []Tx   `json:"txs"`
		TimeStamp     uint64 `json:"timestamp"`
	}{
		Number:        header.Number,
		PrevBlockHash: header.PrevBlockHash,
		Trans:         trans,
		TimeStamp:     timeStamp,
	})

	return Block{
		Hash:   hash,
		Header: header,
		Trans:  trans,
	}
}
