package ledgergrp

import (
	"github.com/certchain/certledger/foundation/ledger/chain"
	"github.com/certchain/certledger/foundation/ledger/gas"
)

// tx is the web representation of a ledger transaction.
type tx struct {
	Hash        string        `json:"hash"`
	From        string        `json:"from"`
	To          string        `json:"to"`
	Kind        gas.OpKind    `json:"kind"`
	Payload     chain.Payload `json:"payload"`
	GasLimit    uint64        `json:"gas_limit"`
	GasUsed     uint64        `json:"gas_used"`
	GasPrice    uint64        `json:"gas_price"`
	TimeStamp   uint64        `json:"timestamp"`
	BlockNumber uint64        `json:"block_number,omitempty"`
	Status      chain.Status  `json:"status"`
}

// block is the web representation of a sealed block.
type block struct {
	Hash          string `json:"hash"`
	Number        uint64 `json:"number"`
	PrevBlockHash string `json:"prev_block_hash"`
	TimeStamp     uint64 `json:"timestamp"`
	TotalGasUsed  uint64 `json:"total_gas_used"`
	GasLimit      uint64 `json:"gas_limit"`
	Transactions  []tx   `json:"transactions"`
}

func toTx(tran chain.Tx) tx {
	return tx{
		Hash:        tran.Hash,
		From:        tran.From,
		To:          tran.To,
		Kind:        tran.Kind,
		Payload:     tran.Payload,
		GasLimit:    tran.GasLimit,
		GasUsed:     tran.GasUsed,
		GasPrice:    tran.GasPrice,
		TimeStamp:   tran.TimeStamp,
		BlockNumber: tran.BlockNumber,
		Status:      tran.Status,
	}
}

func toBlock(blk chain.Block) block {
	trans := make([]tx, len(blk.Trans))
	for i, tran := range blk.Trans {
		trans[i] = toTx(tran)
	}

	return block{
		Hash:          blk.Hash,
		Number:        blk.Header.Number,
		PrevBlockHash: blk.Header.PrevBlockHash,
		TimeStamp:     blk.Header.TimeStamp,
		TotalGasUsed:  blk.Header.TotalGasUsed,
		GasLimit:      blk.Header.GasLimit,
		Transactions:  trans,
	}
}
