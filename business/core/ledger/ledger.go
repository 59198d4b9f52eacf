// Package ledger implements the certificate ledger service. It owns the
// institution and certificate records in the durable store and drives the
// chain for every mutating operation.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/certchain/certledger/foundation/docstore"
	"github.com/certchain/certledger/foundation/ledger/address"
	"github.com/certchain/certledger/foundation/ledger/chain"
	"github.com/certchain/certledger/foundation/ledger/gas"
	"github.com/certchain/certledger/foundation/ledger/hashing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an institution, certificate, block or
// transaction lookup misses.
var ErrNotFound = errors.New("not found")

// Collections in the durable store.
const (
	colInstitutions = "institutions"
	colCertificates = "certificates"
)

// systemAddress is the recipient for ledger bookkeeping transactions.
const systemAddress = "0x0000000000000000000000000000000000000000"

// Default gas limits supplied for the ledger's own operations.
const (
	registerGasLimit uint64 = 200_000
	issueGasLimit    uint64 = 150_000
	verifyGasLimit   uint64 = 50_000
)

// =============================================================================

// Config represents the dependencies required to construct the core.
type Config struct {
	Log       *zap.SugaredLogger
	Chain     *chain.Chain
	Addresses *address.Generator
	Store     docstore.Store
	Now       func() time.Time
}

// Core manages the set of APIs for certificate ledger access.
type Core struct {
	log       *zap.SugaredLogger
	chain     *chain.Chain
	addresses *address.Generator
	store     docstore.Store
	now       func() time.Time
	gasPrice  uint64
	chainName string
}

// NewCore constructs a core for certificate ledger access.
func NewCore(cfg Config) *Core {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Core{
		log:       cfg.Log,
		chain:     cfg.Chain,
		addresses: cfg.Addresses,
		store:     cfg.Store,
		now:       now,
		gasPrice:  cfg.Chain.GasPrice(),
		chainName: cfg.Chain.Name(),
	}
}

// =============================================================================

// RegisterInstitution assigns a wallet address to the institution, persists
// the record, and seals a registration transaction into a new block.
func (c *Core) RegisterInstitution(ctx context.Context, ni NewInstitution) (RegisterResult, error) {
	wallet, err := c.addresses.NewAddress()
	if err != nil {
		return RegisterResult{}, fmt.Errorf("generating wallet address: %w", err)
	}

	inst := Institution{
		ID:             uuid.NewString(),
		Name:           ni.Name,
		ContactAddress: ni.ContactAddress,
		Email:          ni.Email,
		WalletAddress:  wallet,
		RegisteredAt:   c.now().UTC(),
	}

	// Persist before the chain is advanced so a store failure never
	// leaves a sealed block referencing a record that does not exist.
	if err := c.store.Put(ctx, colInstitutions, inst.ID, inst); err != nil {
		return RegisterResult{}, fmt.Errorf("persisting institution: %w", err)
	}

	tx, block, err := c.chain.Commit(chain.SubmitTx{
		From: wallet,
		To:   systemAddress,
		Kind: gas.OpRegisterInstitution,
		Payload: chain.InstitutionPayload{
			Name:           inst.Name,
			ContactAddress: inst.ContactAddress,
			Email:          inst.Email,
		},
		GasLimit: registerGasLimit,
		GasPrice: c.gasPrice,
	})
	if err != nil {
		return RegisterResult{}, fmt.Errorf("sealing registration: %w", err)
	}

	c.log.Infow("institution registered", "institution", inst.ID, "wallet", wallet, "tx", tx.Hash, "block", block.Header.Number)

	return RegisterResult{
		Institution: inst,
		TxHash:      tx.Hash,
		BlockNumber: block.Header.Number,
		GasUsed:     tx.GasUsed,
	}, nil
}

// IssueCertificate computes the certificate's canonical hash, persists the
// record, seals an issuance transaction and backfills the sealed block
// number into the record. The grade is metadata, it is excluded from the
// hash.
func (c *Core) IssueCertificate(ctx context.Context, nc NewCertificate) (IssueResult, error) {
	var inst Institution
	if err := c.store.Get(ctx, colInstitutions, nc.InstitutionID, &inst); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return IssueResult{}, fmt.Errorf("institution %q: %w", nc.InstitutionID, ErrNotFound)
		}
		return IssueResult{}, fmt.Errorf("reading institution: %w", err)
	}

	certHash := CertificateHash(nc.RecipientName, nc.CourseName, nc.CompletionDate, nc.InstitutionID)

	// Identical identity fields collide on the same hash. The source
	// system silently overwrites, that behavior is preserved here.
	var existing Certificate
	if err := c.store.Get(ctx, colCertificates, certHash, &existing); err == nil {
		c.log.Warnw("duplicate certificate issuance, overwriting", "hash", certHash, "previous", existing.ID)
	}

	cert := Certificate{
		ID:              uuid.NewString(),
		Hash:            certHash,
		RecipientName:   nc.RecipientName,
		CourseName:      nc.CourseName,
		CompletionDate:  nc.CompletionDate,
		Grade:           nc.Grade,
		InstitutionID:   inst.ID,
		InstitutionName: inst.Name,
		IssuedAt:        c.now().UTC(),
	}

	if err := c.store.Put(ctx, colCertificates, cert.Hash, cert); err != nil {
		return IssueResult{}, fmt.Errorf("persisting certificate: %w", err)
	}

	tx, block, err := c.chain.Commit(chain.SubmitTx{
		From: nc.IssuerWallet,
		To:   inst.WalletAddress,
		Kind: gas.OpIssueCertificate,
		Payload: chain.CertificatePayload{
			CertificateHash: cert.Hash,
			RecipientName:   cert.RecipientName,
			CourseName:      cert.CourseName,
			CompletionDate:  cert.CompletionDate,
			Grade:           cert.Grade,
			InstitutionID:   cert.InstitutionID,
		},
		GasLimit: issueGasLimit,
		GasPrice: c.gasPrice,
	})
	if err != nil {
		return IssueResult{}, fmt.Errorf("sealing issuance: %w", err)
	}

	// Backfill the sealing details into the durable record.
	cert.TxHash = tx.Hash
	cert.BlockNumber = block.Header.Number
	if err := c.store.Put(ctx, colCertificates, cert.Hash, cert); err != nil {
		return IssueResult{}, fmt.Errorf("backfilling certificate block number: %w", err)
	}

	c.log.Infow("certificate issued", "certificate", cert.ID, "hash", cert.Hash, "tx", tx.Hash, "block", block.Header.Number)

	return IssueResult{
		Certificate: cert,
		TxHash:      tx.Hash,
		BlockNumber: block.Header.Number,
		GasUsed:     tx.GasUsed,
	}, nil
}

// VerifyCertificate re-confirms the certificate exists and records an audit
// transaction in a new block. Every verification mutates chain state, that
// audit trail is deliberate. The certificate record is never changed.
func (c *Core) VerifyCertificate(ctx context.Context, certHash string) (VerifyResult, error) {
	var cert Certificate
	if err := c.store.Get(ctx, colCertificates, certHash, &cert); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return VerifyResult{}, fmt.Errorf("certificate %q: %w", certHash, ErrNotFound)
		}
		return VerifyResult{}, fmt.Errorf("reading certificate: %w", err)
	}

	tx, block, err := c.chain.Commit(chain.SubmitTx{
		From: systemAddress,
		To:   systemAddress,
		Kind: gas.OpVerifyCertificate,
		Payload: chain.VerifyPayload{
			CertificateHash: cert.Hash,
		},
		GasLimit: verifyGasLimit,
		GasPrice: c.gasPrice,
	})
	if err != nil {
		return VerifyResult{}, fmt.Errorf("sealing verification: %w", err)
	}

	c.log.Infow("certificate verified", "hash", cert.Hash, "tx", tx.Hash, "block", block.Header.Number)

	return VerifyResult{
		Certificate: cert,
		Verified:    true,
		TxHash:      tx.Hash,
		BlockNumber: block.Header.Number,
	}, nil
}

// =============================================================================

// QueryInstitutions returns all registered institutions.
func (c *Core) QueryInstitutions(ctx context.Context) ([]Institution, error) {
	docs, err := c.store.ListAll(ctx, colInstitutions)
	if err != nil {
		return nil, fmt.Errorf("listing institutions: %w", err)
	}

	institutions := make([]Institution, 0, len(docs))
	for _, doc := range docs {
		var inst Institution
		if err := json.Unmarshal(doc, &inst); err != nil {
			return nil, fmt.Errorf("decoding institution: %w", err)
		}
		institutions = append(institutions, inst)
	}

	return institutions, nil
}

// QueryCertificates returns all issued certificates.
func (c *Core) QueryCertificates(ctx context.Context) ([]Certificate, error) {
	docs, err := c.store.ListAll(ctx, colCertificates)
	if err != nil {
		return nil, fmt.Errorf("listing certificates: %w", err)
	}

	certificates := make([]Certificate, 0, len(docs))
	for _, doc := range docs {
		var cert Certificate
		if err := json.Unmarshal(doc, &cert); err != nil {
			return nil, fmt.Errorf("decoding certificate: %w", err)
		}
		certificates = append(certificates, cert)
	}

	return certificates, nil
}

// QueryLatestBlock returns the most recently sealed block.
func (c *Core) QueryLatestBlock() chain.Block {
	return c.chain.Latest()
}

// QueryBlockByNumber returns the block with the specified number.
func (c *Core) QueryBlockByNumber(number uint64) (chain.Block, error) {
	block, err := c.chain.BlockByNumber(number)
	if err != nil {
		return chain.Block{}, fmt.Errorf("block %d: %w", number, ErrNotFound)
	}

	return block, nil
}

// QueryTransactions returns every transaction in chain order followed by
// the pending pool.
func (c *Core) QueryTransactions() []chain.Tx {
	return c.chain.AllTransactions()
}

// QueryTransactionByHash returns the transaction with the specified hash.
func (c *Core) QueryTransactionByHash(hash string) (chain.Tx, error) {
	tx, err := c.chain.TransactionByHash(hash)
	if err != nil {
		return chain.Tx{}, fmt.Errorf("transaction %q: %w", hash, ErrNotFound)
	}

	return tx, nil
}

// QueryStats returns a snapshot of the ledger.
func (c *Core) QueryStats(ctx context.Context) (Stats, error) {
	institutions, err := c.store.ListAll(ctx, colInstitutions)
	if err != nil {
		return Stats{}, fmt.Errorf("listing institutions: %w", err)
	}

	certificates, err := c.store.ListAll(ctx, colCertificates)
	if err != nil {
		return Stats{}, fmt.Errorf("listing certificates: %w", err)
	}

	// A single snapshot keeps the counts mutually consistent while
	// submits and seals land concurrently.
	snap := c.chain.Snapshot()

	return Stats{
		ChainName:         c.chainName,
		LatestBlockNumber: snap.Latest.Header.Number,
		LatestBlockHash:   snap.Latest.Hash,
		TotalBlocks:       snap.Latest.Header.Number + 1,
		TotalTransactions: snap.Confirmed,
		PendingCount:      snap.Pending,
		TotalGasUsed:      snap.TotalGasUsed,
		Institutions:      len(institutions),
		Certificates:      len(certificates),
	}, nil
}

// =============================================================================

// CertificateHash computes the canonical identity hash of a certificate.
// Field order cannot affect the result, the hash function canonicalizes
// its input.
func CertificateHash(recipientName, courseName, completionDate, institutionID string) string {
	return hashing.Hash(map[string]string{
		"recipient_name":  recipientName,
		"course_name":     courseName,
		"completion_date": completionDate,
		"institution_id":  institutionID,
	})
}
