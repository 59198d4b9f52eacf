package ledger

import (
	"time"
)

// Institution represents an issuing institution registered on the ledger.
// Verified is reserved, no current operation flips it.
type Institution struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ContactAddress string    `json:"contact_address"`
	Email          string    `json:"email"`
	WalletAddress  string    `json:"wallet_address"`
	Verified       bool      `json:"verified"`
	RegisteredAt   time.Time `json:"registered_at"`
}

// NewInstitution contains the information needed to register an institution.
type NewInstitution struct {
	Name           string
	ContactAddress string
	Email          string
}

// Certificate represents an issued certificate. The hash is the canonical
// identity, computed over the recipient name, course name, completion date
// and institution id. Certificates are immutable once issued.
type Certificate struct {
	ID              string    `json:"id"`
	Hash            string    `json:"hash"`
	RecipientName   string    `json:"recipient_name"`
	CourseName      string    `json:"course_name"`
	CompletionDate  string    `json:"completion_date"`
	Grade           string    `json:"grade,omitempty"`
	InstitutionID   string    `json:"institution_id"`
	InstitutionName string    `json:"institution_name"`
	TxHash          string    `json:"tx_hash"`
	BlockNumber     uint64    `json:"block_number"`
	IssuedAt        time.Time `json:"issued_at"`
}

// NewCertificate contains the information needed to issue a certificate.
type NewCertificate struct {
	RecipientName  string
	CourseName     string
	CompletionDate string
	Grade          string
	InstitutionID  string
	IssuerWallet   string
}

// =============================================================================

// RegisterResult is returned from a successful institution registration.
type RegisterResult struct {
	Institution Institution
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
}

// IssueResult is returned from a successful certificate issuance.
type IssueResult struct {
	Certificate Certificate
	TxHash      string
	BlockNumber uint64
	GasUsed     uint64
}

// VerifyResult is returned from a successful certificate verification. The
// certificate record itself is never mutated by a verification, the audit
// transaction is the only state change.
type VerifyResult struct {
	Certificate Certificate
	Verified    bool
	TxHash      string
	BlockNumber uint64
}

// Stats is a point in time snapshot of the ledger.
type Stats struct {
	ChainName         string `json:"chain_name"`
	LatestBlockNumber uint64 `json:"latest_block_number"`
	LatestBlockHash   string `json:"latest_block_hash"`
	TotalBlocks       uint64 `json:"total_blocks"`
	TotalTransactions int    `json:"total_transactions"`
	PendingCount      int    `json:"pending_count"`
	TotalGasUsed      uint64 `json:"total_gas_used"`
	Institutions      int    `json:"institutions"`
	Certificates      int    `json:"certificates"`
}
