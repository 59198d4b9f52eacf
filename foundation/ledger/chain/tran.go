package chain

import (
	"github.com/certchain/certledger/foundation/ledger/gas"
)

// Status represents the lifecycle state of a transaction. The transition
// from pending to confirmed is terminal and one way.
type Status string

// Set of transaction states.
const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
)

// =============================================================================

// Payload is the closed set of per operation payload variants carried by a
// transaction. The audit payload is the only open ended variant and keeps
// an explicit ordering so canonical hashing stays well defined.
type Payload interface {
	isPayload()
}

// InstitutionPayload carries the public fields of an institution
// registration.
type InstitutionPayload struct {
	Name           string `json:"name"`
	ContactAddress string `json:"contact_address"`
	Email          string `json:"email"`
}

// CertificatePayload carries the fields of a certificate issuance.
type CertificatePayload struct {
	CertificateHash string `json:"certificate_hash"`
	RecipientName   string `json:"recipient_name"`
	CourseName      string `json:"course_name"`
	CompletionDate  string `json:"completion_date"`
	Grade           string `json:"grade,omitempty"`
	InstitutionID   string `json:"institution_id"`
}

// VerifyPayload carries the target of a certificate verification audit.
type VerifyPayload struct {
	CertificateHash string `json:"certificate_hash"`
}

// AuditEntry is one key/value pair of a generic audit payload.
type AuditEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// AuditPayload is an ordered key/value mapping used for operations that
// carry no structured variant.
type AuditPayload []AuditEntry

func (InstitutionPayload) isPayload() {}
func (CertificatePayload) isPayload() {}
func (VerifyPayload) isPayload()      {}
func (AuditPayload) isPayload()       {}

// =============================================================================

// SubmitTx describes a transaction to be submitted to the pending pool.
type SubmitTx struct {
	From     string
	To       string
	Kind     gas.OpKind
	Payload  Payload
	GasLimit uint64
	GasPrice uint64
}

// Tx records one ledger operation. The hash is stable once assigned at
// submission. Status and BlockNumber are set together, exactly once, when
// the transaction is sealed into a block.
type Tx struct {
	Hash        string     `json:"hash"`
	Nonce       uint64     `json:"nonce"`
	From        string     `json:"from"`
	To          string     `json:"to"`
	Kind        gas.OpKind `json:"kind"`
	Payload     Payload    `json:"payload"`
	GasLimit    uint64     `json:"gas_limit"`
	GasUsed     uint64     `json:"gas_used"`
	GasPrice    uint64     `json:"gas_price"`
	TimeStamp   uint64     `json:"timestamp"`
	BlockNumber uint64     `json:"block_number"`
	Status      Status     `json:"status"`
}
