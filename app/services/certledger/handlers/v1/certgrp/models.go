package certgrp

// AppNewInstitution is what a caller provides to register an institution.
type AppNewInstitution struct {
	Name           string `json:"name" validate:"required"`
	ContactAddress string `json:"contact_address" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
}

// AppRegisterResult is the response from a successful registration.
type AppRegisterResult struct {
	InstitutionID string `json:"institution_id"`
	WalletAddress string `json:"wallet_address"`
	TxHash        string `json:"tx_hash"`
	BlockNumber   uint64 `json:"block_number"`
	GasUsed       uint64 `json:"gas_used"`
}

// AppNewCertificate is what a caller provides to issue a certificate.
type AppNewCertificate struct {
	RecipientName  string `json:"recipient_name" validate:"required"`
	CourseName     string `json:"course_name" validate:"required"`
	CompletionDate string `json:"completion_date" validate:"required"`
	Grade          string `json:"grade"`
	InstitutionID  string `json:"institution_id" validate:"required"`
	IssuerWallet   string `json:"issuer_wallet" validate:"required"`
}

// AppIssueResult is the response from a successful issuance.
type AppIssueResult struct {
	CertificateID   string `json:"certificate_id"`
	CertificateHash string `json:"certificate_hash"`
	TxHash          string `json:"tx_hash"`
	BlockNumber     uint64 `json:"block_number"`
	GasUsed         uint64 `json:"gas_used"`
}

// AppVerifyResult is the response from a successful verification.
type AppVerifyResult struct {
	Verified        bool   `json:"verified"`
	CertificateHash string `json:"certificate_hash"`
	RecipientName   string `json:"recipient_name"`
	CourseName      string `json:"course_name"`
	CompletionDate  string `json:"completion_date"`
	Grade           string `json:"grade,omitempty"`
	InstitutionID   string `json:"institution_id"`
	InstitutionName string `json:"institution_name"`
	IssuedTxHash    string `json:"issued_tx_hash"`
	IssuedBlock     uint64 `json:"issued_block"`
	AuditTxHash     string `json:"audit_tx_hash"`
	AuditBlock      uint64 `json:"audit_block"`
}
