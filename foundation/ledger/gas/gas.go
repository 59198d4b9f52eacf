// Package gas maintains the fixed gas schedule for ledger operations.
package gas

// OpKind represents the kind of operation a transaction records.
type OpKind string

// Set of operation kinds supported by the ledger.
const (
	OpRegisterInstitution OpKind = "REGISTER_INSTITUTION"
	OpIssueCertificate    OpKind = "ISSUE_CERTIFICATE"
	OpVerifyCertificate   OpKind = "VERIFY_CERTIFICATE"
	OpTransfer            OpKind = "TRANSFER"
)

// Nominal gas cost for each operation kind. Unknown kinds fall back to
// DefaultCost rather than failing.
const (
	CostRegisterInstitution uint64 = 150_000
	CostIssueCertificate    uint64 = 100_000
	CostVerifyCertificate   uint64 = 21_000
	CostTransfer            uint64 = 21_000
	DefaultCost             uint64 = 21_000
)

// CostOf returns the nominal gas cost for the specified operation kind.
func CostOf(kind OpKind) uint64 {
	switch kind {
	case OpRegisterInstitution:
		return CostRegisterInstitution
	case OpIssueCertificate:
		return CostIssueCertificate
	case OpVerifyCertificate:
		return CostVerifyCertificate
	case OpTransfer:
		return CostTransfer
	}

	return DefaultCost
}

// Charged returns the gas actually charged for an operation given the
// caller's limit. A limit below the nominal cost is not an error, the
// caller is simply charged up to their limit.
func Charged(kind OpKind, limit uint64) uint64 {
	cost := CostOf(kind)
	if limit < cost {
		return limit
	}

	return cost
}
