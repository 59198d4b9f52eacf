// Package hashing provides the content hashing used for certificate
// fingerprints and block hashes.
package hashing

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ZeroHash represents a hash code of zeros. It is used as the parent hash of
// the genesis block and as the genesis block's own hash.
const ZeroHash string = "0x0000000000000000000000000000000000000000000000000000000000000000"

// Hash returns a unique string for the value. The value is canonicalized
// before digesting so two semantically identical values produce the same
// hash regardless of field or key order. Certificate hashes must stay
// verifiable across process restarts, so the algorithm is fixed.
func Hash(value any) string {
	data, err := canonicalize(value)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hexutil.Encode(hash[:])
}

// canonicalize produces a stable serialized form of the value. JSON encoding
// of maps is key sorted, so round tripping the value through a generic
// decode normalizes struct field order into sorted object keys, recursively.
func canonicalize(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var generic any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}

	return json.Marshal(generic)
}
