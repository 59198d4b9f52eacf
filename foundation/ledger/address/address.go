// Package address generates the wallet addresses assigned to institutions.
package address

import (
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/crypto"
)

// Generator produces opaque wallet address strings. The entropy source is
// injected so tests can supply a fixed sequence and assert exact outputs.
type Generator struct {
	rand io.Reader
}

// New constructs a generator reading entropy from the specified reader.
func New(rand io.Reader) *Generator {
	return &Generator{
		rand: rand,
	}
}

// NewAddress generates a new ECDSA keypair and returns the hex encoded
// address derived from the public key.
func (g *Generator) NewAddress() (string, error) {
	seed := make([]byte, 32)

	// ToECDSA rejects a seed outside the curve order. That is vanishingly
	// rare with real entropy, so just draw again.
	for attempts := 0; attempts < 16; attempts++ {
		if _, err := io.ReadFull(g.rand, seed); err != nil {
			return "", fmt.Errorf("reading entropy: %w", err)
		}

		privateKey, err := crypto.ToECDSA(seed)
		if err != nil {
			continue
		}

		return crypto.PubkeyToAddress(privateKey.PublicKey).String(), nil
	}

	return "", fmt.Errorf("unable to generate a valid key from the entropy source")
}
