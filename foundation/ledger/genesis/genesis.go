// Package genesis maintains access to the ledger parameters file.
package genesis

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Genesis represents the fixed parameters the chain starts with. The block
// gas limit is advisory, it is recorded in each block header but never
// enforced against the sum of transaction limits.
type Genesis struct {
	ChainName     string `toml:"chain_name"`
	BlockGasLimit uint64 `toml:"block_gas_limit"`
	GasPrice      uint64 `toml:"gas_price"`
}

// Default returns the parameters used when no genesis file exists.
func Default() Genesis {
	return Genesis{
		ChainName:     "certledger",
		BlockGasLimit: 8_000_000,
		GasPrice:      20,
	}
}

// Load opens and consumes the genesis file at the specified path. A missing
// file is not an error, the defaults are returned.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Genesis{}, fmt.Errorf("reading genesis file: %w", err)
	}

	genesis := Default()
	if err := toml.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, fmt.Errorf("parsing genesis file: %w", err)
	}

	return genesis, nil
}
