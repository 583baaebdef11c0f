// Package fixture builds getLicenses() responses for tests
package fixture

import (
	"math/big"
	"testing"

	"github.com/Rendinex/VTCRendinex/internal/contract"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

// RevertPayload is an Error(string) revert carrying "not enough funds"
const RevertPayload = "0x08c379a0" +
	"0000000000000000000000000000000000000000000000000000000000000020" +
	"0000000000000000000000000000000000000000000000000000000000000010" +
	"6e6f7420656e6f7567682066756e647300000000000000000000000000000000"

// Licenses is an index-aligned set of license columns
type Licenses struct {
	IDs              []*big.Int
	FundingGoals     []*big.Int
	FundsRaised      []*big.Int
	FundingCompleted []bool
}

// Sample returns three licenses, the last one fully funded
func Sample() Licenses {
	goal, _ := new(big.Int).SetString("5000000000000000000", 10)

	return Licenses{
		IDs:              []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(7)},
		FundingGoals:     []*big.Int{big.NewInt(1000), big.NewInt(250), goal},
		FundsRaised:      []*big.Int{big.NewInt(0), big.NewInt(125), goal},
		FundingCompleted: []bool{false, false, true},
	}
}

// Values returns the columns the way abi.Unpack hands them back
func (l Licenses) Values() []any {
	return []any{l.IDs, l.FundingGoals, l.FundsRaised, l.FundingCompleted}
}

// ABI returns the embedded RVTC interface
func ABI(t *testing.T) *abi.ABI {
	t.Helper()

	parsed, err := contract.Embedded()
	require.NoError(t, err)

	return parsed
}

// Encode ABI-encodes the columns as a getLicenses() return value
func (l Licenses) Encode(t *testing.T) []byte {
	t.Helper()

	out, err := ABI(t).Methods["getLicenses"].Outputs.Pack(l.IDs, l.FundingGoals, l.FundsRaised, l.FundingCompleted)
	require.NoError(t, err)

	return out
}

// EncodeHex is Encode as a 0x-prefixed string, as returned by eth_call
func (l Licenses) EncodeHex(t *testing.T) string {
	t.Helper()

	return hexutil.Encode(l.Encode(t))
}

// BigStrings renders a decoded integer column in base 10 for comparison
func BigStrings(t *testing.T, column any) []string {
	t.Helper()

	values, ok := column.([]*big.Int)
	require.True(t, ok, "column is %T, expected []*big.Int", column)

	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}

	return out
}
