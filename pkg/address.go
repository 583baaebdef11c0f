package pkg

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseContractAddress validates a 0x-prefixed (or bare) hex address string
// and returns it as a common.Address.
func ParseContractAddress(s string) (common.Address, bool) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, false
	}

	return common.HexToAddress(s), true
}
