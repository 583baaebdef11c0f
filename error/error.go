package error

import (
	"errors"
	"net"
	"strings"

	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// ContractCallError wraps any failure raised while awaiting a contract call:
// connectivity loss, a revert or an undecodable response.
type ContractCallError struct {
	Method string
	Err    error
}

func (e *ContractCallError) Error() string {
	return "contract call " + e.Method + " failed: " + e.Err.Error()
}

func (e *ContractCallError) Unwrap() error {
	return e.Err
}

// Is matches the VTC-0003 contract call failure code.
func (e *ContractCallError) Is(target error) bool {
	return target == cn.ErrContractCallFailed
}

// IsConnectionError checks if an error is likely related to network connectivity
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()

	// Check for known connection error messages
	connectionErrors := []string{
		"connection refused",
		"no such host",
		"host unreachable",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"operation timed out",
		"EOF",
		"connection reset by peer",
		"dial tcp",
		"TLS handshake",
		"context deadline exceeded",
		"operation canceled",
	}

	for _, msg := range connectionErrors {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(msg)) {
			return true
		}
	}

	// Check for specific error types
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Try to unwrap and check nested error
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return IsConnectionError(unwrapped)
	}

	return false
}

// revertErrorCode is the JSON-RPC code geth-compatible nodes use for reverts
const revertErrorCode = 3

// IsRevertError reports whether the node rejected the call because the
// contract reverted.
func IsRevertError(err error) bool {
	if err == nil {
		return false
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertErrorCode {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

// RevertReason extracts the Error(string) message carried by a revert, if any.
func RevertReason(err error) (string, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return "", false
	}

	hexData, ok := dataErr.ErrorData().(string)
	if !ok {
		return "", false
	}

	data, decodeErr := hexutil.Decode(hexData)
	if decodeErr != nil {
		return "", false
	}

	reason, unpackErr := abi.UnpackRevert(data)
	if unpackErr != nil {
		return "", false
	}

	return reason, true
}
