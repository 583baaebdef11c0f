// Package helper provides test utilities shared across packages
package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RPCRequest is a single JSON-RPC 2.0 request received by the test node
type RPCRequest struct {
	JSONRPC string            `json:"jsonrpc"`
	ID      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

// RPCError is a JSON-RPC error object returned by the test node
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCHandler answers one JSON-RPC request with either a result or an error
type RPCHandler func(req RPCRequest) (any, *RPCError)

// TestNode is an httptest-backed JSON-RPC endpoint standing in for an
// Ethereum node
type TestNode struct {
	*httptest.Server
	URL string

	mu       sync.Mutex
	requests []RPCRequest
}

// NewTestNode creates a new test node answering every request with handler
func NewTestNode(t *testing.T, handler RPCHandler) *TestNode {
	t.Helper()

	node := &TestNode{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RPCRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		node.mu.Lock()
		node.requests = append(node.requests, req)
		node.mu.Unlock()

		result, rpcErr := handler(req)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rpcResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  result,
			Error:   rpcErr,
		})
	}))
	t.Cleanup(ts.Close)

	node.Server = ts
	node.URL = ts.URL

	return node
}

// Requests returns the requests received so far
func (n *TestNode) Requests() []RPCRequest {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]RPCRequest, len(n.requests))
	copy(out, n.requests)

	return out
}

// AssertSingleCall asserts that the node received exactly one request with the expected method
func (n *TestNode) AssertSingleCall(t *testing.T, expectedMethod string) RPCRequest {
	t.Helper()

	reqs := n.Requests()
	require.Len(t, reqs, 1, "unexpected number of RPC requests")
	require.Equal(t, expectedMethod, reqs[0].Method, "unexpected RPC method")

	return reqs[0]
}
