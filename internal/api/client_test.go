package api

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strings"
	"testing"
	"time"

	cn "github.com/Rendinex/VTCRendinex/constant"
	libErr "github.com/Rendinex/VTCRendinex/error"
	"github.com/Rendinex/VTCRendinex/internal/config"
	"github.com/Rendinex/VTCRendinex/test/fixture"
	"github.com/Rendinex/VTCRendinex/test/helper"
	"github.com/Rendinex/VTCRendinex/test/helper/testlogger"
	"github.com/Rendinex/VTCRendinex/test/mocks"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig(url string) *config.ClientConfig {
	cfg := config.NewDefaultConfig()
	cfg.RPCURL = url

	return &cfg
}

func TestGetLicenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := NewMockContractCaller(ctrl)

	parsed := fixture.ABI(t)
	licenses := fixture.Sample()
	selector := parsed.Methods[cn.GetLicensesMethod].ID

	caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			require.NotNil(t, msg.To)
			assert.Equal(t, common.HexToAddress(cn.ContractAddress), *msg.To)
			assert.Equal(t, selector, msg.Data)

			return licenses.Encode(t), nil
		})

	client := New(testConfig("http://example:8545"), caller, parsed, testlogger.New())

	values, err := client.GetLicenses(context.Background())
	require.NoError(t, err)
	require.Len(t, values, 4)

	assert.Equal(t, fixture.BigStrings(t, licenses.IDs), fixture.BigStrings(t, values[0]))
	assert.Equal(t, fixture.BigStrings(t, licenses.FundingGoals), fixture.BigStrings(t, values[1]))
	assert.Equal(t, fixture.BigStrings(t, licenses.FundsRaised), fixture.BigStrings(t, values[2]))
	assert.Equal(t, licenses.FundingCompleted, values[3])
}

func TestGetLicensesCallFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := NewMockContractCaller(ctrl)

	cause := errors.New("dial tcp 10.0.0.1:8545: connect: connection refused")
	caller.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cause)

	logger := testlogger.New()
	client := New(testConfig("http://example:8545"), caller, fixture.ABI(t), logger)

	values, err := client.GetLicenses(context.Background())
	require.Error(t, err)
	assert.Nil(t, values)

	var callErr *libErr.ContractCallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, cn.GetLicensesMethod, callErr.Method)
	assert.ErrorIs(t, err, cause)
	assert.True(t, logger.Contains("WARN", "Node unreachable"))
}

func TestGetLicensesUndecodableResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	caller := NewMockContractCaller(ctrl)

	// No code at the address: the node answers with empty return data.
	caller.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{}, nil)

	client := New(testConfig("http://example:8545"), caller, fixture.ABI(t), testlogger.New())

	_, err := client.GetLicenses(context.Background())
	require.Error(t, err)

	var callErr *libErr.ContractCallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestNodeClientAgainstNode(t *testing.T) {
	licenses := fixture.Sample()

	node := helper.NewTestNode(t, func(req helper.RPCRequest) (any, *helper.RPCError) {
		return licenses.EncodeHex(t), nil
	})

	client := NewNodeClient(testConfig(node.URL), nil, fixture.ABI(t), testlogger.New())
	t.Cleanup(client.Close)

	values, err := client.GetLicenses(context.Background())
	require.NoError(t, err)
	require.Len(t, values, 4)
	assert.Equal(t, licenses.FundingCompleted, values[3])

	req := node.AssertSingleCall(t, "eth_call")
	require.Len(t, req.Params, 2)

	var callArgs map[string]any
	require.NoError(t, json.Unmarshal(req.Params[0], &callArgs))
	assert.Equal(t, strings.ToLower(cn.ContractAddress), callArgs["to"])

	var block string
	require.NoError(t, json.Unmarshal(req.Params[1], &block))
	assert.Equal(t, "latest", block)
}

func TestNodeClientRevert(t *testing.T) {
	node := helper.NewTestNode(t, func(req helper.RPCRequest) (any, *helper.RPCError) {
		return nil, &helper.RPCError{Code: 3, Message: "execution reverted: not enough funds", Data: fixture.RevertPayload}
	})

	logger := testlogger.New()

	client := NewNodeClient(testConfig(node.URL), nil, fixture.ABI(t), logger)
	t.Cleanup(client.Close)

	_, err := client.GetLicenses(context.Background())
	require.Error(t, err)

	assert.True(t, libErr.IsRevertError(err))

	reason, ok := libErr.RevertReason(err)
	require.True(t, ok)
	assert.Equal(t, "not enough funds", reason)
	assert.True(t, logger.Contains("WARN", "reverted getLicenses", "not enough funds"))
}

func TestNodeClientConnectionError(t *testing.T) {
	httpClient := mocks.HTTPClientConnectionErrorMock(errors.New("dial tcp 10.0.0.1:8545: connect: connection refused"))

	client := NewNodeClient(testConfig("http://example:8545"), httpClient, fixture.ABI(t), testlogger.New())
	t.Cleanup(client.Close)

	_, err := client.GetLicenses(context.Background())
	require.Error(t, err)

	assert.True(t, libErr.IsConnectionError(err))
	assert.False(t, libErr.IsRevertError(err))
}

func TestNodeClientHTTPStatusError(t *testing.T) {
	httpClient := mocks.HTTPClientWithStatusMock(http.StatusInternalServerError, []byte(`upstream unavailable`))

	client := NewNodeClient(testConfig("http://example:8545"), httpClient, fixture.ABI(t), testlogger.New())
	t.Cleanup(client.Close)

	_, err := client.GetLicenses(context.Background())
	require.Error(t, err)

	var callErr *libErr.ContractCallError
	require.ErrorAs(t, err, &callErr)

	var httpErr rpc.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "upstream unavailable")
	assert.False(t, libErr.IsRevertError(err))
}

func TestNodeClientUnreachableWebsocket(t *testing.T) {
	logger := testlogger.New()

	client := NewNodeClient(testConfig("ws://127.0.0.1:1"), nil, fixture.ABI(t), logger)
	t.Cleanup(client.Close)

	values, err := client.GetLicenses(context.Background())
	require.Error(t, err)
	assert.Nil(t, values)

	var callErr *libErr.ContractCallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, err.Error(), "failed to dial node")
	assert.True(t, libErr.IsConnectionError(err))
	assert.True(t, logger.Contains("WARN", "Node unreachable"))
}

func TestNodeClientInvalidEndpoint(t *testing.T) {
	client := NewNodeClient(testConfig("ftp://example:8545"), nil, fixture.ABI(t), testlogger.New())
	t.Cleanup(client.Close)

	_, err := client.GetLicenses(context.Background())
	require.Error(t, err)

	var callErr *libErr.ContractCallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, err.Error(), "failed to dial node")
}

func TestNodeClientHonorsHTTPTimeout(t *testing.T) {
	release := make(chan struct{})
	result := fixture.Sample().EncodeHex(t)

	node := helper.NewTestNode(t, func(req helper.RPCRequest) (any, *helper.RPCError) {
		<-release
		return result, nil
	})
	t.Cleanup(func() { close(release) })

	cfg := testConfig(node.URL)
	cfg.HTTPTimeout = 50 * time.Millisecond

	client := NewNodeClient(cfg, nil, fixture.ABI(t), testlogger.New())
	t.Cleanup(client.Close)

	_, err := client.GetLicenses(context.Background())
	require.Error(t, err)
	assert.True(t, libErr.IsConnectionError(err))
}
