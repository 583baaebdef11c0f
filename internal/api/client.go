package api

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/Rendinex/VTCRendinex/constant"
	libErr "github.com/Rendinex/VTCRendinex/error"
	"github.com/Rendinex/VTCRendinex/internal/config"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// ContractCaller performs read-only contract calls. *ethclient.Client
// satisfies it.
//
//go:generate mockgen --destination=caller_mock.go --package=api . ContractCaller
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Client handles communication with the RVTC contract
type Client struct {
	caller  ContractCaller
	dial    func(ctx context.Context) (*ethclient.Client, error)
	address common.Address
	abi     *abi.ABI
	logger  log.Logger
	closer  func()
}

// New creates a new contract client over an existing caller
func New(cfg *config.ClientConfig, caller ContractCaller, contractABI *abi.ABI, logger log.Logger) *Client {
	return &Client{
		caller:  caller,
		address: cfg.ContractAddress,
		abi:     contractABI,
		logger:  logger,
	}
}

// NewNodeClient returns a client bound to the configured node. The
// connection is opened by the first call, so an unreachable node surfaces
// as a call failure. httpClient is optional and only used for http(s)
// endpoints.
func NewNodeClient(cfg *config.ClientConfig, httpClient *http.Client, contractABI *abi.ABI, logger log.Logger) *Client {
	if httpClient == nil && cfg.HTTPTimeout > 0 {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	var opts []rpc.ClientOption
	if httpClient != nil {
		opts = append(opts, rpc.WithHTTPClient(httpClient))
	}

	endpoint := cfg.RPCURL

	client := New(cfg, nil, contractABI, logger)
	client.dial = func(ctx context.Context) (*ethclient.Client, error) {
		rpcClient, err := rpc.DialOptions(ctx, endpoint, opts...)
		if err != nil {
			return nil, err
		}

		return ethclient.NewClient(rpcClient), nil
	}

	return client
}

func (c *Client) connect(ctx context.Context) error {
	if c.caller != nil {
		return nil
	}

	if c.dial == nil {
		return errors.New("no node connection configured")
	}

	ethClient, err := c.dial(ctx)
	if err != nil {
		return fmt.Errorf("failed to dial node: %w", err)
	}

	c.caller = ethClient
	c.closer = ethClient.Close

	return nil
}

// GetLicenses calls the contract's license listing accessor and returns the
// unpacked output tuple as-is. Shape checks are left to the caller.
func (c *Client) GetLicenses(ctx context.Context) ([]any, error) {
	if err := c.connect(ctx); err != nil {
		c.logCallFailure(err)
		return nil, &libErr.ContractCallError{Method: cn.GetLicensesMethod, Err: err}
	}

	data, err := c.abi.Pack(cn.GetLicensesMethod)
	if err != nil {
		return nil, &libErr.ContractCallError{Method: cn.GetLicensesMethod, Err: fmt.Errorf("failed to encode call: %w", err)}
	}

	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{
		To:   &c.address,
		Data: data,
	}, nil)
	if err != nil {
		c.logCallFailure(err)
		return nil, &libErr.ContractCallError{Method: cn.GetLicensesMethod, Err: err}
	}

	values, err := c.abi.Unpack(cn.GetLicensesMethod, out)
	if err != nil {
		c.logger.Debugf("Undecodable %s response - %d bytes", cn.GetLicensesMethod, len(out))
		return nil, &libErr.ContractCallError{Method: cn.GetLicensesMethod, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return values, nil
}

// Close releases the node connection when the client owns it
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
		c.closer = nil
	}
}

func (c *Client) logCallFailure(err error) {
	switch {
	case libErr.IsRevertError(err):
		if reason, ok := libErr.RevertReason(err); ok {
			c.logger.Warnf("Contract %s reverted %s - reason: %s", c.address.Hex(), cn.GetLicensesMethod, reason)
			return
		}

		c.logger.Warnf("Contract %s reverted %s", c.address.Hex(), cn.GetLicensesMethod)
	case libErr.IsConnectionError(err):
		c.logger.Warnf("Node unreachable during %s - error: %s", cn.GetLicensesMethod, err.Error())
	default:
		c.logger.Debugf("%s call failed - error: %s", cn.GetLicensesMethod, err.Error())
	}
}
