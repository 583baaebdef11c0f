package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/model"
	"github.com/Rendinex/VTCRendinex/pkg"
	"github.com/ethereum/go-ethereum/common"
)

// ClientConfig holds the configuration for the contract client
type ClientConfig struct {
	RPCURL          string // Node endpoint (http, https, ws, wss or IPC path)
	ContractAddress common.Address
	ABIPath         string

	// HTTP configuration; zero means no client-side timeout
	HTTPTimeout time.Duration

	// Exit non-zero when the report fails
	StrictExit bool
}

// NewDefaultConfig creates a new config bound to the deployed RVTC contract
func NewDefaultConfig() ClientConfig {
	return ClientConfig{
		ContractAddress: common.HexToAddress(cn.ContractAddress),
		ABIPath:         cn.DefaultABIPath,
		HTTPTimeout:     cn.DefaultHTTPTimeoutSeconds * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if c.RPCURL == "" {
		return pkg.ValidateBusinessError(cn.ErrMissingRPCURL, "ClientConfig")
	}
	if c.ContractAddress == (common.Address{}) {
		return pkg.ValidateBusinessError(cn.ErrInvalidContractAddress, "ClientConfig", c.ContractAddress.Hex())
	}
	if c.ABIPath == "" {
		return errors.New("contract artifact path is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%s must not be negative", cn.EnvHTTPTimeoutSeconds)
	}
	return nil
}

// FromModel converts a model.Config to a ClientConfig
func FromModel(cfg model.Config, logger log.Logger) (*ClientConfig, error) {
	address, ok := pkg.ParseContractAddress(cn.ContractAddress)
	if !ok {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidContractAddress, "ClientConfig", cn.ContractAddress)
	}

	config := NewDefaultConfig()
	config.RPCURL = cfg.RPCURL
	config.ContractAddress = address
	config.StrictExit = cfg.StrictExit

	if cfg.ABIPath != "" {
		config.ABIPath = cfg.ABIPath
	}

	if cfg.HTTPTimeoutSeconds != 0 {
		config.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	}

	if err := config.Validate(); err != nil {
		logger.Errorf("Invalid configuration: %s", err.Error())
		return nil, err
	}

	logger.Debugf("Reporter configured for contract %s via %s", config.ContractAddress.Hex(), config.ABIPath)

	return &config, nil
}
