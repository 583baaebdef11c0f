package contract

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/internal/cache"
	"github.com/Rendinex/VTCRendinex/pkg"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:embed abi/RVTC.abi.json
var embeddedABI []byte

// artifact is the subset of a Foundry/Hardhat build artifact we read
type artifact struct {
	ABI json.RawMessage `json:"abi"`
}

// Loader resolves the contract interface description, preferring the build
// artifact on disk and falling back to the embedded RVTC interface.
type Loader struct {
	cache  *cache.Manager
	logger log.Logger
}

// NewLoader creates a new ABI loader backed by the given cache
func NewLoader(c *cache.Manager, logger log.Logger) *Loader {
	return &Loader{
		cache:  c,
		logger: logger,
	}
}

// Load returns the parsed ABI for the artifact at path. A missing artifact is
// not an error: the embedded interface is used instead.
func (l *Loader) Load(path string) (*abi.ABI, error) {
	if parsed, found := l.cache.Get(path); found {
		return parsed, nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warnf("Contract artifact %s not found, using embedded %s interface", path, cn.GetLicensesMethod)
		return l.loadEmbedded()
	}

	if err != nil {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidABI, "ContractABI", err.Error())
	}

	parsed, err := Parse(raw)
	if err != nil {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidABI, "ContractABI", fmt.Sprintf("%s: %s", path, err.Error()))
	}

	l.cache.Store(path, parsed)

	return parsed, nil
}

func (l *Loader) loadEmbedded() (*abi.ABI, error) {
	if parsed, found := l.cache.Get(cn.EmbeddedABISource); found {
		return parsed, nil
	}

	parsed, err := Embedded()
	if err != nil {
		return nil, pkg.ValidateBusinessError(cn.ErrInvalidABI, "ContractABI", err.Error())
	}

	l.cache.Store(cn.EmbeddedABISource, parsed)

	return parsed, nil
}

// Parse reads either a build artifact (an object with an "abi" key) or a bare
// ABI array, and checks that it exposes the license listing accessor.
func Parse(raw []byte) (*abi.ABI, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, errors.New("empty contract artifact")
	}

	abiJSON := raw
	if raw[0] == '{' {
		var a artifact
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, fmt.Errorf("failed to decode artifact: %w", err)
		}

		if len(a.ABI) == 0 {
			return nil, errors.New("artifact has no abi field")
		}

		abiJSON = a.ABI
	}

	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}

	method, ok := parsed.Methods[cn.GetLicensesMethod]
	if !ok {
		return nil, fmt.Errorf("abi has no %s method", cn.GetLicensesMethod)
	}

	if len(method.Inputs) != 0 {
		return nil, fmt.Errorf("%s takes %d arguments, expected none", cn.GetLicensesMethod, len(method.Inputs))
	}

	return &parsed, nil
}

// Embedded returns the built-in RVTC interface
func Embedded() (*abi.ABI, error) {
	return Parse(embeddedABI)
}
