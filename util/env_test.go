package util

import (
	"testing"

	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/model"
	"github.com/Rendinex/VTCRendinex/test/helper/testlogger"
	"github.com/stretchr/testify/assert"
)

func TestValidateEnvVariables(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *model.Config
		wantErr error
		wantLog string
	}{
		{
			name:    "nil config",
			cfg:     nil,
			wantLog: "",
		},
		{
			name:    "missing rpc url",
			cfg:     &model.Config{RPCURL: "  ", ABIPath: cn.DefaultABIPath},
			wantErr: cn.ErrMissingRPCURL,
			wantLog: cn.EnvRPCURL,
		},
		{
			name:    "missing abi path",
			cfg:     &model.Config{RPCURL: "http://example:8545"},
			wantLog: "missing contract artifact path",
		},
		{
			name: "valid",
			cfg:  &model.Config{RPCURL: "http://example:8545", ABIPath: cn.DefaultABIPath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := testlogger.New()

			err := ValidateEnvVariables(tt.cfg, logger)

			if tt.name == "valid" {
				assert.NoError(t, err)
				assert.Zero(t, logger.Count("ERROR"))

				return
			}

			assert.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			if tt.wantLog != "" {
				assert.True(t, logger.Contains("ERROR", tt.wantLog))
			}
		})
	}
}
