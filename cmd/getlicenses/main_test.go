package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/test/fixture"
	"github.com/Rendinex/VTCRendinex/test/helper"
	"github.com/Rendinex/VTCRendinex/test/helper/testlogger"
	"github.com/stretchr/testify/assert"
)

func setEnv(t *testing.T, endpoint string, strict bool) {
	t.Helper()

	t.Setenv(cn.EnvRPCURL, endpoint)
	t.Setenv(cn.EnvABIPath, filepath.Join(t.TempDir(), "RVTC.json"))
	t.Setenv(cn.EnvHTTPTimeoutSeconds, "")

	if strict {
		t.Setenv(cn.EnvStrictExit, "true")
	} else {
		t.Setenv(cn.EnvStrictExit, "false")
	}
}

func TestRunReportsLicenses(t *testing.T) {
	node := helper.NewTestNode(t, func(req helper.RPCRequest) (any, *helper.RPCError) {
		return fixture.Sample().EncodeHex(t), nil
	})

	setEnv(t, node.URL, true)

	out := &bytes.Buffer{}

	assert.Equal(t, 0, run(context.Background(), out, testlogger.New()))
	assert.Contains(t, out.String(), "Provider URL: "+node.URL+"\nLicenses Information:\n")
	node.AssertSingleCall(t, "eth_call")
}

func TestRunUnreachableNode(t *testing.T) {
	tests := []struct {
		name     string
		strict   bool
		wantCode int
	}{
		{name: "lenient", strict: false, wantCode: 0},
		{name: "strict", strict: true, wantCode: cn.ExitCodeFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, "ws://127.0.0.1:1", tt.strict)

			out := &bytes.Buffer{}
			logger := testlogger.New()

			assert.Equal(t, tt.wantCode, run(context.Background(), out, logger))
			assert.Equal(t, "Provider URL: ws://127.0.0.1:1\n", out.String())
			assert.True(t, logger.Contains("ERROR", "Error fetching licenses"))
		})
	}
}

func TestRunMissingEndpoint(t *testing.T) {
	setEnv(t, "", false)

	out := &bytes.Buffer{}
	logger := testlogger.New()

	assert.Equal(t, cn.ExitCodeFailure, run(context.Background(), out, logger))
	assert.Equal(t, "Provider URL: undefined\n", out.String())
	assert.True(t, logger.Contains("ERROR", cn.ErrMissingRPCURL.Error()))
}

func TestRunInvalidTimeout(t *testing.T) {
	setEnv(t, "http://example:8545", false)
	t.Setenv(cn.EnvHTTPTimeoutSeconds, "-5")

	out := &bytes.Buffer{}

	assert.Equal(t, cn.ExitCodeFailure, run(context.Background(), out, testlogger.New()))
	assert.Equal(t, "Provider URL: http://example:8545\n", out.String())
}
