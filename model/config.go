package model

// Config holds the raw, environment-provided reporter settings.
type Config struct {
	RPCURL             string `env:"SEPOLIA_RPC_URL"`
	ABIPath            string `env:"VTC_ABI_PATH"`
	StrictExit         bool   `env:"VTC_STRICT_EXIT"`
	HTTPTimeoutSeconds int    `env:"VTC_HTTP_TIMEOUT_SECONDS"`
}
