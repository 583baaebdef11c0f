package constant

// Environment variable names
const (
	// EnvRPCURL is the node endpoint the reporter queries
	EnvRPCURL = "SEPOLIA_RPC_URL"

	// EnvABIPath overrides the location of the contract build artifact
	EnvABIPath = "VTC_ABI_PATH"

	// EnvStrictExit makes the process exit non-zero when the report fails
	EnvStrictExit = "VTC_STRICT_EXIT"

	// EnvHTTPTimeoutSeconds bounds each HTTP request to the node
	EnvHTTPTimeoutSeconds = "VTC_HTTP_TIMEOUT_SECONDS"
)

// DotEnvFile is loaded from the working directory when present
const DotEnvFile = ".env"

// UnsetEndpoint is echoed in the startup line when no endpoint is configured
const UnsetEndpoint = "undefined"
