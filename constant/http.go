package constant

// TimeConstants defines timeout values
const (
	// DefaultHTTPTimeoutSeconds is the HTTP client timeout for the node
	// connection. Zero keeps the client library default (no timeout).
	DefaultHTTPTimeoutSeconds = 0
)

// Exit codes used by the termination manager
const (
	ExitCodeFailure = 1
)
