package constant

// Cache configuration constants
const (
	// CacheNumCounters is the number of keys to track frequency (1K)
	CacheNumCounters = 1e3
	// CacheMaxCost is the maximum cost of cache (one unit per parsed ABI)
	CacheMaxCost = 1 << 6
	// CacheBufferItems is the number of keys per Get buffer
	CacheBufferItems = 64
)
