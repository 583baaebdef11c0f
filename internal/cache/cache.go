package cache

import (
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/Rendinex/VTCRendinex/constant"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Manager handles caching of parsed contract interfaces, keyed by the
// artifact they were read from
type Manager struct {
	cache  *ristretto.Cache[string, *abi.ABI]
	logger log.Logger
}

// New creates a new cache manager
func New(logger log.Logger) (*Manager, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *abi.ABI]{
		NumCounters: constant.CacheNumCounters,
		MaxCost:     constant.CacheMaxCost,
		BufferItems: constant.CacheBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Manager{
		cache:  cache,
		logger: logger,
	}, nil
}

// Get retrieves a parsed ABI by artifact source
func (m *Manager) Get(source string) (*abi.ABI, bool) {
	if parsed, found := m.cache.Get(source); found && parsed != nil {
		m.logger.Debugf("Contract ABI cached for %s [methods: %d]", source, len(parsed.Methods))
		return parsed, true
	}

	return nil, false
}

// Store caches a parsed ABI. The write is flushed before returning so a
// following Get observes it.
func (m *Manager) Store(source string, parsed *abi.ABI) {
	m.cache.Set(source, parsed, 1)
	m.cache.Wait()

	m.logger.Debugf("Stored contract ABI for %s", source)
}

// Close releases the cache goroutines
func (m *Manager) Close() {
	m.cache.Close()
}
