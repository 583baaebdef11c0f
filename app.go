package vtc

import (
	"context"
	"io"
	"net/http"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/internal/api"
	"github.com/Rendinex/VTCRendinex/internal/cache"
	"github.com/Rendinex/VTCRendinex/internal/config"
	"github.com/Rendinex/VTCRendinex/internal/contract"
	"github.com/Rendinex/VTCRendinex/internal/shutdown"
	"github.com/Rendinex/VTCRendinex/model"
	"github.com/Rendinex/VTCRendinex/reporter"
)

// App wires the configuration, the contract client and the reporter for a
// single report run
type App struct {
	config          *config.ClientConfig
	apiClient       *api.Client
	cacheManager    *cache.Manager
	shutdownManager *shutdown.Manager
	reporter        *reporter.Reporter
	logger          log.Logger
}

// NewApp builds the reporter for cfg without contacting the node. httpClient
// is optional and only used for http(s) endpoints.
func NewApp(cfg model.Config, out io.Writer, httpClient *http.Client, logger log.Logger) (*App, error) {
	clientConfig, err := config.FromModel(cfg, logger)
	if err != nil {
		return nil, err
	}

	cacheManager, err := cache.New(logger)
	if err != nil {
		logger.Errorf("Failed to initialize cache: %s", err.Error())
		return nil, err
	}

	contractABI, err := contract.NewLoader(cacheManager, logger).Load(clientConfig.ABIPath)
	if err != nil {
		logger.Errorf("Failed to load contract interface: %s", err.Error())
		cacheManager.Close()

		return nil, err
	}

	apiClient := api.NewNodeClient(clientConfig, httpClient, contractABI, logger)

	return &App{
		config:          clientConfig,
		apiClient:       apiClient,
		cacheManager:    cacheManager,
		shutdownManager: shutdown.New(clientConfig.StrictExit),
		reporter:        reporter.New(clientConfig.RPCURL, apiClient, out, logger),
		logger:          logger,
	}, nil
}

// SetTerminationHandler allows customizing how the process ends when a
// strict run fails
func (a *App) SetTerminationHandler(handler func(reason string)) {
	a.shutdownManager.SetHandler(handler)
}

// Run prints the report and applies the exit-status policy to its outcome
func (a *App) Run(ctx context.Context) error {
	err := a.reporter.Run(ctx)
	if err != nil && !a.shutdownManager.Strict() {
		a.logger.Infof("Report failed, exiting normally - set %s=true to exit with a failure status", cn.EnvStrictExit)
	}

	a.shutdownManager.Finish(err)

	return err
}

// Close releases the node connection and the cache
func (a *App) Close() {
	a.apiClient.Close()
	a.cacheManager.Close()
}
