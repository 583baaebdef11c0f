package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	vtc "github.com/Rendinex/VTCRendinex"
	cn "github.com/Rendinex/VTCRendinex/constant"
	"github.com/Rendinex/VTCRendinex/reporter"
	"github.com/Rendinex/VTCRendinex/util"
)

func main() {
	logger := zap.InitializeLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, os.Stdout, logger)

	stop()
	_ = logger.Sync()

	os.Exit(code)
}

// run prints the report to out and returns the process exit status. The
// startup line is written even when the configuration is unusable.
func run(ctx context.Context, out io.Writer, logger log.Logger) int {
	cfg, err := vtc.LoadFromEnv()
	if err != nil {
		reporter.PrintEndpoint(out, os.Getenv(cn.EnvRPCURL))
		logger.Errorf("Failed to load configuration: %v", err)

		return cn.ExitCodeFailure
	}

	if err := util.ValidateEnvVariables(&cfg, logger); err != nil {
		reporter.PrintEndpoint(out, cfg.RPCURL)
		return cn.ExitCodeFailure
	}

	app, err := vtc.NewApp(cfg, out, nil, logger)
	if err != nil {
		reporter.PrintEndpoint(out, cfg.RPCURL)
		return cn.ExitCodeFailure
	}
	defer app.Close()

	exitCode := 0

	app.SetTerminationHandler(func(reason string) {
		logger.Errorf("Exiting with failure status: %s", reason)
		exitCode = cn.ExitCodeFailure
	})

	// Failures are already logged by the reporter.
	_ = app.Run(ctx)

	return exitCode
}
