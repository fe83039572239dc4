package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kbukum/matrixflow/config"
	"github.com/kbukum/matrixflow/logger"
	"github.com/kbukum/matrixflow/observability"
	"github.com/kbukum/matrixflow/pipeline"
	"github.com/kbukum/matrixflow/version"
)

const binaryName = "matrixflow"

// appConfig is the full configuration for the matrixflow binary.
type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Pipeline             pipeline.Config      `yaml:"pipeline" mapstructure:"pipeline"`
	Observability        observability.Config `yaml:"observability" mapstructure:"observability"`
}

func main() {
	if err := run(); err != nil {
		logger.WithComponent("main").WithError(err).Error("run failed")
		os.Exit(1)
	}
}

func run() error {
	cfg := appConfig{}
	cfg.Name = binaryName
	cfg.Pipeline = pipeline.DefaultConfig()

	if err := config.LoadConfig(binaryName, &cfg); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	cfg.Pipeline.ApplyDefaults()
	cfg.Observability.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("main")
	log.Info("starting", logger.Fields(
		"version", version.GetShortVersion(),
		"environment", cfg.Environment,
	))

	ctx := context.Background()

	var metrics *observability.PipelineMetrics
	if cfg.Observability.Enabled {
		mp, err := observability.InitMeter(ctx, cfg.Name, version.Version, cfg.Environment, cfg.Observability)
		if err != nil {
			return err
		}
		defer mp.Shutdown(context.Background())

		tp, err := observability.InitTracer(ctx, cfg.Name, version.Version, cfg.Environment, cfg.Observability)
		if err != nil {
			return err
		}
		defer tp.Shutdown(context.Background())

		metrics, err = observability.NewPipelineMetrics(observability.Meter(binaryName))
		if err != nil {
			return err
		}
	}

	results, err := pipeline.Run(ctx, cfg.Pipeline, pipeline.WithMetrics(metrics))
	if err != nil {
		return err
	}

	for i, sum := range results {
		fmt.Printf("Matrix #%d: sum = %d\n", i, sum)
	}
	return nil
}
