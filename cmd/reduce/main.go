package main

import (
	"fmt"
	"os"

	"github.com/KyungWonPark/smaller-similarity/internal/config"
	"github.com/KyungWonPark/smaller-similarity/internal/reducer"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	if err := reducer.New(config.Default(), logger).Run(); err != nil {
		logger.Error("reduction failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	_ = logger.Sync()
}
