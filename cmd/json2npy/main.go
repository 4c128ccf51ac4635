package main

import (
	"os"

	"github.com/KyungWonPark/smaller-similarity/internal/io"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "json2npy [matrix.json]",
	Short: "Convert a JSON matrix to .npy and .csv files next to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args[0])
	},
	SilenceUsage: true,
}

func convert(fileName string) error {
	matrix, err := io.JSONtoMat64(fileName)
	if err != nil {
		return err
	}
	rows, cols := matrix.Dims()
	logger.Info("read json matrix", zap.String("source", fileName), zap.Int("rows", rows), zap.Int("cols", cols))

	if err := io.Mat64toNpy(fileName+".npy", matrix); err != nil {
		return err
	}
	if err := io.Mat64toCSV(fileName+".csv", matrix); err != nil {
		return err
	}
	logger.Info("wrote npy and csv", zap.String("npy", fileName+".npy"), zap.String("csv", fileName+".csv"))

	return nil
}

func main() {
	if l, err := zap.NewProductionConfig().Build(); err == nil {
		logger = l
	}
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
