// Package reducer cuts the label row and column off a similarity matrix and
// rounds what remains.
package reducer

import (
	"fmt"

	"github.com/KyungWonPark/smaller-similarity/internal/calc"
	"github.com/KyungWonPark/smaller-similarity/internal/config"
	"github.com/KyungWonPark/smaller-similarity/internal/io"
	"github.com/gonum/matrix/mat64"
	"go.uber.org/zap"
)

// Reducer runs a single reduction pass
type Reducer struct {
	cfg    config.Config
	logger *zap.Logger
}

// New returns a Reducer for cfg. A nil logger disables logging.
func New(cfg config.Config, logger *zap.Logger) *Reducer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reducer{cfg: cfg, logger: logger}
}

// Reduce extracts the configured window from rows and rounds it
func (r *Reducer) Reduce(rows [][]float64) (*mat64.Dense, error) {
	window, err := calc.Extract(rows, r.cfg.Window)
	if err != nil {
		return nil, err
	}

	if err := calc.Round(window, window, r.cfg.Precision); err != nil {
		return nil, err
	}

	return window, nil
}

// Run reads the source, reduces it and writes the destination.
// Nothing is written unless reading and reducing succeed.
func (r *Reducer) Run() error {
	rows, err := io.JSONtoRows(r.cfg.Source)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	r.logger.Debug("loaded similarity matrix", zap.String("source", r.cfg.Source), zap.Int("rows", len(rows)))

	reduced, err := r.Reduce(rows)
	if err != nil {
		return fmt.Errorf("reduce %s: %w", r.cfg.Source, err)
	}

	if err := io.Mat64toJSON(r.cfg.Destination, reduced); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}

	outRows, outCols := reduced.Dims()
	r.logger.Info("wrote reduced matrix",
		zap.String("source", r.cfg.Source),
		zap.String("destination", r.cfg.Destination),
		zap.Int("rows", outRows),
		zap.Int("cols", outCols),
	)

	return nil
}
