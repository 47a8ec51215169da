package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Two independent demos, one printed value per line:
//
//	true, true, false   fish_ texture preferences
//	undefined           bounded sequence read after Pop
//	undefined           emptied sequence destructured
//
// Run:
//
//	go run .
func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(os.Stdout, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(w io.Writer, logger *zap.Logger) error {
	if err := demoPrefixed(w, logger.Named("prefixed")); err != nil {
		return fmt.Errorf("prefixed: %w", err)
	}
	if err := demoTuples(w, logger.Named("tuples")); err != nil {
		return fmt.Errorf("tuples: %w", err)
	}
	return nil
}
