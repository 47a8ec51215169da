package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/marcodamonte/typequirks/food"
)

// fish_ preferences are built at runtime from the generic ones. Nothing in the
// map type says "fish_stick" exists; a typo in the key just reads false.
func demoPrefixed(w io.Writer, logger *zap.Logger) error {
	fish := food.FishPreferences()
	logger.Debug("built fish preferences", zap.Int("keys", len(fish)))

	for _, t := range []food.Texture{food.Stick, food.Ball, food.Soup} {
		if _, err := fmt.Fprintln(w, fish[food.FishKey(t)]); err != nil {
			return err
		}
	}
	return nil
}
