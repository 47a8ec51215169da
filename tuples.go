package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/marcodamonte/typequirks/tuple"
)

func demoTuples(w io.Writer, logger *zap.Logger) error {
	// Built with one element, so position 0 is promised. Pop does not know
	// about the bound.
	b, err := tuple.NewBounded("a")
	if err != nil {
		return err
	}
	popped := b.Pop()
	logger.Debug("popped bounded sequence", zap.Stringer("value", popped), zap.Int("len", b.Len()))
	if _, err := fmt.Fprintln(w, b.At(0)); err != nil {
		return err
	}

	// Destructuring an emptied sequence yields absence, not a string.
	s := tuple.Of("foo")
	s.Pop()
	first := s.First()
	logger.Debug("destructured emptied sequence", zap.Bool("present", first.IsPresent()))
	_, err = fmt.Fprintln(w, first)
	return err
}
