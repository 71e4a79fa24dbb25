package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System is the [Clipboard] of the host, backed by atotto/clipboard.
type System struct{}

// NewSystem returns the host clipboard.
func NewSystem() *System {
	return &System{}
}

// WriteAll implements [Clipboard].
func (s *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("error writing to clipboard: %w", err)
	}

	return nil
}
