//go:build !cgo

package hal

import (
	"fmt"

	"go.uber.org/zap"
)

// RunWindow needs ebiten, which needs cgo.
func RunWindow(_ WindowConfig, _ *zap.Logger, _ func(HAL) (func() error, error)) error {
	return fmt.Errorf("window mode requires cgo (build/run with CGO_ENABLED=1): %w", ErrNotImplemented)
}
