//go:build !cgo

package hal

import (
	"fmt"

	"softcube/frame"
)

func RunWindow(_ *frame.Orchestrator, _ WindowConfig) error {
	return fmt.Errorf("%w: window mode requires cgo (build/run with CGO_ENABLED=1)", ErrNoWindow)
}
