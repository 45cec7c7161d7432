//go:build !windows

package remove

import (
	"context"

	"github.com/sweepkit/agent/internal/detect"
)

func (r *Remover) cleanRegistry(ctx context.Context, d detect.Detection, res *Result) {
	// Registry cleanup only exists on Windows; the step is skipped, not
	// failed, elsewhere.
}
