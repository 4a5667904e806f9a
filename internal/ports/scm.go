package ports

import (
	"context"

	"rops/internal/core/domain"
)

// Scm reads local repository metadata. No network access. Returns
// domain.ErrNotARepository outside a working tree.
type Scm interface {
	CurrentRef(ctx context.Context) (domain.GitRef, error)
}
