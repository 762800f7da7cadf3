package interfaces

import (
	"context"

	"fieldserve/internal/domain/entities"
)

// ISettingsSource resolves per-tenant configuration for the calculator and
// the dispatcher. Implementations cache with a short TTL; the core treats the
// result as read-only.

type ISettingsSource interface {
	Get(ctx context.Context, companyID string) (entities.Settings, error)
}
