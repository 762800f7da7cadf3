package interfaces

import (
	"context"

	"fieldserve/internal/domain/entities"
)

// IEventDispatcher consumes committed domain events. Implementations are best
// effort from the orchestrator's perspective: they log their own failures and
// never surface them back into the transition.

type IEventDispatcher interface {
	StatusChanged(ctx context.Context, w entities.WorkOrder, from, to entities.Status)
}
