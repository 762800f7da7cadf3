package interfaces

import (
	"context"

	"fieldserve/internal/domain/entities"
)

// IWorkOrderRepository abstracts Postgres persistence for the WorkOrder
// aggregate.
//
// Contract notes:
//   - Every call is tenant-scoped; implementations must never return or touch
//     rows belonging to another company.
//   - Update writes the whole row atomically. When replaceChildren is true the
//     line item and milestone sets are replaced wholesale in the same
//     transaction; there are no partial child patches.
//   - Update is id-keyed, so retrying the same update is idempotent.

type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, companyID, id string) (entities.WorkOrder, error)
	ListByCompany(ctx context.Context, companyID string, statuses []entities.Status) ([]entities.WorkOrder, error)
	Update(ctx context.Context, w entities.WorkOrder, replaceChildren bool) (entities.WorkOrder, error)
}
