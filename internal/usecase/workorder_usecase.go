package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/domain/pricing"
	"fieldserve/internal/usecase/interfaces"
)

var (
	ErrInvalidPricingModel = errors.New("invalid pricing model")
	ErrInvalidLineItem     = errors.New("invalid line item")
	ErrNotEditable         = errors.New("work order is not editable in its current status")
)

// IWorkOrderUseCase exposes quote CRUD around the lifecycle core. Status
// never changes here; that is the orchestrator's job. Direct field edits are
// only allowed while the quote is still a draft.

type IWorkOrderUseCase interface {
	CreateDraft(ctx context.Context, companyID string, draft entities.WorkOrder) (entities.WorkOrder, error)
	UpdateDraft(ctx context.Context, companyID string, draft entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, companyID, id string) (entities.WorkOrder, error)
	ListByCompany(ctx context.Context, companyID string, statuses []entities.Status) ([]entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo     interfaces.IWorkOrderRepository
	settings interfaces.ISettingsSource
	logger   *zap.Logger
	now      func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, settings interfaces.ISettingsSource, logger *zap.Logger) *WorkOrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkOrderUseCase{repo: repo, settings: settings, logger: logger, now: time.Now}
}

// CreateDraft creates a new quote in draft with a locally generated,
// globally-unique quote number. Because the id and number are generated
// client-side of the datastore, retrying a failed create is id-keyed and
// cannot produce duplicate records.
func (u *WorkOrderUseCase) CreateDraft(ctx context.Context, companyID string, draft entities.WorkOrder) (entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.WorkOrder{}, ErrInvalidCompanyID
	}
	if draft.PricingModel == "" {
		draft.PricingModel = entities.PricingTimeMaterials
	}
	if !draft.PricingModel.Valid() {
		return entities.WorkOrder{}, fmt.Errorf("%w: %q", ErrInvalidPricingModel, draft.PricingModel)
	}
	if err := validateItems(draft.Items); err != nil {
		return entities.WorkOrder{}, err
	}

	now := u.now().UTC()
	id := uuid.NewString()
	draft.ID = id
	draft.CompanyID = companyID
	draft.QuoteNumber = newQuoteNumber(now, id)
	draft.Status = entities.StatusDraft
	draft.Archived = false
	draft.CreatedAt = now
	draft.UpdatedAt = now

	if err := u.refreshTotals(ctx, &draft); err != nil {
		return entities.WorkOrder{}, err
	}

	created, err := u.repo.Create(ctx, draft)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	u.logger.Info("quote draft created",
		zap.String("work_order_id", created.ID),
		zap.String("company_id", created.CompanyID),
		zap.String("quote_number", created.QuoteNumber))
	return created, nil
}

// UpdateDraft applies direct field edits. Only drafts may be edited this way;
// everything after the first send must go through a transition. Line items
// and milestones are replaced wholesale and totals are always refreshed from
// scratch, so the stored row can never drift from its children.
func (u *WorkOrderUseCase) UpdateDraft(ctx context.Context, companyID string, draft entities.WorkOrder) (entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.WorkOrder{}, ErrInvalidCompanyID
	}
	id := strings.TrimSpace(draft.ID)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	existing, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if existing.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if existing.Status != entities.StatusDraft {
		return entities.WorkOrder{}, fmt.Errorf("%w: %s", ErrNotEditable, existing.Status)
	}
	if !draft.PricingModel.Valid() {
		return entities.WorkOrder{}, fmt.Errorf("%w: %q", ErrInvalidPricingModel, draft.PricingModel)
	}
	if err := validateItems(draft.Items); err != nil {
		return entities.WorkOrder{}, err
	}

	// Identity, status and timestamps are never client-writable.
	draft.CompanyID = existing.CompanyID
	draft.QuoteNumber = existing.QuoteNumber
	draft.Status = existing.Status
	draft.CreatedAt = existing.CreatedAt
	draft.UpdatedAt = u.now().UTC()

	if err := u.refreshTotals(ctx, &draft); err != nil {
		return entities.WorkOrder{}, err
	}

	updated, err := u.repo.Update(ctx, draft, true)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return updated, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, companyID, id string) (entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.WorkOrder{}, ErrInvalidCompanyID
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}

	wo, err := u.repo.GetByID(ctx, companyID, id)
	if err != nil {
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if wo.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderUseCase) ListByCompany(ctx context.Context, companyID string, statuses []entities.Status) ([]entities.WorkOrder, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	list, err := u.repo.ListByCompany(ctx, companyID, statuses)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return list, nil
}

func (u *WorkOrderUseCase) refreshTotals(ctx context.Context, wo *entities.WorkOrder) error {
	settings, err := u.settings.Get(ctx, wo.CompanyID)
	if err != nil {
		u.logger.Warn("settings lookup failed, using defaults",
			zap.String("company_id", wo.CompanyID), zap.Error(err))
		settings = entities.DefaultSettings(wo.CompanyID)
	}
	totals, err := pricing.Calculate(wo.PricingModel, pricing.InputFromWorkOrder(wo), settings)
	if err != nil {
		return err
	}
	wo.Subtotal = totals.Subtotal
	wo.TaxRate = totals.TaxRate
	wo.TaxAmount = totals.TaxAmount
	wo.TotalAmount = totals.TotalAmount
	return nil
}

func validateItems(items []entities.LineItem) error {
	for _, item := range items {
		if item.LineType != "" && !item.LineType.Valid() {
			return fmt.Errorf("%w: unknown line type %q", ErrInvalidLineItem, item.LineType)
		}
		if item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: negative quantity or price on %q", ErrInvalidLineItem, item.Name)
		}
	}
	return nil
}

// newQuoteNumber derives a human-readable number from the creation year and
// the first uuid group, e.g. Q-2026-9f3b21aa.
func newQuoteNumber(now time.Time, id string) string {
	frag := id
	if i := strings.IndexByte(id, '-'); i > 0 {
		frag = id[:i]
	}
	return fmt.Sprintf("Q-%d-%s", now.Year(), frag)
}
