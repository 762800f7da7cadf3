package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/domain/pricing"
	"fieldserve/internal/domain/status"
	"fieldserve/internal/usecase/interfaces"
	"fieldserve/pkg/metrics"
)

var (
	ErrInvalidCompanyID   = errors.New("invalid company id")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrCaptureRequired    = errors.New("transition requires a capture payload")
	ErrTransitionClosed   = errors.New("transition already committed or aborted")
	ErrPersistenceFailure = errors.New("persistence failure")
)

// TransitionState tracks one in-flight transition request.

type TransitionState string

const (
	TransitionGuardChecked    TransitionState = "GuardChecked"
	TransitionAwaitingCapture TransitionState = "AwaitingCapture"
	TransitionCommitting      TransitionState = "Committing"
	TransitionCommitted       TransitionState = "Committed"
	TransitionAborted         TransitionState = "Aborted"
)

// ITransitionOrchestrator sequences guard checks, capture collection, totals
// refresh, persistence and event fan-out for status changes.

type ITransitionOrchestrator interface {
	Begin(ctx context.Context, companyID, workOrderID string, requested entities.Status) (*Transition, error)
}

type TransitionOrchestrator struct {
	workOrders interfaces.IWorkOrderRepository
	settings   interfaces.ISettingsSource
	dispatcher interfaces.IEventDispatcher
	gateway    interfaces.IPaymentGateway
	logger     *zap.Logger

	// now is swappable for tests.
	now func() time.Time
}

var _ ITransitionOrchestrator = (*TransitionOrchestrator)(nil)

func NewTransitionOrchestrator(
	workOrders interfaces.IWorkOrderRepository,
	settings interfaces.ISettingsSource,
	dispatcher interfaces.IEventDispatcher,
	gateway interfaces.IPaymentGateway,
	logger *zap.Logger,
) *TransitionOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TransitionOrchestrator{
		workOrders: workOrders,
		settings:   settings,
		dispatcher: dispatcher,
		gateway:    gateway,
		logger:     logger,
		now:        time.Now,
	}
}

// Transition is one suspended or committing status-change request. It holds
// no locks and performs no writes until Commit; an abandoned transition
// simply leaves the work order untouched.
type Transition struct {
	orch      *TransitionOrchestrator
	state     TransitionState
	workOrder entities.WorkOrder
	requested entities.Status
	decision  status.Decision
	capture   status.Payload
}

// Begin loads the tenant's work order and runs the guard. No write happens
// here: if the transition needs captured data the returned Transition is
// suspended in AwaitingCapture and the work order's prior status stays
// authoritative until the payload arrives.
func (o *TransitionOrchestrator) Begin(ctx context.Context, companyID, workOrderID string, requested entities.Status) (*Transition, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return nil, ErrInvalidWorkOrderID
	}

	wo, err := o.workOrders.GetByID(ctx, companyID, workOrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if wo.ID == "" {
		return nil, ErrWorkOrderNotFound
	}

	decision, err := status.Check(wo.Status, requested)
	if err != nil {
		metrics.RecordTransition(string(wo.Status), string(requested), "rejected")
		return nil, err
	}

	t := &Transition{
		orch:      o,
		state:     TransitionGuardChecked,
		workOrder: wo,
		requested: requested,
		decision:  decision,
	}
	if decision.RequiresCapture && !decision.NoOp {
		t.state = TransitionAwaitingCapture
	}
	return t, nil
}

func (t *Transition) State() TransitionState { return t.state }

// CaptureKind names the payload this transition is waiting for; empty when
// the transition commits directly.
func (t *Transition) CaptureKind() status.CaptureKind {
	if !t.decision.RequiresCapture {
		return ""
	}
	return t.decision.CaptureKind
}

// RequiredFields is the declarative capture contract for the caller's form.
func (t *Transition) RequiredFields() []string {
	return status.RequiredFields(t.CaptureKind())
}

// Supply resumes a suspended transition with the captured payload. An
// incomplete payload leaves the transition in AwaitingCapture so the caller
// can retry with the missing fields; nothing has been written either way.
func (t *Transition) Supply(p status.Payload) error {
	switch t.state {
	case TransitionAwaitingCapture, TransitionCommitting:
	case TransitionCommitted, TransitionAborted:
		return ErrTransitionClosed
	default:
		// Direct transitions carry no capture; accept and ignore.
		return nil
	}

	if err := status.Validate(t.decision.CaptureKind, p, t.orch.now()); err != nil {
		metrics.RecordTransition(string(t.workOrder.Status), string(t.requested), "incomplete")
		return err
	}
	t.capture = p
	t.state = TransitionCommitting
	return nil
}

// CommitInput carries the optional wholesale replacement of child
// collections alongside the commit.
type CommitInput struct {
	ReplaceChildren bool
	Items           []entities.LineItem
	Milestones      []entities.Milestone
}

// Commit recomputes totals, persists the whole update atomically, stamps the
// status-specific timestamp exactly once and fans out the domain event. On a
// persistence failure the transition aborts with no partial write and the
// caller may retry the same inputs idempotently.
func (t *Transition) Commit(ctx context.Context, input CommitInput) (entities.WorkOrder, error) {
	switch t.state {
	case TransitionCommitted, TransitionAborted:
		return entities.WorkOrder{}, ErrTransitionClosed
	case TransitionAwaitingCapture:
		return entities.WorkOrder{}, fmt.Errorf("%w: %s", ErrCaptureRequired, t.decision.CaptureKind)
	}

	o := t.orch
	from := t.workOrder.Status

	if t.decision.NoOp {
		// Same-status request: no timestamp, no event, no write.
		t.state = TransitionCommitted
		metrics.RecordTransition(string(from), string(t.requested), "noop")
		return t.workOrder, nil
	}

	now := o.now().UTC()
	wo := t.workOrder
	final := status.FinalTarget(t.requested, t.decision.CaptureKind, t.capture)

	if input.ReplaceChildren {
		wo.Items = input.Items
		wo.Milestones = input.Milestones
	}
	applyCapture(&wo, t.decision.CaptureKind, t.capture)

	settings, err := o.settings.Get(ctx, wo.CompanyID)
	if err != nil {
		o.logger.Warn("settings lookup failed, using defaults",
			zap.String("company_id", wo.CompanyID), zap.Error(err))
		settings = entities.DefaultSettings(wo.CompanyID)
	}

	totals, err := pricing.Calculate(wo.PricingModel, pricing.InputFromWorkOrder(&wo), settings)
	if err != nil {
		t.state = TransitionAborted
		metrics.RecordTransition(string(from), string(final), "aborted")
		return entities.WorkOrder{}, err
	}
	wo.Subtotal = totals.Subtotal
	wo.TaxRate = totals.TaxRate
	wo.TaxAmount = totals.TaxAmount
	wo.TotalAmount = totals.TotalAmount

	wo.Status = final
	wo.UpdatedAt = now
	if ts := wo.TransitionTimestamp(final); ts != nil && *ts == nil {
		stamp := now
		*ts = &stamp
	}

	t.state = TransitionCommitting
	updated, err := o.workOrders.Update(ctx, wo, input.ReplaceChildren)
	if err != nil {
		t.state = TransitionAborted
		metrics.RecordTransition(string(from), string(final), "aborted")
		o.logger.Error("transition persistence failed",
			zap.String("work_order_id", wo.ID),
			zap.String("from", string(from)),
			zap.String("to", string(final)),
			zap.Error(err))
		return entities.WorkOrder{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	t.state = TransitionCommitted
	t.workOrder = updated
	metrics.RecordTransition(string(from), string(final), "committed")
	o.logger.Info("work order transition committed",
		zap.String("work_order_id", updated.ID),
		zap.String("company_id", updated.CompanyID),
		zap.String("from", string(from)),
		zap.String("to", string(final)))

	// Everything past this point is best effort: the transition is committed
	// and stays committed.
	if o.dispatcher != nil {
		o.dispatcher.StatusChanged(ctx, updated, from, final)
	}
	t.initiateDepositCharge(ctx, updated, final)

	return updated, nil
}

// ScheduleNow reports the advisory scheduling fork chosen during approval.
// Declining it never affects the committed status.
func (t *Transition) ScheduleNow() bool {
	return t.decision.CaptureKind == status.CaptureApproval && t.capture.ScheduleNow
}

func (t *Transition) initiateDepositCharge(ctx context.Context, wo entities.WorkOrder, final entities.Status) {
	o := t.orch
	if o.gateway == nil || final != entities.StatusApproved {
		return
	}
	if t.capture.DepositAmount == nil || !t.capture.DepositAmount.IsPositive() {
		return
	}

	chargeID, providerStatus, err := o.gateway.CreateDepositCharge(ctx, wo.CompanyID, wo.ID, *t.capture.DepositAmount, t.capture.DepositMethod)
	if err != nil {
		o.logger.Error("deposit charge failed",
			zap.String("work_order_id", wo.ID),
			zap.String("deposit_method", t.capture.DepositMethod),
			zap.Error(err))
		return
	}
	o.logger.Info("deposit charge initiated",
		zap.String("work_order_id", wo.ID),
		zap.String("provider_charge_id", chargeID),
		zap.String("provider_status", providerStatus))
}

// applyCapture merges the capture-derived fields into the aggregate. Only the
// fields owned by the capture kind are touched.
func applyCapture(wo *entities.WorkOrder, kind status.CaptureKind, p status.Payload) {
	switch kind {
	case status.CaptureSend:
		wo.DeliveryMethod = p.DeliveryMethod
		wo.CustomMessage = p.CustomMessage

	case status.CapturePresented:
		wo.PresentedBy = p.PresentedBy
		wo.CustomerReaction = p.CustomerReaction
		wo.PresentationNextSteps = p.NextSteps
		wo.PresentationNotes = p.PresentationNotes

	case status.CaptureApproval:
		wo.DepositAmount = p.DepositAmount
		wo.DepositMethod = p.DepositMethod
		wo.ApprovalNotes = p.ApprovalNotes

	case status.CaptureRejection:
		wo.RejectionReason = string(p.Reason)
		wo.CompetitorName = p.CompetitorName
		wo.RejectionNotes = p.RejectionNotes

	case status.CaptureChanges:
		wo.ChangeTypes = p.ChangeTypes
		wo.ChangeDetails = p.ChangeDetails
		wo.ChangeUrgency = p.ChangeUrgency
		if p.FollowUpDate != nil {
			wo.FollowUpDate = p.FollowUpDate
		}

	case status.CaptureFollowUp:
		wo.FollowUpDate = p.FollowUpDate
		wo.FollowUpMethod = p.FollowUpMethod
		wo.FollowUpReminderMins = p.FollowUpReminderMins
		wo.FollowUpReason = p.FollowUpReason
		wo.FollowUpNotes = p.FollowUpNotes

	case status.CaptureExpiredAction:
		wo.ExpiredNotes = p.ExpiredNotes
		switch p.Action {
		case status.ExpiredActionRenew:
			wo.ExpirationDate = p.NewExpirationDate
		case status.ExpiredActionFollowUp:
			if p.FollowUpDate != nil {
				wo.FollowUpDate = p.FollowUpDate
			}
		case status.ExpiredActionArchive:
			wo.Archived = true
		}
	}
}
