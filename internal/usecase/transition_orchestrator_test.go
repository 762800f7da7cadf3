package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"fieldserve/internal/domain/entities"
	"fieldserve/internal/domain/status"
	mock_interfaces "fieldserve/internal/usecase/interfaces/mocks"
)

var orchNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type orchFixture struct {
	repo       *mock_interfaces.MockIWorkOrderRepository
	settings   *mock_interfaces.MockISettingsSource
	dispatcher *mock_interfaces.MockIEventDispatcher
	gateway    *mock_interfaces.MockIPaymentGateway
	orch       *TransitionOrchestrator
}

func newOrchFixture(t *testing.T) *orchFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &orchFixture{
		repo:       mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		settings:   mock_interfaces.NewMockISettingsSource(ctrl),
		dispatcher: mock_interfaces.NewMockIEventDispatcher(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.orch = NewTransitionOrchestrator(f.repo, f.settings, f.dispatcher, f.gateway, nil)
	f.orch.now = func() time.Time { return orchNow }
	return f
}

func sentQuote() entities.WorkOrder {
	sentAt := orchNow.Add(-72 * time.Hour)
	return entities.WorkOrder{
		ID:             "wo-1",
		CompanyID:      "company-1",
		QuoteNumber:    "Q-2026-abc",
		Status:         entities.StatusSent,
		PricingModel:   entities.PricingFlatRate,
		FlatRateAmount: decimal.RequireFromString("100"),
		SentAt:         &sentAt,
	}
}

func TestTransitionOrchestrator_Begin(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		f := newOrchFixture(t)
		_, err := f.orch.Begin(context.Background(), "  ", "wo-1", entities.StatusSent)
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("invalid work order id", func(t *testing.T) {
		f := newOrchFixture(t)
		_, err := f.orch.Begin(context.Background(), "company-1", "", entities.StatusSent)
		if !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newOrchFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-404").Return(entities.WorkOrder{}, nil)

		_, err := f.orch.Begin(context.Background(), "company-1", "wo-404", entities.StatusSent)
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("illegal transition rejected before any write", func(t *testing.T) {
		f := newOrchFixture(t)
		wo := sentQuote()
		wo.Status = entities.StatusApproved
		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(wo, nil)

		_, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusDraft)
		if !errors.Is(err, status.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("capture transition suspends", func(t *testing.T) {
		f := newOrchFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sentQuote(), nil)

		tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusRejected)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tr.State() != TransitionAwaitingCapture {
			t.Fatalf("expected AwaitingCapture, got %s", tr.State())
		}
		if tr.CaptureKind() != status.CaptureRejection {
			t.Fatalf("expected REJECTION capture, got %s", tr.CaptureKind())
		}
		if fields := tr.RequiredFields(); len(fields) != 1 || fields[0] != "reason" {
			t.Fatalf("unexpected capture contract: %v", fields)
		}
	})
}

func TestTransitionOrchestrator_IncompleteCapture(t *testing.T) {
	f := newOrchFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sentQuote(), nil)
	// No Update, no settings read, no event: the quote must stay untouched.

	tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusRejected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = tr.Supply(status.Payload{})
	if !errors.Is(err, status.ErrIncompleteCapture) {
		t.Fatalf("expected ErrIncompleteCapture, got %v", err)
	}
	if tr.State() != TransitionAwaitingCapture {
		t.Fatalf("incomplete payload must leave the transition suspended, got %s", tr.State())
	}

	if _, err := tr.Commit(context.Background(), CommitInput{}); !errors.Is(err, ErrCaptureRequired) {
		t.Fatalf("expected ErrCaptureRequired, got %v", err)
	}
}

func TestTransitionOrchestrator_CommitRejection(t *testing.T) {
	f := newOrchFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sentQuote(), nil)
	f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{}), false).DoAndReturn(
		func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) {
			if w.Status != entities.StatusRejected {
				t.Fatalf("expected rejected, got %s", w.Status)
			}
			if w.RejectionReason != string(status.ReasonWentWithCompetitor) || w.CompetitorName != "Acme HVAC" {
				t.Fatalf("capture fields not applied: %+v", w)
			}
			if w.RejectedAt == nil || !w.RejectedAt.Equal(orchNow) {
				t.Fatalf("expected rejected_at stamped with orchestrator clock, got %v", w.RejectedAt)
			}
			if !w.TotalAmount.Equal(decimal.RequireFromString("100")) {
				t.Fatalf("totals must be recomputed on commit, got %s", w.TotalAmount)
			}
			return w, nil
		})
	f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusSent, entities.StatusRejected)

	tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusRejected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.Supply(status.Payload{Reason: status.ReasonWentWithCompetitor, CompetitorName: "Acme HVAC"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	committed, err := tr.Commit(context.Background(), CommitInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.State() != TransitionCommitted {
		t.Fatalf("expected Committed, got %s", tr.State())
	}
	if committed.Status != entities.StatusRejected {
		t.Fatalf("expected rejected, got %s", committed.Status)
	}
}

func TestTransitionOrchestrator_NoOpCommit(t *testing.T) {
	f := newOrchFixture(t)
	f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sentQuote(), nil)
	// No Update and no StatusChanged: a same-status request writes nothing.

	tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusSent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.State() == TransitionAwaitingCapture {
		t.Fatalf("no-op must not demand capture")
	}

	committed, err := tr.Commit(context.Background(), CommitInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if committed.Status != entities.StatusSent {
		t.Fatalf("expected sent, got %s", committed.Status)
	}
}

func TestTransitionOrchestrator_SetOnceTimestamp(t *testing.T) {
	f := newOrchFixture(t)
	wo := sentQuote()
	wo.Status = entities.StatusFollowUp
	firstSent := *wo.SentAt

	f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(wo, nil)
	f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).DoAndReturn(
		func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) {
			if w.SentAt == nil || !w.SentAt.Equal(firstSent) {
				t.Fatalf("sent_at must be set exactly once, got %v", w.SentAt)
			}
			return w, nil
		})
	f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusFollowUp, entities.StatusSent)

	tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusSent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.Supply(status.Payload{DeliveryMethod: "email"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.Commit(context.Background(), CommitInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransitionOrchestrator_ExpiredRenew(t *testing.T) {
	t.Run("past renewal date rejected before persistence", func(t *testing.T) {
		f := newOrchFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sentQuote(), nil)

		tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusExpired)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		past := orchNow.Add(-time.Hour)
		err = tr.Supply(status.Payload{Action: status.ExpiredActionRenew, NewExpirationDate: &past})
		if !errors.Is(err, status.ErrRenewalDateNotFuture) {
			t.Fatalf("expected ErrRenewalDateNotFuture, got %v", err)
		}
		if tr.State() != TransitionAwaitingCapture {
			t.Fatalf("rejected payload must leave the transition suspended, got %s", tr.State())
		}
	})

	t.Run("renew lands on sent with new expiration", func(t *testing.T) {
		f := newOrchFixture(t)
		future := orchNow.Add(30 * 24 * time.Hour)

		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sentQuote(), nil)
		f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) {
				if w.Status != entities.StatusSent {
					t.Fatalf("renew must land on sent, got %s", w.Status)
				}
				if w.ExpirationDate == nil || !w.ExpirationDate.Equal(future) {
					t.Fatalf("expected new expiration date, got %v", w.ExpirationDate)
				}
				if w.ExpiredAt != nil {
					t.Fatalf("renewed quote must not be stamped expired")
				}
				return w, nil
			})
		f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusSent, entities.StatusSent)

		tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusExpired)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tr.Supply(status.Payload{Action: status.ExpiredActionRenew, NewExpirationDate: &future}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		committed, err := tr.Commit(context.Background(), CommitInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if committed.Status != entities.StatusSent {
			t.Fatalf("expected sent, got %s", committed.Status)
		}
	})

	t.Run("archive keeps expired and flags archived", func(t *testing.T) {
		f := newOrchFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sentQuote(), nil)
		f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) {
				if w.Status != entities.StatusExpired || !w.Archived {
					t.Fatalf("archive must land on expired+archived, got %s archived=%v", w.Status, w.Archived)
				}
				if w.ExpiredAt == nil || !w.ExpiredAt.Equal(orchNow) {
					t.Fatalf("expected expired_at stamped, got %v", w.ExpiredAt)
				}
				return w, nil
			})
		f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusSent, entities.StatusExpired)

		tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusExpired)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tr.Supply(status.Payload{Action: status.ExpiredActionArchive}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := tr.Commit(context.Background(), CommitInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTransitionOrchestrator_PersistenceFailureAborts(t *testing.T) {
	f := newOrchFixture(t)
	wo := sentQuote()
	wo.Status = entities.StatusApproved

	f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(wo, nil)
	f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).Return(entities.WorkOrder{}, errors.New("connection reset"))

	tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusScheduled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = tr.Commit(context.Background(), CommitInput{})
	if !errors.Is(err, ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got %v", err)
	}
	if tr.State() != TransitionAborted {
		t.Fatalf("expected Aborted, got %s", tr.State())
	}

	// An aborted transition is closed; the caller retries with a fresh Begin.
	if _, err := tr.Commit(context.Background(), CommitInput{}); !errors.Is(err, ErrTransitionClosed) {
		t.Fatalf("expected ErrTransitionClosed, got %v", err)
	}
}

func TestTransitionOrchestrator_ApprovalDepositCharge(t *testing.T) {
	t.Run("charge initiated after commit", func(t *testing.T) {
		f := newOrchFixture(t)
		wo := sentQuote()
		wo.Status = entities.StatusPresented
		deposit := decimal.RequireFromString("100")

		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(wo, nil)
		f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) { return w, nil })
		f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusPresented, entities.StatusApproved)
		f.gateway.EXPECT().CreateDepositCharge(gomock.Any(), "company-1", "wo-1", deposit, "card").Return("ch-1", "approved", nil)

		tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tr.Supply(status.Payload{DepositAmount: &deposit, DepositMethod: "card", ScheduleNow: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := tr.Commit(context.Background(), CommitInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tr.ScheduleNow() {
			t.Fatalf("schedule_now fork must be reported")
		}
	})

	t.Run("gateway failure never unwinds the commit", func(t *testing.T) {
		f := newOrchFixture(t)
		wo := sentQuote()
		wo.Status = entities.StatusPresented
		deposit := decimal.RequireFromString("50")

		f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(wo, nil)
		f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) { return w, nil })
		f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusPresented, entities.StatusApproved)
		f.gateway.EXPECT().CreateDepositCharge(gomock.Any(), "company-1", "wo-1", deposit, "cash").Return("", "", errors.New("provider down"))

		tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := tr.Supply(status.Payload{DepositAmount: &deposit, DepositMethod: "cash"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		committed, err := tr.Commit(context.Background(), CommitInput{})
		if err != nil {
			t.Fatalf("commit must survive a gateway failure, got %v", err)
		}
		if committed.Status != entities.StatusApproved {
			t.Fatalf("expected approved, got %s", committed.Status)
		}
	})
}

func TestTransitionOrchestrator_SettingsFailureFallsBack(t *testing.T) {
	f := newOrchFixture(t)
	wo := sentQuote()
	wo.Status = entities.StatusApproved

	f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(wo, nil)
	f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.Settings{}, errors.New("settings store down"))
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).DoAndReturn(
		func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) {
			// Default settings carry no tax.
			if !w.TaxAmount.IsZero() || !w.TotalAmount.Equal(decimal.RequireFromString("100")) {
				t.Fatalf("expected default-settings totals, got tax=%s total=%s", w.TaxAmount, w.TotalAmount)
			}
			return w, nil
		})
	f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusApproved, entities.StatusScheduled)

	tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusScheduled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.Commit(context.Background(), CommitInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTransitionOrchestrator_ReplaceChildrenOnCommit(t *testing.T) {
	f := newOrchFixture(t)
	wo := sentQuote()
	wo.PricingModel = entities.PricingTimeMaterials

	newItems := []entities.LineItem{
		{Name: "Labor", LineType: entities.LineTypeLabor, Quantity: decimal.RequireFromString("2"), UnitPrice: decimal.RequireFromString("100")},
	}

	f.repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(wo, nil)
	f.settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), true).DoAndReturn(
		func(_ context.Context, w entities.WorkOrder, replaceChildren bool) (entities.WorkOrder, error) {
			if len(w.Items) != 1 || !w.Subtotal.Equal(decimal.RequireFromString("200")) {
				t.Fatalf("expected replaced items to drive totals, got %d items subtotal %s", len(w.Items), w.Subtotal)
			}
			return w, nil
		})
	f.dispatcher.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), entities.StatusSent, entities.StatusPresented)

	tr, err := f.orch.Begin(context.Background(), "company-1", "wo-1", entities.StatusPresented)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := tr.Supply(status.Payload{PresentedBy: "tech-1", CustomerReaction: "warm", NextSteps: "follow up"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tr.Commit(context.Background(), CommitInput{ReplaceChildren: true, Items: newItems}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
