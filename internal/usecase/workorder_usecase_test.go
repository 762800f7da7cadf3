package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"fieldserve/internal/domain/entities"
	mock_interfaces "fieldserve/internal/usecase/interfaces/mocks"
)

func newWorkOrderFixture(t *testing.T) (*mock_interfaces.MockIWorkOrderRepository, *mock_interfaces.MockISettingsSource, *WorkOrderUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	settings := mock_interfaces.NewMockISettingsSource(ctrl)
	return repo, settings, NewWorkOrderUseCase(repo, settings, nil)
}

func TestWorkOrderUseCase_CreateDraft(t *testing.T) {
	t.Run("invalid company id", func(t *testing.T) {
		_, _, uc := newWorkOrderFixture(t)
		_, err := uc.CreateDraft(context.Background(), "  ", entities.WorkOrder{})
		if !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("invalid pricing model", func(t *testing.T) {
		_, _, uc := newWorkOrderFixture(t)
		_, err := uc.CreateDraft(context.Background(), "company-1", entities.WorkOrder{PricingModel: "HOURLY"})
		if !errors.Is(err, ErrInvalidPricingModel) {
			t.Fatalf("expected ErrInvalidPricingModel, got %v", err)
		}
	})

	t.Run("invalid line item", func(t *testing.T) {
		_, _, uc := newWorkOrderFixture(t)
		draft := entities.WorkOrder{Items: []entities.LineItem{
			{Name: "x", LineType: "consumable", Quantity: decimal.NewFromInt(1)},
		}}
		_, err := uc.CreateDraft(context.Background(), "company-1", draft)
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("create success derives identity and totals", func(t *testing.T) {
		repo, settings, uc := newWorkOrderFixture(t)

		tenantSettings := entities.DefaultSettings("company-1")
		tenantSettings.DefaultTaxRate = decimal.RequireFromString("8")
		tenantSettings.PartsMarkupPercent = decimal.RequireFromString("10")
		settings.EXPECT().Get(gomock.Any(), "company-1").Return(tenantSettings, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if w.ID == "" || w.CompanyID != "company-1" {
					t.Fatalf("unexpected identity: %+v", w)
				}
				if w.Status != entities.StatusDraft {
					t.Fatalf("expected draft, got %s", w.Status)
				}
				if !strings.HasPrefix(w.QuoteNumber, "Q-") {
					t.Fatalf("unexpected quote number %q", w.QuoteNumber)
				}
				if w.CreatedAt.IsZero() || w.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				// 2x100 labor + 1x50 material at 10% markup, 8% tax.
				if !w.Subtotal.Equal(decimal.RequireFromString("255")) ||
					!w.TaxAmount.Equal(decimal.RequireFromString("20.40")) ||
					!w.TotalAmount.Equal(decimal.RequireFromString("275.40")) {
					t.Fatalf("unexpected totals: %s / %s / %s", w.Subtotal, w.TaxAmount, w.TotalAmount)
				}
				return w, nil
			})

		draft := entities.WorkOrder{
			CustomerID:   "cust-1",
			Title:        "Water heater replacement",
			PricingModel: entities.PricingTimeMaterials,
			Items: []entities.LineItem{
				{Name: "Labor", LineType: entities.LineTypeLabor, Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
				{Name: "Heater", LineType: entities.LineTypeMaterial, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(50)},
			},
		}
		created, err := uc.CreateDraft(context.Background(), " company-1 ", draft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != entities.StatusDraft {
			t.Fatalf("expected draft, got %s", created.Status)
		}
	})

	t.Run("defaults to time and materials", func(t *testing.T) {
		repo, settings, uc := newWorkOrderFixture(t)
		settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if w.PricingModel != entities.PricingTimeMaterials {
					t.Fatalf("expected default pricing model, got %s", w.PricingModel)
				}
				return w, nil
			})

		if _, err := uc.CreateDraft(context.Background(), "company-1", entities.WorkOrder{CustomerID: "c", Title: "t"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_UpdateDraft(t *testing.T) {
	base := entities.WorkOrder{
		ID:           "wo-1",
		CompanyID:    "company-1",
		QuoteNumber:  "Q-2026-abc",
		Status:       entities.StatusDraft,
		PricingModel: entities.PricingFlatRate,
	}

	t.Run("not found", func(t *testing.T) {
		repo, _, uc := newWorkOrderFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-404").Return(entities.WorkOrder{}, nil)

		_, err := uc.UpdateDraft(context.Background(), "company-1", entities.WorkOrder{ID: "wo-404", PricingModel: entities.PricingFlatRate})
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("only drafts are editable", func(t *testing.T) {
		repo, _, uc := newWorkOrderFixture(t)
		sent := base
		sent.Status = entities.StatusSent
		repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(sent, nil)

		_, err := uc.UpdateDraft(context.Background(), "company-1", entities.WorkOrder{ID: "wo-1", PricingModel: entities.PricingFlatRate})
		if !errors.Is(err, ErrNotEditable) {
			t.Fatalf("expected ErrNotEditable, got %v", err)
		}
	})

	t.Run("identity and status are not client-writable", func(t *testing.T) {
		repo, settings, uc := newWorkOrderFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(base, nil)
		settings.EXPECT().Get(gomock.Any(), "company-1").Return(entities.DefaultSettings("company-1"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), true).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder, _ bool) (entities.WorkOrder, error) {
				if w.QuoteNumber != "Q-2026-abc" || w.Status != entities.StatusDraft || w.CompanyID != "company-1" {
					t.Fatalf("protected fields overwritten: %+v", w)
				}
				if !w.Subtotal.Equal(decimal.RequireFromString("750")) {
					t.Fatalf("totals not refreshed, got %s", w.Subtotal)
				}
				return w, nil
			})

		edit := entities.WorkOrder{
			ID:             "wo-1",
			QuoteNumber:    "Q-9999-forged",
			Status:         entities.StatusApproved,
			PricingModel:   entities.PricingFlatRate,
			FlatRateAmount: decimal.RequireFromString("750"),
		}
		if _, err := uc.UpdateDraft(context.Background(), "company-1", edit); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		repo, _, uc := newWorkOrderFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-404").Return(entities.WorkOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "company-1", "wo-404")
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("repo failure wraps", func(t *testing.T) {
		repo, _, uc := newWorkOrderFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "company-1", "wo-1").Return(entities.WorkOrder{}, errors.New("db down"))

		_, err := uc.GetByID(context.Background(), "company-1", "wo-1")
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}

func TestNewQuoteNumber(t *testing.T) {
	now := orchNow
	got := newQuoteNumber(now, "9f3b21aa-0000-0000-0000-000000000000")
	if got != "Q-2026-9f3b21aa" {
		t.Fatalf("unexpected quote number %q", got)
	}
}
