// Package pricing computes work order totals for every pricing model. All
// functions are pure; money is decimal throughout and rounded to 2 places
// exactly once, after summation, using round-half-up. Rounding line-by-line
// and then summing compounds error, so it never happens here.
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fieldserve/internal/domain/entities"
)

var (
	ErrUnknownPricingModel = errors.New("unknown pricing model")
	ErrNegativeAmount      = errors.New("negative amount")
	ErrMilestoneUnpriced   = errors.New("milestone has neither amount nor percentage")
)

var oneHundred = decimal.NewFromInt(100)

// Totals is the financial outcome of a calculation. The invariant
// TotalAmount == Subtotal + TaxAmount holds bit-for-bit after rounding.
type Totals struct {
	Subtotal    decimal.Decimal
	TaxRate     decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
}

// Input carries the model parameters for a calculation. Only the fields
// relevant to the selected model are read.
type Input struct {
	Items []entities.LineItem

	FlatRateAmount decimal.Decimal

	UnitCount decimal.Decimal
	UnitPrice decimal.Decimal

	Percentage           decimal.Decimal
	PercentageBaseAmount decimal.Decimal

	RecurringRate decimal.Decimal

	Milestones          []entities.Milestone
	MilestoneBaseAmount decimal.Decimal
}

// InputFromWorkOrder builds a calculation input from the aggregate's current
// fields and children.
func InputFromWorkOrder(w *entities.WorkOrder) Input {
	return Input{
		Items:                w.Items,
		FlatRateAmount:       w.FlatRateAmount,
		UnitCount:            w.UnitCount,
		UnitPrice:            w.UnitPrice,
		Percentage:           w.Percentage,
		PercentageBaseAmount: w.PercentageBaseAmount,
		RecurringRate:        w.RecurringRate,
		Milestones:           w.Milestones,
		MilestoneBaseAmount:  w.MilestoneBaseAmount,
	}
}

// Calculate derives totals for the given model using the tenant settings for
// tax rate and markup. Settings are read-only here; the caller owns fetching
// them for the right tenant.
func Calculate(model entities.PricingModel, in Input, settings entities.Settings) (Totals, error) {
	subtotal, err := rawSubtotal(model, in, settings)
	if err != nil {
		return Totals{}, err
	}
	if subtotal.IsNegative() {
		return Totals{}, fmt.Errorf("%w: subtotal %s", ErrNegativeAmount, subtotal)
	}
	return Recompute(round2(subtotal), settings.DefaultTaxRate), nil
}

// Recompute builds tax and total from an already-rounded subtotal. This is
// also the recovery path when an upstream total would violate the datastore's
// total = subtotal + tax constraint: tax is always rederived from the rounded
// subtotal, never trusted from the caller.
func Recompute(roundedSubtotal, taxRate decimal.Decimal) Totals {
	tax := round2(roundedSubtotal.Mul(taxRate).Div(oneHundred))
	return Totals{
		Subtotal:    roundedSubtotal,
		TaxRate:     taxRate,
		TaxAmount:   tax,
		TotalAmount: roundedSubtotal.Add(tax),
	}
}

func rawSubtotal(model entities.PricingModel, in Input, settings entities.Settings) (decimal.Decimal, error) {
	switch model {
	case entities.PricingTimeMaterials:
		return timeMaterialsSubtotal(in.Items, settings)

	case entities.PricingFlatRate:
		if in.FlatRateAmount.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: flat rate %s", ErrNegativeAmount, in.FlatRateAmount)
		}
		return in.FlatRateAmount, nil

	case entities.PricingUnit:
		if in.UnitCount.IsNegative() || in.UnitPrice.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: unit pricing", ErrNegativeAmount)
		}
		return in.UnitCount.Mul(in.UnitPrice), nil

	case entities.PricingPercentage:
		if in.Percentage.IsNegative() || in.PercentageBaseAmount.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: percentage pricing", ErrNegativeAmount)
		}
		return in.Percentage.Div(oneHundred).Mul(in.PercentageBaseAmount), nil

	case entities.PricingRecurring:
		// Per-cycle preview only: one interval's charge, never a multi-cycle
		// sum.
		if in.RecurringRate.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: recurring rate %s", ErrNegativeAmount, in.RecurringRate)
		}
		return in.RecurringRate, nil

	case entities.PricingMilestone:
		return milestoneSubtotal(in.Milestones, in.MilestoneBaseAmount)
	}

	return decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownPricingModel, model)
}

func timeMaterialsSubtotal(items []entities.LineItem, settings entities.Settings) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range items {
		if item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: line %q", ErrNegativeAmount, item.Name)
		}
		line := item.Quantity.Mul(item.UnitPrice)
		if item.LineType.Markupable() {
			markup := markupPercent(item.LineType, settings)
			line = line.Mul(decimal.NewFromInt(1).Add(markup.Div(oneHundred)))
		}
		sum = sum.Add(line)
	}
	return sum, nil
}

// markupPercent resolves the uplift for a cost-basis line. Material lines use
// the material rate when the tenant set one, otherwise the parts rate covers
// both.
func markupPercent(t entities.LineType, settings entities.Settings) decimal.Decimal {
	if t == entities.LineTypeMaterial && !settings.MaterialMarkupPercent.IsZero() {
		return settings.MaterialMarkupPercent
	}
	return settings.PartsMarkupPercent
}

func milestoneSubtotal(milestones []entities.Milestone, baseAmount decimal.Decimal) (decimal.Decimal, error) {
	if baseAmount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: milestone base %s", ErrNegativeAmount, baseAmount)
	}
	amounts := decimal.Zero
	percentages := decimal.Zero
	for _, m := range milestones {
		if m.Amount == nil && m.Percentage == nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrMilestoneUnpriced, m.Name)
		}
		if m.Amount != nil {
			if m.Amount.IsNegative() {
				return decimal.Zero, fmt.Errorf("%w: milestone %q", ErrNegativeAmount, m.Name)
			}
			amounts = amounts.Add(*m.Amount)
		}
		if m.Percentage != nil {
			if m.Percentage.IsNegative() {
				return decimal.Zero, fmt.Errorf("%w: milestone %q", ErrNegativeAmount, m.Name)
			}
			percentages = percentages.Add(*m.Percentage)
		}
	}
	return amounts.Add(percentages.Div(oneHundred).Mul(baseAmount)), nil
}

// round2 rounds half-up to 2 decimal places. decimal.Round is half away from
// zero, which matches half-up for the non-negative money handled here.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
