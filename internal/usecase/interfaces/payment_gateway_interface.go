package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The orchestrator uses it to initiate the deposit charge captured during
// quote approval. The charge runs after the transition has committed and is
// best effort: a gateway failure is logged, never unwound into the state
// machine.
type IPaymentGateway interface {
	CreateDepositCharge(ctx context.Context, companyID, workOrderID string, amount decimal.Decimal, method string) (providerChargeID string, providerStatus string, err error)
}
