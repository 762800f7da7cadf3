package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"

	"fieldserve/internal/usecase/interfaces"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing mercado pago access token")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway initiates deposit charges against Mercado Pago. Mock
// mode swaps the provider for a local approved response so the lifecycle can
// be exercised end to end without credentials.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateDepositCharge(ctx context.Context, companyID, workOrderID string, amount decimal.Decimal, method string) (string, string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock deposit charge work_order_id=%s amount=%s provider_payment_id=%s", workOrderID, amount.StringFixed(2), id)
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}

	req := payment.Request{
		TransactionAmount: amount.InexactFloat64(),
		Description:       fmt.Sprintf("Deposit for work order %s", workOrderID),
		ExternalReference: workOrderID,
		Metadata: map[string]any{
			"company_id":     companyID,
			"work_order_id":  workOrderID,
			"deposit_method": method,
		},
	}
	if id := providerMethodID(method); id != "" {
		req.PaymentMethodID = id
	}

	log.Printf("[payment][gateway] deposit charge start work_order_id=%s amount=%s", workOrderID, amount.StringFixed(2))
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return "", "", err
	}
	log.Printf("[payment][gateway] deposit charge success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, nil
}

// providerMethodID maps the captured deposit method onto a Mercado Pago
// payment method id where one exists; cash and check stay provider-less.
func providerMethodID(method string) string {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "card", "credit_card":
		return "master"
	case "pix":
		return "pix"
	}
	return ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
