package payment

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/rs/zerolog"
)

// Gateway creates checkout sessions for course purchases. A nil *Gateway is
// valid and means no payment gateway is configured.
type Gateway struct {
	client snap.Client
	logger zerolog.Logger
}

// Config holds payment gateway credentials
type Config struct {
	ServerKey  string
	Production bool
}

// NewGateway builds a Midtrans Snap gateway, or nil when no server key is set.
func NewGateway(cfg Config, logger zerolog.Logger) *Gateway {
	if cfg.ServerKey == "" {
		return nil
	}

	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}

	g := &Gateway{logger: logger}
	g.client.New(cfg.ServerKey, env)
	return g
}

// Checkout represents a created gateway checkout session
type Checkout struct {
	OrderID     string
	RedirectURL string
}

// CreateCheckout creates a Snap transaction for the given order. Amounts are
// converted to the gateway's integer minor unit.
func (g *Gateway) CreateCheckout(orderID string, amount float64, customerName, customerEmail string) (*Checkout, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		g.logger.Error().Str("orderId", orderID).Str("gatewayError", err.GetMessage()).Msg("Failed to create gateway checkout")
		return nil, fmt.Errorf("failed to create gateway checkout: %s", err.GetMessage())
	}

	return &Checkout{
		OrderID:     orderID,
		RedirectURL: resp.RedirectURL,
	}, nil
}
