package gateway

import (
	"context"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
	coreport "github.com/jaykakkad82/mypayments/internal/domain/port/core"
	gatewayport "github.com/jaykakkad82/mypayments/internal/domain/port/gateway"
)

// SimulatedGateway is the reference gateway: every attempt succeeds.
// A production integration replaces this behind the same interface without
// touching lifecycle logic.
type SimulatedGateway struct {
	logger coreport.Logger
}

// NewSimulatedGateway creates the always-succeeds simulated gateway
func NewSimulatedGateway(logger coreport.Logger) gatewayport.PaymentGateway {
	return &SimulatedGateway{logger: logger}
}

// Attempt simulates a gateway charge. Always succeeds.
func (g *SimulatedGateway) Attempt(ctx context.Context, payment *entity.Payment) (gatewayport.Outcome, error) {
	g.logger.Debug("Simulated gateway attempt", map[string]any{
		"transaction_id": payment.TransactionID,
		"reference_id":   payment.ReferenceID,
	})
	return gatewayport.OutcomeSuccess, nil
}
