package gateway

import (
	"context"

	"github.com/jaykakkad82/mypayments/internal/domain/entity"
)

// Outcome is the result of a gateway payment attempt
type Outcome string

// Gateway outcomes
const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailed  Outcome = "FAILED"
)

// PaymentGateway is the abstraction point for the external payment processor.
// A FAILED outcome is a normal state transition, not an error; the error
// return is reserved for transport-level trouble reaching the processor.
// Lifecycle logic depends only on this interface so a real integration can be
// substituted without touching it.
type PaymentGateway interface {
	Attempt(ctx context.Context, payment *entity.Payment) (Outcome, error)
}
