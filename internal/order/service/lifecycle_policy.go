package service

import (
	"fmt"

	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/errors"
)

// LifecyclePolicy decides whether a requested status change is permitted.
// The status set is closed; the legal moves live in the domain transition
// table so client and API share one definition.
type LifecyclePolicy struct{}

func NewLifecyclePolicy() *LifecyclePolicy {
	return &LifecyclePolicy{}
}

// Authorize returns nil when the order may move from current to requested.
// An unknown requested status is a validation error; a known but
// disallowed transition is a conflict with the order's current state.
func (p *LifecyclePolicy) Authorize(current, requested domain.OrderStatus) error {
	if !requested.IsValid() {
		msg := fmt.Sprintf("unknown order status %q", requested)
		return errors.NewValidationError(msg, errors.ValidationDetail{
			Field:   "orderStatus",
			Message: msg,
		})
	}

	if !current.CanTransitionTo(requested) {
		return errors.NewConflictError(
			fmt.Sprintf("order status cannot change from %s to %s", current, requested),
		)
	}

	return nil
}
