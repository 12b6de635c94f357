package domain

import "fmt"

type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "Draft"
	OrderStatusSubmitted OrderStatus = "Submitted"
	OrderStatusApproved  OrderStatus = "Approved"
	OrderStatusRejected  OrderStatus = "Rejected"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// orderTransitions is the single source of truth for legal status moves.
// Cancelled is reachable from every non-terminal state; Rejected only
// follows Submitted. Completed, Cancelled and Rejected are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusDraft:     {OrderStatusSubmitted, OrderStatusCancelled},
	OrderStatusSubmitted: {OrderStatusApproved, OrderStatusRejected, OrderStatusCancelled},
	OrderStatusApproved:  {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusRejected:  {},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	next, ok := orderTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s to target is legal.
// Re-asserting the current status is always allowed so that retried
// requests stay idempotent.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if s == target {
		return true
	}
	for _, next := range orderTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown order status %q", raw)
	}
	return s, nil
}
