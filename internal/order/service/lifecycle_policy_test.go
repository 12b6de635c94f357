package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/errors"
)

func TestLifecyclePolicy_Authorize_LegalTransitions(t *testing.T) {
	policy := NewLifecyclePolicy()

	legal := []struct {
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{domain.OrderStatusDraft, domain.OrderStatusSubmitted},
		{domain.OrderStatusDraft, domain.OrderStatusCancelled},
		{domain.OrderStatusSubmitted, domain.OrderStatusApproved},
		{domain.OrderStatusSubmitted, domain.OrderStatusRejected},
		{domain.OrderStatusSubmitted, domain.OrderStatusCancelled},
		{domain.OrderStatusApproved, domain.OrderStatusShipped},
		{domain.OrderStatusApproved, domain.OrderStatusCancelled},
		{domain.OrderStatusShipped, domain.OrderStatusCompleted},
		{domain.OrderStatusShipped, domain.OrderStatusCancelled},
	}

	for _, tc := range legal {
		assert.NoError(t, policy.Authorize(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestLifecyclePolicy_Authorize_IllegalTransitions(t *testing.T) {
	policy := NewLifecyclePolicy()

	illegal := []struct {
		from domain.OrderStatus
		to   domain.OrderStatus
	}{
		{domain.OrderStatusDraft, domain.OrderStatusApproved},
		{domain.OrderStatusDraft, domain.OrderStatusShipped},
		{domain.OrderStatusDraft, domain.OrderStatusCompleted},
		{domain.OrderStatusDraft, domain.OrderStatusRejected},
		{domain.OrderStatusSubmitted, domain.OrderStatusShipped},
		{domain.OrderStatusApproved, domain.OrderStatusDraft},
		{domain.OrderStatusShipped, domain.OrderStatusSubmitted},
	}

	for _, tc := range illegal {
		err := policy.Authorize(tc.from, tc.to)
		assert.Error(t, err, "%s -> %s", tc.from, tc.to)
		_, ok := errors.IsConflictError(err)
		assert.True(t, ok, "%s -> %s should be a conflict", tc.from, tc.to)
	}
}

func TestLifecyclePolicy_Authorize_TerminalStates(t *testing.T) {
	policy := NewLifecyclePolicy()

	for _, terminal := range []domain.OrderStatus{
		domain.OrderStatusCompleted,
		domain.OrderStatusCancelled,
		domain.OrderStatusRejected,
	} {
		assert.True(t, terminal.IsTerminal())
		err := policy.Authorize(terminal, domain.OrderStatusDraft)
		assert.Error(t, err)
		_, ok := errors.IsConflictError(err)
		assert.True(t, ok)
	}
}

func TestLifecyclePolicy_Authorize_SameStatusIsIdempotent(t *testing.T) {
	policy := NewLifecyclePolicy()

	for status := range map[domain.OrderStatus]struct{}{
		domain.OrderStatusDraft:     {},
		domain.OrderStatusSubmitted: {},
		domain.OrderStatusCompleted: {},
	} {
		assert.NoError(t, policy.Authorize(status, status))
	}
}

func TestLifecyclePolicy_Authorize_UnknownStatus(t *testing.T) {
	policy := NewLifecyclePolicy()

	err := policy.Authorize(domain.OrderStatusDraft, domain.OrderStatus("OPEN"))
	assert.Error(t, err)

	ve, ok := errors.IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)
	assert.Equal(t, "orderStatus", ve.Details[0].Field)
}
