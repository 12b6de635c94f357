package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/errors"
	"github.com/lglucin/didero-takehome/internal/testutil"
)

func TestOrderForm_SelectSupplier_ClearsItem(t *testing.T) {
	form := NewOrderForm()
	form.SelectSupplier(testutil.NewTestSupplier(1))
	form.SelectItem(testutil.NewTestItem(10, 1))
	require.NotNil(t, form.Item)

	form.SelectSupplier(testutil.NewTestSupplier(2))
	assert.Nil(t, form.Item, "changing supplier must clear the item selection")
}

func TestOrderForm_SelectSupplier_SameSupplierKeepsItem(t *testing.T) {
	form := NewOrderForm()
	form.SelectSupplier(testutil.NewTestSupplier(1))
	form.SelectItem(testutil.NewTestItem(10, 1))

	form.SelectSupplier(testutil.NewTestSupplier(1))
	assert.NotNil(t, form.Item)
}

func TestOrderForm_Build(t *testing.T) {
	form := NewOrderForm()
	form.SelectSupplier(testutil.NewTestSupplier(1))
	form.SelectItem(testutil.NewTestItem(10, 1))
	form.Quantity = 3
	form.InternalNotes = "note"

	order, err := form.Build()
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDraft, order.OrderStatus)
	assert.Equal(t, 3, order.Items[0].Quantity)
	require.NotNil(t, order.InternalNotes)
	assert.Equal(t, "note", *order.InternalNotes)
	assert.Nil(t, order.VendorNotes)
}

func TestOrderForm_Build_WithoutSelections(t *testing.T) {
	form := NewOrderForm()

	order, err := form.Build()
	assert.Nil(t, order)

	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 2) // supplier and item missing, default quantity is valid
}
