package workflow

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lglucin/didero-takehome/internal/catalog"
	"github.com/lglucin/didero-takehome/internal/domain"
	"github.com/lglucin/didero-takehome/internal/errors"
	ordercontroller "github.com/lglucin/didero-takehome/internal/order/controller"
	"github.com/lglucin/didero-takehome/internal/order/repository"
	"github.com/lglucin/didero-takehome/internal/order/service"
	"github.com/lglucin/didero-takehome/internal/server"
)

// newTestServer runs the real router over isolated in-memory stores so
// the client is exercised end to end.
func newTestServer(t *testing.T) *Client {
	t.Helper()

	logger := zap.NewNop()
	orderCtrl := ordercontroller.NewOrderController(
		repository.NewInMemoryOrderRepository(),
		service.NewLifecyclePolicy(),
		logger,
	)
	catalogCtrl := catalog.NewController(catalog.NewSeededRepository(), logger)

	srv := httptest.NewServer(server.NewRouter(orderCtrl, catalogCtrl, logger))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, logger)
}

func TestClient_ListOrders_Empty(t *testing.T) {
	client := newTestServer(t)

	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClient_CreateListGetFlow(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	suppliers, err := client.ListSuppliers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, suppliers)

	items, err := client.ListSupplierItems(ctx, suppliers[0].ID)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	form := NewOrderForm()
	form.SelectSupplier(&suppliers[0])
	form.SelectItem(&items[0])
	form.Quantity = 4
	form.InternalNotes = "created from test"

	created, err := form.Submit(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDraft, created.OrderStatus)
	require.Len(t, created.Items, 1)
	assert.Equal(t, items[0].Price, created.Items[0].Price)

	orders, err := client.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)

	fetched, err := client.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, created.PONumber, fetched.PONumber)
}

func TestClient_GetOrder_MissingIsNilNotError(t *testing.T) {
	client := newTestServer(t)

	order, err := client.GetOrder(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestClient_ChangeStatus(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	created := createDraftOrder(t, client)

	updated, err := client.ChangeStatus(ctx, created.ID, domain.OrderStatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusSubmitted, updated.OrderStatus)
	assert.Equal(t, created.Items, updated.Items)
}

func TestClient_ChangeStatus_IllegalTransition(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	created := createDraftOrder(t, client)

	_, err := client.ChangeStatus(ctx, created.ID, domain.OrderStatusCompleted)
	require.Error(t, err)

	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)

	// Stored data is untouched on failure.
	fetched, err := client.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDraft, fetched.OrderStatus)
}

func TestClient_PatchOrder_Notes(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	created := createDraftOrder(t, client)

	notes := "call before delivery"
	merged, err := client.PatchOrder(ctx, created.ID, domain.OrderPatch{VendorNotes: &notes})
	require.NoError(t, err)
	require.NotNil(t, merged.VendorNotes)
	assert.Equal(t, notes, *merged.VendorNotes)
	assert.Equal(t, created.OrderStatus, merged.OrderStatus)
}

func TestClient_PatchOrder_NotFound(t *testing.T) {
	client := newTestServer(t)

	notes := "x"
	_, err := client.PatchOrder(context.Background(), 424242, domain.OrderPatch{VendorNotes: &notes})
	require.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestClient_DeleteOrder(t *testing.T) {
	client := newTestServer(t)
	ctx := context.Background()

	created := createDraftOrder(t, client)

	removed, err := client.DeleteOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	fetched, err := client.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	_, err = client.DeleteOrder(ctx, created.ID)
	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestClient_ListSupplierItems_UnknownSupplier(t *testing.T) {
	client := newTestServer(t)

	items, err := client.ListSupplierItems(context.Background(), 424242)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func createDraftOrder(t *testing.T, client *Client) *domain.PurchaseOrder {
	t.Helper()
	ctx := context.Background()

	suppliers, err := client.ListSuppliers(ctx)
	require.NoError(t, err)
	items, err := client.ListSupplierItems(ctx, suppliers[0].ID)
	require.NoError(t, err)

	form := NewOrderForm()
	form.SelectSupplier(&suppliers[0])
	form.SelectItem(&items[0])
	form.Quantity = 2

	created, err := form.Submit(ctx, client)
	require.NoError(t, err)
	return created
}
