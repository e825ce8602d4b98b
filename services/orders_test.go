package services_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ameer12348/wacky-commerce-backend/models"
	"github.com/Ameer12348/wacky-commerce-backend/services"
)

func setupOrders(t *testing.T) (*services.OrderService, *mockProductRepo, *mockOrderLineRepo, *mockOrderRepo) {
	t.Helper()
	productRepo := newMockProductRepo()
	lines := &mockOrderLineRepo{}
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, lines, &mockVariantRepo{r: productRepo}, testLogger())
	return svc, productRepo, lines, orders
}

// seedVariant stores a product with one variant and returns the variant id.
func seedVariant(t *testing.T, repo *mockProductRepo, title, variantName string, price int) uuid.UUID {
	t.Helper()
	productID := uuid.New()
	repo.products[productID] = &models.Product{ID: productID, Slug: title, Title: title}
	variantID := uuid.New()
	repo.variants[variantID] = &models.ProductVariant{
		ID:        variantID,
		ProductID: productID,
		Name:      variantName,
		Price:     price,
		InStock:   1,
	}
	return variantID
}

func TestGroupOrdersGroupsByOrderIdentity(t *testing.T) {
	svc, productRepo, lines, _ := setupOrders(t)

	order := &models.CustomerOrder{ID: uuid.New(), Name: "Mina", Lastname: "Okafor", Status: "processing", Total: 360}
	firstVariant := seedVariant(t, productRepo, "Trail Runner", "EU 42", 120)
	secondVariant := seedVariant(t, productRepo, "Road Runner", "EU 40", 240)

	lines.lines = []*models.OrderLine{
		{ID: uuid.New(), CustomerOrderID: order.ID, ProductVariantID: firstVariant, Quantity: 2, CustomerOrder: order},
		{ID: uuid.New(), CustomerOrderID: order.ID, ProductVariantID: secondVariant, Quantity: 1, CustomerOrder: order},
	}

	grouped, err := svc.GroupOrders()
	require.NoError(t, err)

	require.Len(t, grouped, 1)
	entry := grouped[0]
	assert.Equal(t, order.ID, entry.CustomerOrderID)
	assert.Equal(t, "Mina", entry.CustomerOrder.Name)
	assert.Equal(t, 360, entry.CustomerOrder.Total)

	require.Len(t, entry.Products, 2)
	// encounter order of the lines is preserved
	assert.Equal(t, "EU 42", entry.Products[0].Name)
	assert.Equal(t, 2, entry.Products[0].Quantity)
	assert.Equal(t, "EU 40", entry.Products[1].Name)
	require.NotNil(t, entry.Products[0].Product)
	assert.Equal(t, "Trail Runner", entry.Products[0].Product.Title)
}

func TestGroupOrdersFirstSeenOrdering(t *testing.T) {
	svc, productRepo, lines, _ := setupOrders(t)

	first := &models.CustomerOrder{ID: uuid.New(), Name: "First"}
	second := &models.CustomerOrder{ID: uuid.New(), Name: "Second"}
	variantID := seedVariant(t, productRepo, "Trail Runner", "EU 42", 120)

	lines.lines = []*models.OrderLine{
		{ID: uuid.New(), CustomerOrderID: first.ID, ProductVariantID: variantID, Quantity: 1, CustomerOrder: first},
		{ID: uuid.New(), CustomerOrderID: second.ID, ProductVariantID: variantID, Quantity: 1, CustomerOrder: second},
		{ID: uuid.New(), CustomerOrderID: first.ID, ProductVariantID: variantID, Quantity: 3, CustomerOrder: first},
	}

	grouped, err := svc.GroupOrders()
	require.NoError(t, err)

	require.Len(t, grouped, 2)
	assert.Equal(t, first.ID, grouped[0].CustomerOrderID)
	assert.Len(t, grouped[0].Products, 2)
	assert.Equal(t, second.ID, grouped[1].CustomerOrderID)
	assert.Len(t, grouped[1].Products, 1)
}

func TestGroupOrdersAbortsOnLookupFailure(t *testing.T) {
	productRepo := newMockProductRepo()
	lines := &mockOrderLineRepo{}

	order := &models.CustomerOrder{ID: uuid.New()}
	variantID := seedVariant(t, productRepo, "Trail Runner", "EU 42", 120)
	lines.lines = []*models.OrderLine{
		{ID: uuid.New(), CustomerOrderID: order.ID, ProductVariantID: variantID, Quantity: 1, CustomerOrder: order},
	}

	// every variant lookup fails mid-aggregation
	failing := &mockVariantRepo{r: productRepo, getErr: errors.New("timeout")}
	svc := services.NewOrderService(newMockOrderRepo(), lines, failing, testLogger())

	grouped, err := svc.GroupOrders()

	var storeErr *services.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Nil(t, grouped)
}

func TestGroupOrdersEmpty(t *testing.T) {
	svc, _, _, _ := setupOrders(t)

	grouped, err := svc.GroupOrders()

	require.NoError(t, err)
	assert.Empty(t, grouped)
	assert.NotNil(t, grouped)
}

func TestCreateLineValidatesQuantity(t *testing.T) {
	svc, _, _, _ := setupOrders(t)

	_, err := svc.CreateLine(&models.OrderLine{Quantity: 0})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "Quantity")
}

func TestUpdateLineNotFound(t *testing.T) {
	svc, _, _, _ := setupOrders(t)

	_, err := svc.UpdateLine(&models.OrderLine{ID: uuid.New(), Quantity: 1})

	var notFoundErr *services.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Order not found", notFoundErr.Error())
}

func TestDeleteLinesRemovesAllLinesOfOrder(t *testing.T) {
	svc, _, lines, _ := setupOrders(t)

	target := uuid.New()
	other := uuid.New()
	lines.lines = []*models.OrderLine{
		{ID: uuid.New(), CustomerOrderID: target, ProductVariantID: uuid.New(), Quantity: 1},
		{ID: uuid.New(), CustomerOrderID: target, ProductVariantID: uuid.New(), Quantity: 2},
		{ID: uuid.New(), CustomerOrderID: other, ProductVariantID: uuid.New(), Quantity: 1},
	}

	require.NoError(t, svc.DeleteLines(target))

	remaining, err := lines.ListWithOrders()
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, other, remaining[0].CustomerOrderID)
}

func TestDeleteOrderRemovesLinesToo(t *testing.T) {
	svc, _, lines, orders := setupOrders(t)

	order := &models.CustomerOrder{Name: "Mina", Email: "mina@example.com"}
	created, err := svc.CreateOrder(order)
	require.NoError(t, err)
	require.NoError(t, lines.Create(&models.OrderLine{CustomerOrderID: created.ID, ProductVariantID: uuid.New(), Quantity: 1}))

	require.NoError(t, svc.DeleteOrder(created.ID))

	assert.NotContains(t, orders.store, created.ID)
	remaining, _ := lines.ListWithOrders()
	assert.Empty(t, remaining)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, _, _, _ := setupOrders(t)

	_, err := svc.CreateOrder(&models.CustomerOrder{Email: "mina@example.com"})
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.CreateOrder(&models.CustomerOrder{Name: "Mina"})
	require.ErrorAs(t, err, &validationErr)
}
