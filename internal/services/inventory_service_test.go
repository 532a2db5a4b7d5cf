package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"stockpile/internal/domain"
	"stockpile/internal/repos"
	"stockpile/internal/services"
)

func memsvc(t *testing.T) *services.InventoryService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return services.NewInventoryService(repos.NewProductRepo(db))
}

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestInventoryService_CreateThenUpdate(t *testing.T) {
	svc := memsvc(t)

	id, err := svc.CreateProduct("Widget", "Hardware", price(t, "9.99"), 10)
	require.NoError(t, err)

	products, err := svc.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Widget", products[0].Name)
	require.True(t, price(t, "9.99").Equal(products[0].Price))
	require.Equal(t, 10, products[0].Quantity)

	err = svc.UpdateProduct(id, "Widget", "Hardware", price(t, "12.50"), 5)
	require.NoError(t, err)

	products, err = svc.ListProducts()
	require.NoError(t, err)
	require.True(t, price(t, "12.50").Equal(products[0].Price))
	require.Equal(t, 5, products[0].Quantity)
}

func TestInventoryService_NotFound(t *testing.T) {
	svc := memsvc(t)

	err := svc.UpdateProduct(123, "Widget", "Hardware", price(t, "9.99"), 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.DeleteProduct(123)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetProduct(123)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryService_DeleteThenGone(t *testing.T) {
	svc := memsvc(t)

	id, err := svc.CreateProduct("Widget", "Hardware", price(t, "9.99"), 10)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(id))

	err = svc.DeleteProduct(id)
	require.ErrorIs(t, err, domain.ErrNotFound)

	n, err := svc.CountProducts()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestInventoryService_RejectedDraftInsertsNothing(t *testing.T) {
	svc := memsvc(t)

	_, err := svc.CreateProduct("Widget", "Hardware", price(t, "-5"), 10)
	require.Error(t, err)
	require.True(t, domain.IsValidation(err), "want ValidationError, got %v", err)

	n, err := svc.CountProducts()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestInventoryService_SearchEmptyEqualsList(t *testing.T) {
	svc := memsvc(t)

	_, err := svc.CreateProduct("Widget", "Hardware", price(t, "9.99"), 10)
	require.NoError(t, err)
	_, err = svc.CreateProduct("Gadget", "Tools", price(t, "4.50"), 3)
	require.NoError(t, err)

	all, err := svc.ListProducts()
	require.NoError(t, err)
	got, err := svc.SearchProducts("")
	require.NoError(t, err)
	require.Equal(t, all, got)

	got, err = svc.SearchProducts("tool")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Gadget", got[0].Name)
}
