package repositories_test

import (
	"fmt"
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB opens a fresh in-memory sqlite database named after the
// test, so parallel test functions don't share state.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Buyer{}, &models.Seller{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{Name: "Beef Brisket", Address: "Pasar Senen", Price: price, Stock: stock, SellerID: 1}
	if err := repositories.NewGORMProductRepository(db).Create(product); err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func TestGORMOrderRepository_Place(t *testing.T) {
	db := openTestDB(t)
	products := repositories.NewGORMProductRepository(db)
	orders := repositories.NewGORMOrderRepository(db)

	product := seedProduct(t, db, 10.0, 5)

	// Quantity equal to available stock is allowed and empties the shelf.
	order := &models.Order{ProductID: product.ID, BuyerID: 7, Quantity: 5}
	err := orders.Place(order)
	assert.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, 50.0, order.TotalPrice)
	assert.Equal(t, models.StatusPending, order.Status)

	_, stock, err := products.GetStockAndPrice(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, stock)

	stored, err := orders.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, order.Quantity, stored.Quantity)
	assert.Equal(t, order.TotalPrice, stored.TotalPrice)
}

func TestGORMOrderRepository_Place_InsufficientStock(t *testing.T) {
	db := openTestDB(t)
	products := repositories.NewGORMProductRepository(db)
	orders := repositories.NewGORMOrderRepository(db)

	product := seedProduct(t, db, 10.0, 5)

	err := orders.Place(&models.Order{ProductID: product.ID, BuyerID: 7, Quantity: 6})
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

	// Nothing moved: stock untouched, no order row.
	_, stock, err := products.GetStockAndPrice(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 5, stock)

	all, err := orders.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestGORMOrderRepository_Place_UnknownProduct(t *testing.T) {
	db := openTestDB(t)
	orders := repositories.NewGORMOrderRepository(db)

	err := orders.Place(&models.Order{ProductID: 99, BuyerID: 7, Quantity: 1})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	all, err := orders.GetAll()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestGORMOrderRepository_Place_RollsBackOnInsertFailure(t *testing.T) {
	db := openTestDB(t)
	products := repositories.NewGORMProductRepository(db)
	orders := repositories.NewGORMOrderRepository(db)

	product := seedProduct(t, db, 10.0, 5)

	first := &models.Order{ProductID: product.ID, BuyerID: 7, Quantity: 1}
	assert.NoError(t, orders.Place(first))

	// Reusing the first order's primary key makes the insert fail after
	// the stock decrement has already run inside the transaction.
	clash := &models.Order{ID: first.ID, ProductID: product.ID, BuyerID: 7, Quantity: 2}
	err := orders.Place(clash)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repositories.ErrInsufficientStock)
	assert.NotErrorIs(t, err, repositories.ErrProductNotFound)

	// The whole placement rolled back: stock reflects only the first
	// order and no second row exists.
	_, stock, err := products.GetStockAndPrice(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 4, stock)

	all, err := orders.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, first.Quantity, all[0].Quantity)
}

func TestGORMOrderRepository_Place_SnapshotsPrice(t *testing.T) {
	db := openTestDB(t)
	products := repositories.NewGORMProductRepository(db)
	orders := repositories.NewGORMOrderRepository(db)

	product := seedProduct(t, db, 10.0, 10)

	order := &models.Order{ProductID: product.ID, BuyerID: 7, Quantity: 2}
	assert.NoError(t, orders.Place(order))
	assert.Equal(t, 20.0, order.TotalPrice)

	// A later price change must not alter the placed order.
	product.Price = 99.0
	assert.NoError(t, products.Update(product))

	stored, err := orders.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, stored.TotalPrice)
}

func TestGORMOrderRepository_UpdateStatus(t *testing.T) {
	db := openTestDB(t)
	orders := repositories.NewGORMOrderRepository(db)

	product := seedProduct(t, db, 10.0, 5)
	order := &models.Order{ProductID: product.ID, BuyerID: 7, Quantity: 1}
	assert.NoError(t, orders.Place(order))

	assert.NoError(t, orders.UpdateStatus(order.ID, models.StatusProcessing))

	stored, err := orders.GetByID(order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, stored.Status)
	assert.Equal(t, order.Quantity, stored.Quantity)
	assert.Equal(t, order.TotalPrice, stored.TotalPrice)

	// No row affected means not found, not silent success.
	err = orders.UpdateStatus(order.ID+100, models.StatusShipped)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}

func TestGORMOrderRepository_Delete(t *testing.T) {
	db := openTestDB(t)
	orders := repositories.NewGORMOrderRepository(db)

	product := seedProduct(t, db, 10.0, 5)
	order := &models.Order{ProductID: product.ID, BuyerID: 7, Quantity: 1}
	assert.NoError(t, orders.Place(order))

	assert.NoError(t, orders.Delete(order.ID))

	_, err := orders.GetByID(order.ID)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)

	// Deleting an order that is already gone reports not-found.
	err = orders.Delete(order.ID)
	assert.ErrorIs(t, err, repositories.ErrOrderNotFound)
}
