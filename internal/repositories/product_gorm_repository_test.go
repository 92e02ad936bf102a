package repositories_test

import (
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func TestGORMProductRepository_DecrementStock(t *testing.T) {
	db := openTestDB(t)
	products := repositories.NewGORMProductRepository(db)

	product := seedProduct(t, db, 25.0, 10)

	assert.NoError(t, products.DecrementStock(product.ID, 4))

	_, stock, err := products.GetStockAndPrice(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 6, stock)

	// Down to exactly zero is allowed.
	assert.NoError(t, products.DecrementStock(product.ID, 6))
	_, stock, err = products.GetStockAndPrice(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, stock)

	// Below zero is not.
	err = products.DecrementStock(product.ID, 1)
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

	err = products.DecrementStock(product.ID+100, 1)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_UpdateAndDelete(t *testing.T) {
	db := openTestDB(t)
	products := repositories.NewGORMProductRepository(db)

	product := seedProduct(t, db, 25.0, 10)

	product.Details = "Grass fed"
	assert.NoError(t, products.Update(product))

	stored, err := products.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Grass fed", stored.Details)

	assert.NoError(t, products.Delete(product.ID))
	_, err = products.GetByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)

	err = products.Delete(product.ID)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
}

func TestGORMProductRepository_SearchByName(t *testing.T) {
	db := openTestDB(t)
	products := repositories.NewGORMProductRepository(db)

	assert.NoError(t, products.Create(&models.Product{Name: "Beef Ribeye", Address: "Pasar Senen", Price: 12.0, Stock: 3, SellerID: 1}))
	assert.NoError(t, products.Create(&models.Product{Name: "Beef Ribeye", Address: "Pasar Minggu", Price: 11.0, Stock: 8, SellerID: 2}))
	assert.NoError(t, products.Create(&models.Product{Name: "Lamb Shank", Address: "Pasar Senen", Price: 9.0, Stock: 5, SellerID: 1}))

	matches, err := products.SearchByName("Beef Ribeye")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)

	matches, err = products.SearchByName("Chicken Wing")
	assert.NoError(t, err)
	assert.Empty(t, matches)
}
