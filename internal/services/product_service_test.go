package services_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) SearchByName(name string) ([]models.Product, error) {
	args := m.Called(name)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetStockAndPrice(id uint) (float64, int, error) {
	args := m.Called(id)
	return args.Get(0).(float64), args.Get(1).(int), args.Error(2)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementStock(id uint, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

// fakeUploader records the upload and hands back a deterministic URL.
type fakeUploader struct {
	uploaded bool
}

func (f *fakeUploader) Upload(ctx context.Context, objectName, contentType string, r io.Reader) (string, error) {
	f.uploaded = true
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	return "https://storage.googleapis.com/test-bucket/" + objectName, nil
}

func (f *fakeUploader) Close() error { return nil }

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expected := []models.Product{
		{ID: 1, Name: "Beef Ribeye", Price: 10.0, Stock: 100},
		{ID: 2, Name: "Lamb Shank", Price: 20.0, Stock: 50},
	}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.GetAllProducts()
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_UploadsImage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	uploader := &fakeUploader{}
	service := services.NewProductService(mockRepo, uploader)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product := models.Product{Name: "Beef Ribeye", Address: "Pasar Senen", Price: 12.0, Stock: 5, SellerID: 3}
	err := service.CreateProduct(context.Background(), &product, strings.NewReader("jpeg bytes"), "ribeye.jpg", "image/jpeg")
	assert.NoError(t, err)
	assert.True(t, uploader.uploaded)
	assert.Contains(t, product.ImageURL, "https://storage.googleapis.com/test-bucket/")
	assert.Contains(t, product.ImageURL, ".jpg")
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct_NoUploader(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	product := models.Product{Name: "Beef Ribeye", Address: "Pasar Senen", Price: 12.0, Stock: 5}
	err := service.CreateProduct(context.Background(), &product, strings.NewReader("jpeg bytes"), "ribeye.jpg", "image/jpeg")
	assert.NoError(t, err)
	assert.Empty(t, product.ImageURL)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_Ownership(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{ID: 1, Name: "Beef Ribeye", Address: "Pasar Senen", Price: 12.0, Stock: 5, SellerID: 3, ImageURL: "https://example.com/ribeye.jpg"}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil)
	mockRepo.On("Update", mock.AnythingOfType("*models.Product")).Return(nil).Once()

	// The owning seller can update; the image URL survives the update.
	updated := models.Product{ID: 1, Name: "Beef Ribeye", Address: "Pasar Senen", Price: 14.0, Stock: 4}
	err := service.UpdateProduct(3, &updated)
	assert.NoError(t, err)
	assert.Equal(t, existing.ImageURL, updated.ImageURL)
	assert.Equal(t, uint(3), updated.SellerID)

	// Another seller gets not-found.
	err = service.UpdateProduct(4, &models.Product{ID: 1, Name: "Beef Ribeye", Address: "Pasar Senen", Price: 1.0, Stock: 1})
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_Ownership(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	existing := &models.Product{ID: 1, SellerID: 3}
	mockRepo.On("GetByID", uint(1)).Return(existing, nil)
	mockRepo.On("Delete", uint(1)).Return(nil).Once()

	assert.NoError(t, service.DeleteProduct(3, 1))

	err := service.DeleteProduct(4, 1)
	assert.ErrorIs(t, err, repositories.ErrProductNotFound)
	mockRepo.AssertExpectations(t)
}
