package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/gcs"

	"github.com/google/uuid"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	uploader gcs.Uploader
}

// NewProductService creates a new ProductService. The uploader may be nil
// when image upload is not configured; CreateProduct then stores the
// product without an image URL.
func NewProductService(repo repositories.ProductRepository, uploader gcs.Uploader) *ProductService {
	return &ProductService{
		repo:     repo,
		uploader: uploader,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// SearchProducts retrieves all products with the given meat name.
func (s *ProductService) SearchProducts(name string) ([]models.Product, error) {
	return s.repo.SearchByName(name)
}

// CreateProduct uploads the product image to object storage and stores
// the product with the resulting image URL.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product, image io.Reader, filename, contentType string) error {
	if image != nil && s.uploader != nil {
		objectName := uuid.New().String() + filepath.Ext(filename)
		url, err := s.uploader.Upload(ctx, objectName, contentType, image)
		if err != nil {
			return fmt.Errorf("failed to upload product image: %w", err)
		}
		product.ImageURL = url
	}
	return s.repo.Create(product)
}

// UpdateProduct updates a product on behalf of the seller who owns it.
// A product owned by someone else is reported as not found so product ids
// don't leak across sellers.
func (s *ProductService) UpdateProduct(sellerID uint, product *models.Product) error {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return repositories.ErrProductNotFound
	}
	product.SellerID = existing.SellerID
	product.ImageURL = existing.ImageURL
	product.CreatedAt = existing.CreatedAt
	return s.repo.Update(product)
}

// DeleteProduct deletes a product on behalf of the seller who owns it.
func (s *ProductService) DeleteProduct(sellerID, id uint) error {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing.SellerID != sellerID {
		return repositories.ErrProductNotFound
	}
	return s.repo.Delete(id)
}
