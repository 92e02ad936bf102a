package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Image types accepted for product uploads.
var allowedImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
}

// ProductHandler handles HTTP requests for the product catalog. Browsing
// is public; the write operations require a seller token.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. The search route must be
// registered before the details-by-name route or it would be shadowed.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/search/:meatname", h.HandleSearchProducts)
	router.Get("/products/:meatname", h.HandleGetProductDetails)

	router.Post("/products", auth, h.HandleCreateProduct)
	router.Put("/products/:id_product", auth, h.HandleUpdateProduct)
	router.Delete("/products/:id_product", auth, h.HandleDeleteProduct)
}

// HandleGetProducts returns the whole catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"data":    products,
		"message": "all products displayed!",
	})
}

// HandleSearchProducts returns all products matching a meat name.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Params("meatname"))
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(products)
}

// HandleGetProductDetails returns product details by meat name.
func (h *ProductHandler) HandleGetProductDetails(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Params("meatname"))
	if err != nil {
		log.Printf("Error getting product details: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(products)
}

// HandleCreateProduct creates a product for the authenticated seller from
// a multipart form carrying the descriptive fields and an image file.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	caller := middleware.Identity(c)
	if caller.Role != services.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only sellers can create products",
		})
	}

	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Stock must be an integer",
		})
	}
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Price must be a number",
		})
	}

	product := models.Product{
		Name:     c.FormValue("meatname"),
		Details:  c.FormValue("details"),
		Address:  c.FormValue("address"),
		Stock:    stock,
		Price:    price,
		SellerID: caller.ID,
	}
	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil || !isAllowedImage(fileHeader.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No image file uploaded or your files is not images",
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Error opening uploaded image: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error uploading image",
		})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.service.CreateProduct(c.UserContext(), &product, file, fileHeader.Filename, contentType); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error creating product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Product created successfully",
	})
}

// HandleUpdateProduct updates a product owned by the authenticated
// seller.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	caller := middleware.Identity(c)
	if caller.Role != services.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only sellers can update products",
		})
	}

	productID, err := parseProductID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	product.ID = productID
	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.service.UpdateProduct(caller.ID, &product); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error updating product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error updating product",
		})
	}

	return c.JSON(fiber.Map{
		"data": "Product updated successfully",
	})
}

// HandleDeleteProduct deletes a product owned by the authenticated
// seller.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	caller := middleware.Identity(c)
	if caller.Role != services.RoleSeller {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Only sellers can delete products",
		})
	}

	productID, err := parseProductID(c)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}

	if err := h.service.DeleteProduct(caller.ID, productID); err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error deleting product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error deleting product",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted!",
	})
}

func isAllowedImage(filename string) bool {
	parts := strings.Split(filename, ".")
	if len(parts) < 2 {
		return false
	}
	return allowedImageExtensions[strings.ToLower(parts[len(parts)-1])]
}

func parseProductID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id_product"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
