package handlers

import (
	"errors"
	"log"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for buyer and seller accounts.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the account routes. Registration and login
// are public; the profile reads require a token.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/signup", h.HandleBuyerSignup)
	router.Post("/signin", h.HandleBuyerSignin)
	router.Post("/register", h.HandleSellerRegister)
	router.Post("/login", h.HandleSellerLogin)

	protected := router.Group("", middleware.AuthRequired(h.authService))
	protected.Get("/profile/:email", h.HandleBuyerProfile)
	protected.Get("/profileSeller/:email", h.HandleSellerProfile)
}

// RegisterRequest represents the request body for buyer signup and
// seller registration.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=30"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=10"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) parseRegister(c *fiber.Ctx) (*RegisterRequest, error) {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

// HandleBuyerSignup handles new buyer registration.
func (h *AuthHandler) HandleBuyerSignup(c *fiber.Ctx) error {
	req, err := h.parseRegister(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	buyer := models.Buyer{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := h.authService.RegisterBuyer(&buyer); err != nil {
		if errors.Is(err, services.ErrAccountExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "This account existed",
			})
		}
		log.Printf("Error registering buyer: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account Successfully Registered!",
	})
}

// HandleSellerRegister handles new seller registration.
func (h *AuthHandler) HandleSellerRegister(c *fiber.Ctx) error {
	req, err := h.parseRegister(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	seller := models.Seller{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
	if err := h.authService.RegisterSeller(&seller); err != nil {
		if errors.Is(err, services.ErrAccountExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "This account existed",
			})
		}
		log.Printf("Error registering seller: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account Successfully Registered!",
	})
}

func (h *AuthHandler) handleLogin(c *fiber.Ctx, login func(email, password string) (string, error)) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	token, err := login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Wrong email or password",
			})
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Login Success!",
		"email":   req.Email,
		"token":   token,
	})
}

// HandleBuyerSignin handles buyer login and issues a JWT token.
func (h *AuthHandler) HandleBuyerSignin(c *fiber.Ctx) error {
	return h.handleLogin(c, h.authService.LoginBuyer)
}

// HandleSellerLogin handles seller login and issues a JWT token.
func (h *AuthHandler) HandleSellerLogin(c *fiber.Ctx) error {
	return h.handleLogin(c, h.authService.LoginSeller)
}

// HandleBuyerProfile returns a buyer account by email.
func (h *AuthHandler) HandleBuyerProfile(c *fiber.Ctx) error {
	buyer, err := h.authService.GetBuyerProfile(c.Params("email"))
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Account not found",
			})
		}
		log.Printf("Error getting buyer profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Success",
		"data":    buyer,
	})
}

// HandleSellerProfile returns a seller account by email.
func (h *AuthHandler) HandleSellerProfile(c *fiber.Ctx) error {
	seller, err := h.authService.GetSellerProfile(c.Params("email"))
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Account not found",
			})
		}
		log.Printf("Error getting seller profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Success",
		"data":    seller,
	})
}
