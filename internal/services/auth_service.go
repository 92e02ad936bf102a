package services

import (
	"errors"
	"fmt"
	"time"

	"pasar/internal/models"
	"pasar/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Roles carried in token claims. Buyers and sellers have independent id
// sequences, so the pair (id, role) identifies a principal.
const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
)

var (
	// ErrAccountExists is returned when registering with an email that is
	// already taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrInvalidCredentials is returned on any login failure. It does not
	// reveal whether the email exists.
	ErrInvalidCredentials = errors.New("wrong email or password")
)

// Identity is the authenticated principal decoded from a bearer token.
type Identity struct {
	ID   uint
	Role string
}

// AuthService handles registration, login and token validation for both
// buyer and seller accounts.
type AuthService struct {
	buyerRepo  repositories.BuyerRepository
	sellerRepo repositories.SellerRepository
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(buyerRepo repositories.BuyerRepository, sellerRepo repositories.SellerRepository, jwtSecret string) *AuthService {
	return &AuthService{
		buyerRepo:  buyerRepo,
		sellerRepo: sellerRepo,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: time.Hour,
	}
}

// RegisterBuyer registers a new buyer, hashing the password before it is
// stored.
func (s *AuthService) RegisterBuyer(buyer *models.Buyer) error {
	if existing, err := s.buyerRepo.GetByEmail(buyer.Email); err == nil && existing != nil {
		return ErrAccountExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(buyer.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	buyer.Password = string(hashed)

	if err := s.buyerRepo.Create(buyer); err != nil {
		// A racing registration can slip past the lookup above; the
		// unique index catches it and still yields a conflict.
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to register buyer: %w", err)
	}
	return nil
}

// RegisterSeller registers a new seller account.
func (s *AuthService) RegisterSeller(seller *models.Seller) error {
	if existing, err := s.sellerRepo.GetByEmail(seller.Email); err == nil && existing != nil {
		return ErrAccountExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seller.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	seller.Password = string(hashed)

	if err := s.sellerRepo.Create(seller); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return ErrAccountExists
		}
		return fmt.Errorf("failed to register seller: %w", err)
	}
	return nil
}

// LoginBuyer authenticates a buyer and returns a signed JWT.
func (s *AuthService) LoginBuyer(email, password string) (string, error) {
	buyer, err := s.buyerRepo.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(buyer.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(buyer.ID, RoleBuyer)
}

// LoginSeller authenticates a seller and returns a signed JWT.
func (s *AuthService) LoginSeller(email, password string) (string, error) {
	seller, err := s.sellerRepo.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(seller.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(seller.ID, RoleSeller)
}

func (s *AuthService) generateToken(id uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(s.tokenDurat).Unix(),
		"iat":  time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// GetBuyerProfile retrieves a buyer account by email.
func (s *AuthService) GetBuyerProfile(email string) (*models.Buyer, error) {
	return s.buyerRepo.GetByEmail(email)
}

// GetSellerProfile retrieves a seller account by email.
func (s *AuthService) GetSellerProfile(email string) (*models.Seller, error) {
	return s.sellerRepo.GetByEmail(email)
}

// ValidateToken parses and validates a JWT token, returning the caller
// identity if valid.
func (s *AuthService) ValidateToken(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	// Numeric claims decode as float64.
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return nil, fmt.Errorf("invalid token: missing id claim")
	}
	role, ok := claims["role"].(string)
	if !ok || (role != RoleBuyer && role != RoleSeller) {
		return nil, fmt.Errorf("invalid token: missing role claim")
	}

	return &Identity{ID: uint(id), Role: role}, nil
}
