package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"voltrent/internal/db"
	"voltrent/internal/entities"
	"voltrent/internal/repository"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService interface {
	Register(req entities.RegisterRequest) error
	Login(email, password, role string) (string, error)
	UpdatePersonalInfo(customerID int, req entities.UpdatePersonalInfoRequest) error
}

type authService struct {
	repo repository.CustomerRepository
}

func NewAuthService(repo repository.CustomerRepository) AuthService {
	return &authService{repo: repo}
}

func (s *authService) Register(req entities.RegisterRequest) error {
	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	customer := &db.Customer{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         RoleCustomer,
	}
	return s.repo.Create(customer)
}

// Login verifies credentials and issues a bearer token carrying the account id
// and role. Staff tokens are only issued to staff accounts.
func (s *authService) Login(email, password, role string) (string, error) {
	account, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if account == nil || account.Role != role {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}
	claims := jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  account.Role,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *authService) UpdatePersonalInfo(customerID int, req entities.UpdatePersonalInfoRequest) error {
	return s.repo.UpdatePersonalInfo(customerID, req.FullName, req.Phone, req.LicenseNumber)
}
