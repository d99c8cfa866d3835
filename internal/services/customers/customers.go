package customers

import (
	"context"
	"errors"
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/auth"
	"github.com/ravichandan/foodie-service-sub000/internal/config"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

const tokenLifetime = 24 * time.Hour

// Signup registers a new customer. Uniqueness of email and username is
// enforced by the collection's indexes; a duplicate surfaces as a write
// error from the store.
func Signup(db *mongodb.DB, ctx context.Context, req SignupRequest) (Customer, error) {
	if !IsValidEmail(req.Email) {
		return Customer{}, ErrInvalidEmail
	}
	if !IsValidUsername(req.Username) {
		return Customer{}, ErrInvalidUsername
	}
	if len(req.Password) < 8 {
		return Customer{}, ErrPasswordTooShort
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return Customer{}, err
	}

	stored, err := db.AddCustomer(ctx, mongodb.CustomerDb{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Status:       "active",
		IsActive:     true,
	})
	if err != nil {
		return Customer{}, err
	}

	return MapDbCustomerToApiCustomer(stored), nil
}

// Login checks the credentials and issues a JWT for the customer.
func Login(db *mongodb.DB, ctx context.Context, req LoginRequest) (LoginResponse, error) {
	stored, err := db.GetCustomerByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if err := auth.CheckPasswordHash(stored.PasswordHash, req.Password); err != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}
	if !stored.IsActive {
		return LoginResponse{}, ErrCustomerInactive
	}

	token, err := auth.MakeJWT(stored.Id, config.TokenSecret(), tokenLifetime)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token:    token,
		Customer: MapDbCustomerToApiCustomer(stored),
	}, nil
}

func GetCustomerById(db *mongodb.DB, ctx context.Context, id string) (Customer, error) {
	stored, err := db.GetCustomerById(ctx, id)
	if err != nil {
		if errors.Is(err, mongodb.ErrRecordNotFound) {
			return Customer{}, ErrCustomerNotFound
		}
		return Customer{}, err
	}
	return MapDbCustomerToApiCustomer(stored), nil
}

// GetAllCustomers lists customers reduced to the public projection. The
// listing is reachable without a token, so contact fields stay out of it.
func GetAllCustomers(db *mongodb.DB, ctx context.Context) (AllCustomersResponse, error) {
	stored, err := db.GetAllCustomers(ctx)
	if err != nil {
		return AllCustomersResponse{}, err
	}

	response := AllCustomersResponse{Customers: make([]CustomerSummary, 0, len(stored))}
	for _, customer := range stored {
		response.Customers = append(response.Customers, MapDbCustomerToSummary(customer))
	}
	return response, nil
}

// CheckIfCustomerExist returns true when a customer with the provided id
// exists. It returns false and nil error when the customer does not exist.
// For other database errors, it returns false with the error for callers to handle.
func CheckIfCustomerExist(db *mongodb.DB, ctx context.Context, id string) (bool, error) {
	_, err := db.GetCustomerById(ctx, id)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongodb.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
