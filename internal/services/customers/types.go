package customers

import (
	"time"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

type Customer struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Customer Customer `json:"customer"`
}

// CustomerSummary is the public view of a customer: never contact fields.
type CustomerSummary struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type AllCustomersResponse struct {
	Customers []CustomerSummary `json:"customers"`
}

func MapDbCustomerToSummary(customer mongodb.CustomerDb) CustomerSummary {
	return CustomerSummary{
		Id:     customer.Id,
		Name:   customer.Name,
		Status: customer.Status,
	}
}

func MapDbCustomerToApiCustomer(customer mongodb.CustomerDb) Customer {
	return Customer{
		Id:        customer.Id,
		Name:      customer.Name,
		Username:  customer.Username,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Status:    customer.Status,
		IsActive:  customer.IsActive,
		CreatedAt: customer.CreatedAt,
		UpdatedAt: customer.UpdatedAt,
	}
}
