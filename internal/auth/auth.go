package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const CustomerKey contextKey = "customer"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func MakeJWT(customerID string, tokenSecret string, expiresIn time.Duration) (string, error) {
	claim := jwt.RegisteredClaims{
		Issuer:    "foodie",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		Subject:   customerID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)

	signedToken, err := token.SignedString([]byte(tokenSecret))
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func ValidateJWT(tokenString, tokenSecret string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrTokenSigningMethod
			}
			return []byte(tokenSecret), nil
		},
	)
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return "", ErrTokenExpired
	}

	if claims.Subject == "" {
		return "", ErrTokenWithNoSubject
	}

	return claims.Subject, nil
}

func GetBearerToken(headers http.Header) (string, error) {
	bearerToken := headers.Get("Authorization")

	if bearerToken == "" {
		return "", ErrNoAuthorizationHeader
	}

	if !strings.HasPrefix(bearerToken, "Bearer ") {
		return "", ErrMalformedAuthHeader
	}

	token := strings.TrimPrefix(bearerToken, "Bearer ")
	token = strings.TrimSpace(token) // clean up any accidental space

	if token == "" {
		return "", ErrNoTokenInAuthHeader
	}

	return token, nil
}

func GetCustomerFromContext(ctx context.Context) *mongodb.CustomerDb {
	if customer, ok := ctx.Value(CustomerKey).(mongodb.CustomerDb); ok {
		return &customer
	}
	return nil
}

func WithCustomer(ctx context.Context, customer mongodb.CustomerDb) context.Context {
	return context.WithValue(ctx, CustomerKey, customer)
}
