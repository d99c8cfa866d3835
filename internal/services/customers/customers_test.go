package customers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ravichandan/foodie-service-sub000/internal/mongodb"
)

func TestIsValidEmail(t *testing.T) {
	require.True(t, IsValidEmail("jo.eats@example.com"))
	require.True(t, IsValidEmail("a+b@sub.domain.io"))
	require.False(t, IsValidEmail("not-an-email"))
	require.False(t, IsValidEmail("missing@tld"))
	require.False(t, IsValidEmail("@example.com"))
}

func TestCustomerSummaryHidesContactFields(t *testing.T) {
	summary := MapDbCustomerToSummary(mongodb.CustomerDb{
		Id:     "c1",
		Name:   "Jo Eats",
		Email:  "jo.eats@example.com",
		Phone:  "0400000000",
		Status: "active",
	})

	require.Equal(t, "c1", summary.Id)
	require.Equal(t, "Jo Eats", summary.Name)
	require.Equal(t, "active", summary.Status)

	body, err := json.Marshal(AllCustomersResponse{Customers: []CustomerSummary{summary}})
	require.NoError(t, err)
	require.NotContains(t, string(body), "email")
	require.NotContains(t, string(body), "phone")
	require.NotContains(t, string(body), "jo.eats@example.com")
}

func TestIsValidUsername(t *testing.T) {
	require.True(t, IsValidUsername("jo_eats-22"))
	require.False(t, IsValidUsername("jo eats"))
	require.False(t, IsValidUsername("jo@eats"))
	require.False(t, IsValidUsername(""))
}
