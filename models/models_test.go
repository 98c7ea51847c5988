package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sixbank/contractlibs/enums"
)

func TestNewAPIResponse(t *testing.T) {
	before := time.Now().UTC()
	resp := OK("Account fetched successfully", map[string]string{"accountNumber": "SIX0532013000"})

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Account fetched successfully", resp.Message)
	assert.Equal(t, "SIX0532013000", resp.Data["accountNumber"])
	assert.False(t, resp.Timestamp.Before(before))
	assert.Equal(t, time.UTC, resp.Timestamp.Location())

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.ElementsMatch(t, []string{"timestamp", "status", "message", "data"}, keys(fields))
}

func TestNewAPIErrorResponse(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		errs      []string
		wantError string
		wantKeys  []string
	}{
		{
			name:      "validation failure",
			status:    http.StatusBadRequest,
			errs:      []string{"Email is required", "Password must be at least 8 characters"},
			wantError: "Bad Request",
			wantKeys:  []string{"timestamp", "status", "error", "message", "path", "errors"},
		},
		{
			name:      "no details",
			status:    http.StatusInternalServerError,
			wantError: "Internal Server Error",
			wantKeys:  []string{"timestamp", "status", "error", "message", "path"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewAPIErrorResponse(tt.status, "Validation failed", "/api/users", tt.errs...)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, "/api/users", resp.Path)
			assert.Equal(t, tt.errs, resp.Errors)

			data, err := json.Marshal(resp)
			require.NoError(t, err)
			var fields map[string]any
			require.NoError(t, json.Unmarshal(data, &fields))
			assert.ElementsMatch(t, tt.wantKeys, keys(fields))
		})
	}
}

func TestAccountToView(t *testing.T) {
	customerID := uuid.New()
	account := &Account{
		ID:            uuid.New(),
		AccountNumber: "SIX0532013000",
		CustomerID:    customerID,
		AccountType:   enums.Savings,
		Status:        enums.Active,
		Balance:       decimal.RequireFromString("150.25"),
		Currency:      "EUR",
		CreatedAt:     time.Now().UTC(),
		UpdatedAt:     time.Now().UTC(),
	}

	view := account.ToView()
	assert.Equal(t, "*********3000", view.AccountNumber)
	assert.Equal(t, customerID, view.CustomerID)
	assert.True(t, account.Balance.Equal(view.Balance))

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.NotContains(t, string(data), customerID.String())
	assert.NotContains(t, string(data), "SIX0532013000")
	assert.Contains(t, string(data), `"accountType":"SAVINGS"`)
}

func TestAccountHoldersAndLimits(t *testing.T) {
	owner, guardian, stranger := uuid.New(), uuid.New(), uuid.New()
	account := &Account{
		Holders: []AccountHolder{
			{CustomerID: owner, HolderType: enums.Primary},
			{CustomerID: guardian, HolderType: enums.Guardian},
		},
		Limits: []AccountLimit{
			{LimitType: enums.ATMWithdrawal, Amount: decimal.NewFromInt(500), Currency: "EUR"},
		},
	}

	role, ok := account.HolderOf(guardian)
	require.True(t, ok)
	assert.Equal(t, enums.Guardian, role)

	_, ok = account.HolderOf(stranger)
	assert.False(t, ok)

	limit, ok := account.Limit(enums.ATMWithdrawal)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(500).Equal(limit.Amount))

	_, ok = account.Limit(enums.InternationalTransfer)
	assert.False(t, ok)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
