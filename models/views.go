package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sixbank/contractlibs/enums"
	"github.com/sixbank/contractlibs/utils"
)

// AccountView is the display projection of an account.
// AccountNumber is always masked; CustomerID is kept for ownership checks but
// never serialised.
type AccountView struct {
	ID            uuid.UUID           `json:"id"`
	AccountNumber string              `json:"accountNumber"`
	CustomerID    uuid.UUID           `json:"-"`
	AccountType   enums.AccountType   `json:"accountType"`
	Status        enums.AccountStatus `json:"status"`
	Balance       decimal.Decimal     `json:"balance"`
	Currency      string              `json:"currency"`
	CreatedAt     time.Time           `json:"createdTimestamp"`
	UpdatedAt     time.Time           `json:"updatedTimestamp"`
}

// ToView converts an Account to its display projection.
func (a *Account) ToView() *AccountView {
	return &AccountView{
		ID:            a.ID,
		AccountNumber: utils.MaskAccountNumber(a.AccountNumber),
		CustomerID:    a.CustomerID,
		AccountType:   a.AccountType,
		Status:        a.Status,
		Balance:       a.Balance,
		Currency:      a.Currency,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// HolderOf returns the role customerID has on the account.
func (a *Account) HolderOf(customerID uuid.UUID) (enums.HolderType, bool) {
	for _, h := range a.Holders {
		if h.CustomerID == customerID {
			return h.HolderType, true
		}
	}
	return "", false
}

// Limit returns the limit configured for limitType, if any.
func (a *Account) Limit(limitType enums.LimitType) (AccountLimit, bool) {
	for _, l := range a.Limits {
		if l.LimitType == limitType {
			return l, true
		}
	}
	return AccountLimit{}, false
}
