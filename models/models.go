package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sixbank/contractlibs/enums"
)

type Account struct {
	ID            uuid.UUID           `json:"id"`
	AccountNumber string              `json:"accountNumber"`
	CustomerID    uuid.UUID           `json:"customerId"`
	AccountType   enums.AccountType   `json:"accountType"`
	Status        enums.AccountStatus `json:"status"`
	Balance       decimal.Decimal     `json:"balance"`
	Currency      string              `json:"currency"`
	Holders       []AccountHolder     `json:"holders,omitempty"`
	Limits        []AccountLimit      `json:"limits,omitempty"`
	CreatedAt     time.Time           `json:"createdTimestamp"`
	UpdatedAt     time.Time           `json:"updatedTimestamp"`
}

type AccountHolder struct {
	CustomerID uuid.UUID        `json:"customerId"`
	HolderType enums.HolderType `json:"holderType"`
	AddedAt    time.Time        `json:"addedTimestamp"`
}

// AccountLimit caps the amount that can move through one channel per day.
type AccountLimit struct {
	LimitType enums.LimitType `json:"limitType"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}
