package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sixbank/contractlibs/enums"
)

// Event types
const (
	AccountCreated        = "account.created"
	AccountStatusChanged  = "account.status_changed"
	AccountBalanceUpdated = "account.balance_updated"
)

// Event is implemented by every payload in this package.
type Event interface {
	EventType() string
	EventMetadata() Metadata
}

// Metadata identifies a single occurrence of an event. It is assigned when
// the payload is constructed and is not configurable by callers.
type Metadata struct {
	EventID   uuid.UUID `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
}

func newMetadata() Metadata {
	return Metadata{
		EventID:   uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

func (m Metadata) EventMetadata() Metadata { return m }

// AccountCreatedEvent is emitted once an account has been created.
type AccountCreatedEvent struct {
	Metadata
	AccountID     uuid.UUID `json:"accountId"`
	AccountNumber string    `json:"accountNumber"`
	CustomerID    uuid.UUID `json:"customerId"`
}

func NewAccountCreatedEvent(accountID uuid.UUID, accountNumber string, customerID uuid.UUID) AccountCreatedEvent {
	return AccountCreatedEvent{
		Metadata:      newMetadata(),
		AccountID:     accountID,
		AccountNumber: accountNumber,
		CustomerID:    customerID,
	}
}

func (AccountCreatedEvent) EventType() string { return AccountCreated }

// AccountStatusChangedEvent records a status transition, e.g. PENDING to ACTIVE.
type AccountStatusChangedEvent struct {
	Metadata
	AccountID uuid.UUID           `json:"accountId"`
	OldStatus enums.AccountStatus `json:"oldStatus"`
	NewStatus enums.AccountStatus `json:"newStatus"`
}

func NewAccountStatusChangedEvent(accountID uuid.UUID, oldStatus, newStatus enums.AccountStatus) AccountStatusChangedEvent {
	return AccountStatusChangedEvent{
		Metadata:  newMetadata(),
		AccountID: accountID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
	}
}

func (AccountStatusChangedEvent) EventType() string { return AccountStatusChanged }

// AccountBalanceUpdatedEvent records a balance change and why it happened.
type AccountBalanceUpdatedEvent struct {
	Metadata
	AccountID       uuid.UUID       `json:"accountId"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	NewBalance      decimal.Decimal `json:"newBalance"`
	Reason          string          `json:"reason"`
}

func NewAccountBalanceUpdatedEvent(accountID uuid.UUID, previousBalance, newBalance decimal.Decimal, reason string) AccountBalanceUpdatedEvent {
	return AccountBalanceUpdatedEvent{
		Metadata:        newMetadata(),
		AccountID:       accountID,
		PreviousBalance: previousBalance,
		NewBalance:      newBalance,
		Reason:          reason,
	}
}

func (AccountBalanceUpdatedEvent) EventType() string { return AccountBalanceUpdated }

// Change is NewBalance minus PreviousBalance.
func (e AccountBalanceUpdatedEvent) Change() decimal.Decimal {
	return e.NewBalance.Sub(e.PreviousBalance)
}
