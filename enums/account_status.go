package enums

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	// Pending accounts are created but not yet activated.
	Pending AccountStatus = "PENDING"
	Active  AccountStatus = "ACTIVE"
	// Dormant accounts have not been used for a long time.
	Dormant AccountStatus = "DORMANT"
	// Frozen accounts are temporarily restricted.
	Frozen AccountStatus = "FROZEN"
	// Closed is permanent.
	Closed AccountStatus = "CLOSED"
	// Blocked accounts are flagged for suspicious or fraudulent activity.
	Blocked AccountStatus = "BLOCKED"
)

var accountStatuses = []AccountStatus{Pending, Active, Dormant, Frozen, Closed, Blocked}

// AccountStatuses returns every AccountStatus in declaration order.
func AccountStatuses() []AccountStatus {
	return append([]AccountStatus(nil), accountStatuses...)
}

func ParseAccountStatus(s string) (AccountStatus, error) {
	return parse("account status", s, accountStatuses)
}

func (s AccountStatus) IsValid() bool  { return contains(accountStatuses, s) }
func (s AccountStatus) String() string { return string(s) }

func (s AccountStatus) MarshalText() ([]byte, error) {
	return marshal("account status", accountStatuses, s)
}

func (s *AccountStatus) UnmarshalText(text []byte) error {
	return unmarshal("account status", text, accountStatuses, s)
}
