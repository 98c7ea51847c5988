package enums

// AccountType is the kind of bank account.
type AccountType string

const (
	// Savings accrues interest.
	Savings AccountType = "SAVINGS"
	// Checking is the day-to-day current account.
	Checking AccountType = "CHECKING"
	// FixedDeposit has a set maturity date.
	FixedDeposit AccountType = "FIXED_DEPOSIT"
	Loan         AccountType = "LOAN"
	// Credit issues credit lines.
	Credit AccountType = "CREDIT"
	// Investment holds stocks, bonds or funds.
	Investment AccountType = "INVESTMENT"
	Business   AccountType = "BUSINESS"
	// Joint is held by two or more individuals.
	Joint AccountType = "JOINT"
)

var accountTypes = []AccountType{Savings, Checking, FixedDeposit, Loan, Credit, Investment, Business, Joint}

// AccountTypes returns every AccountType in declaration order.
func AccountTypes() []AccountType {
	return append([]AccountType(nil), accountTypes...)
}

func ParseAccountType(s string) (AccountType, error) {
	return parse("account type", s, accountTypes)
}

func (t AccountType) IsValid() bool  { return contains(accountTypes, t) }
func (t AccountType) String() string { return string(t) }

func (t AccountType) MarshalText() ([]byte, error) {
	return marshal("account type", accountTypes, t)
}

func (t *AccountType) UnmarshalText(text []byte) error {
	return unmarshal("account type", text, accountTypes, t)
}
