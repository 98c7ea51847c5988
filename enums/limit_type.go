package enums

// LimitType names the channel a transaction limit applies to.
type LimitType string

const (
	ATMWithdrawal         LimitType = "ATM_WITHDRAWAL"
	POSPayment            LimitType = "POS_PAYMENT"
	OnlineTransfer        LimitType = "ONLINE_TRANSFER"
	InternationalTransfer LimitType = "INTERNATIONAL_TRANSFER"
	MobileBanking         LimitType = "MOBILE_BANKING"
)

var limitTypes = []LimitType{ATMWithdrawal, POSPayment, OnlineTransfer, InternationalTransfer, MobileBanking}

func LimitTypes() []LimitType {
	return append([]LimitType(nil), limitTypes...)
}

func ParseLimitType(s string) (LimitType, error) {
	return parse("limit type", s, limitTypes)
}

func (l LimitType) IsValid() bool  { return contains(limitTypes, l) }
func (l LimitType) String() string { return string(l) }

func (l LimitType) MarshalText() ([]byte, error) {
	return marshal("limit type", limitTypes, l)
}

func (l *LimitType) UnmarshalText(text []byte) error {
	return unmarshal("limit type", text, limitTypes, l)
}
