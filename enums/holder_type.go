package enums

// HolderType is the role of an individual on an account.
type HolderType string

const (
	Primary HolderType = "PRIMARY"
	// Secondary owners have limited or shared access.
	Secondary HolderType = "SECONDARY"
	// Authorized persons operate the account on behalf of the owner.
	Authorized HolderType = "AUTHORIZED"
	// Guardian manages a minor's account.
	Guardian HolderType = "GUARDIAN"
)

var holderTypes = []HolderType{Primary, Secondary, Authorized, Guardian}

func HolderTypes() []HolderType {
	return append([]HolderType(nil), holderTypes...)
}

func ParseHolderType(s string) (HolderType, error) {
	return parse("holder type", s, holderTypes)
}

func (h HolderType) IsValid() bool  { return contains(holderTypes, h) }
func (h HolderType) String() string { return string(h) }

func (h HolderType) MarshalText() ([]byte, error) {
	return marshal("holder type", holderTypes, h)
}

func (h *HolderType) UnmarshalText(text []byte) error {
	return unmarshal("holder type", text, holderTypes, h)
}
