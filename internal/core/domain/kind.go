package domain

import "strings"

// Kind discriminates the concrete product categories. The same value is used
// for kind-filtered search and as the type tag of persisted records.
type Kind string

const (
	KindElectronics Kind = "Electronics"
	KindGrocery     Kind = "Grocery"
	KindClothing    Kind = "Clothing"
)

func (k Kind) IsValid() bool {
	return k == KindElectronics || k == KindGrocery || k == KindClothing
}

// ParseKind accepts the discriminator in any letter case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "electronics":
		return KindElectronics, nil
	case "grocery":
		return KindGrocery, nil
	case "clothing":
		return KindClothing, nil
	default:
		return "", ErrUnknownKind
	}
}
