package ledger

// Leave-type catalog. Annual and sick leave carry a finite, decrementing
// balance; the rest are recorded but never counted against a quota.
const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypeMaternity = "maternity"
	TypePaternity = "paternity"
	TypeEmergency = "emergency"
	TypeUnpaid    = "unpaid"
)

// DefaultQuota is granted to every new employee per countable type.
var DefaultQuota = map[string]int{
	TypeAnnual: 25,
	TypeSick:   10,
}

func ValidType(t string) bool {
	switch t {
	case TypeAnnual, TypeSick, TypeMaternity, TypePaternity, TypeEmergency, TypeUnpaid:
		return true
	}
	return false
}

func Countable(t string) bool {
	_, ok := DefaultQuota[t]
	return ok
}

// CountableTypes returns the catalog of tracked types in a stable order.
func CountableTypes() []string {
	return []string{TypeAnnual, TypeSick}
}
