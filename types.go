package slang

// Type is the closed set of SimpleLang value types.
type Type int

const (
	TypeInt Type = iota
	TypeBool
)

func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	}
	return "unknown"
}
