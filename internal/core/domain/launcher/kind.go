package launcher

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported launcher hosts.
type Kind int

const (
	KindAlfred Kind = iota + 1
	KindHain
	KindAlbert
)

var kindNames = map[Kind]string{
	KindAlfred: "alfred",
	KindHain:   "hain",
	KindAlbert: "albert",
}

// Kinds returns every supported launcher in display order.
func Kinds() []Kind {
	return []Kind{KindAlfred, KindHain, KindAlbert}
}

// ParseKind resolves a user supplied launcher name, ignoring case.
func ParseKind(value string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, k := range Kinds() {
		if kindNames[k] == needle {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownLauncher, value, strings.Join(KindNames(), ", "))
}

// KindNames returns the lowercase names of every supported launcher.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		names = append(names, kindNames[k])
	}
	return names
}

// String implements the Stringer interface
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Title returns the product name of the launcher host.
func (k Kind) Title() string {
	switch k {
	case KindAlfred:
		return "Alfred"
	case KindHain:
		return "Hain"
	case KindAlbert:
		return "Albert"
	default:
		return k.String()
	}
}

// Valid reports whether k is one of the supported launchers.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}
