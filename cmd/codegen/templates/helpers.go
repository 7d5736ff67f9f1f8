package templates

import (
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// arity holds the pieces of Go source that differ between SignalN variants.
type arity struct {
	N          int
	Signal     string // Signal2
	View       string // connectable2
	Iface      string // Connectable2
	TypeParams string // [T0, T1 any]
	TypeArgs   string // [T0, T1]
	Fn         string // func(T0, T1)
	Params     string // arg0 T0, arg1 T1
	Args       string // arg0, arg1
	Example    string // [int, int]
}

func newArity(n int) arity {
	a := arity{
		N:      n,
		Signal: "Signal" + strconv.Itoa(n),
		View:   "connectable" + strconv.Itoa(n),
		Iface:  "Connectable" + strconv.Itoa(n),
		Fn:     "func(" + prefixedStrings("T", n) + ")",
		Args:   prefixedStrings("arg", n),
	}
	if n == 0 {
		return a
	}

	a.TypeParams = "[" + prefixedStrings("T", n) + " any]"
	a.TypeArgs = "[" + prefixedStrings("T", n) + "]"

	params := make([]string, n)
	ints := make([]string, n)
	for i := 0; i < n; i++ {
		params[i] = "arg" + strconv.Itoa(i) + " T" + strconv.Itoa(i)
		ints[i] = "int"
	}
	a.Params = strings.Join(params, ", ")
	a.Example = "[" + strings.Join(ints, ", ") + "]"
	return a
}

func arities(count int) []arity {
	out := make([]arity, 0, count+1)
	for n := 0; n <= count; n++ {
		out = append(out, newArity(n))
	}
	return out
}
