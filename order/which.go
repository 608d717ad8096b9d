package order

import (
	"strings"

	"github.com/brimdata/sortbench/bencherr"
)

// Which is the arrangement of a generated input array relative to the
// natural order of its elements.
type Which int

const (
	Asc Which = iota
	Desc
	Shuffle
)

// All lists the orderings in their default benchmark order.
var All = []Which{Shuffle, Asc, Desc}

func Parse(s string) (Which, error) {
	switch strings.ToLower(s) {
	case "ascending", "asc", "sorted":
		return Asc, nil
	case "descending", "desc", "reversed":
		return Desc, nil
	case "shuffled", "shuffle", "random":
		return Shuffle, nil
	}
	return 0, bencherr.E(bencherr.Invalid, "unknown ordering %q (values: ascending, descending, shuffled)", s)
}

func (w Which) String() string {
	switch w {
	case Asc:
		return "ascending"
	case Desc:
		return "descending"
	case Shuffle:
		return "shuffled"
	}
	return "unknown"
}

func (w Which) Valid() bool {
	return w == Asc || w == Desc || w == Shuffle
}

func (w Which) MarshalText() ([]byte, error) {
	if !w.Valid() {
		return nil, bencherr.E(bencherr.Invalid, "unknown ordering %d", int(w))
	}
	return []byte(w.String()), nil
}

func (w *Which) UnmarshalText(b []byte) error {
	which, err := Parse(string(b))
	if err != nil {
		return err
	}
	*w = which
	return nil
}

// List is a comma-separated list of orderings usable as a flag.Value.
type List []Which

func ParseList(s string) (List, error) {
	var list List
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		which, err := Parse(name)
		if err != nil {
			return nil, err
		}
		list = append(list, which)
	}
	return list, nil
}

func (l List) String() string {
	names := make([]string, 0, len(l))
	for _, w := range l {
		names = append(names, w.String())
	}
	return strings.Join(names, ",")
}

func (l *List) Set(s string) error {
	list, err := ParseList(s)
	if err != nil {
		return err
	}
	*l = list
	return nil
}
