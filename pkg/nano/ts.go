// Package nano provides an ordered timestamp type, nanoseconds since the
// Unix epoch, so that time values satisfy constraints.Ordered and can be
// compared with a single integer comparison inside a sort loop.
package nano

import "time"

type Ts int64

const Millisecond Ts = Ts(time.Millisecond)

func FromMillis(ms int64) Ts {
	return Ts(ms) * Millisecond
}

func (t Ts) Time() time.Time {
	return time.Unix(0, int64(t)).UTC()
}

func (t Ts) String() string {
	return t.Time().Format(time.RFC3339Nano)
}
