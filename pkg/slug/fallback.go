package slug

import (
	"strconv"
	"strings"
)

// fallback builds prefix, calendar timestamp (second resolution) and a
// process-unique token, all joined by sep:
//
//	item-2025-03-14-09-26-53-0k3m9x2q4r7tv
func (n *Normalizer) fallback(sep string) string {
	t := n.now()

	parts := strings.Fields(n.fallbackPrefix)
	parts = append(parts,
		pad(t.Year(), 4),
		pad(int(t.Month()), 2),
		pad(t.Day(), 2),
		pad(t.Hour(), 2),
		pad(t.Minute(), 2),
		pad(t.Second(), 2),
		n.token(),
	)

	return strings.Join(parts, sep)
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
