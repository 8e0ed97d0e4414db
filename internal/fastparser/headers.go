package fastparser

// Headers is an ordered, repeatable list of header fields.
// Names keep their wire case; lookups are ASCII case-insensitive.
type Headers []Header

// Get returns the value of the first header named name, or nil.
func (h Headers) Get(name string) []byte {
	for i := range h {
		if eqFold(h[i].Name, name) {
			return h[i].Value
		}
	}
	return nil
}

// Has reports whether a header named name is present.
func (h Headers) Has(name string) bool {
	for i := range h {
		if eqFold(h[i].Name, name) {
			return true
		}
	}
	return false
}

// Values returns every value of the headers named name, in wire order.
func (h Headers) Values(name string) [][]byte {
	var vals [][]byte
	for i := range h {
		if eqFold(h[i].Name, name) {
			vals = append(vals, h[i].Value)
		}
	}
	return vals
}

// eqFold is a fast ASCII case-insensitive comparison.
func eqFold(a []byte, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
