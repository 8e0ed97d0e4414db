package fastparser

// Byte classes for the request head, built once at init.
//
// tokenTable marks tchar (RFC 9110 §5.6.2): visible ASCII minus the
// separators ()<>@,;:\"/[]?={} and whitespace.
// targetTable marks bytes accepted inside a request-target: everything
// except controls, SP and DEL. obs-text (0x80-0xFF) is allowed.
// valueTable marks field-value bytes: HTAB, visible ASCII, SP and obs-text.
var (
	tokenTable  [256]bool
	targetTable [256]bool
	valueTable  [256]bool
)

func init() {
	for c := byte('0'); c <= '9'; c++ {
		tokenTable[c] = true
	}
	for c := byte('A'); c <= 'Z'; c++ {
		tokenTable[c] = true
	}
	for c := byte('a'); c <= 'z'; c++ {
		tokenTable[c] = true
	}
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		tokenTable[c] = true
	}

	for i := 0x21; i < 0x100; i++ {
		if i == 0x7f {
			continue
		}
		targetTable[i] = true
	}

	valueTable['\t'] = true
	for i := 0x20; i < 0x100; i++ {
		if i == 0x7f {
			continue
		}
		valueTable[i] = true
	}
}

func isToken(c byte) bool { return tokenTable[c] }

func isTargetByte(c byte) bool { return targetTable[c] }

func isValueByte(c byte) bool { return valueTable[c] }

// isOWS reports whether c is optional whitespace (SP or HTAB).
func isOWS(c byte) bool { return c == ' ' || c == '\t' }
