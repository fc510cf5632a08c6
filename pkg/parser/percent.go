package parser

import (
	"unicode/utf8"

	"github.com/pg-sharding/pgconnstr/pkg/models/cserror"
)

// percentDecode reverses %XX escaping. It is deliberately lenient, as
// libpq is: malformed escapes are passed through verbatim and `+` is
// left untouched.
func percentDecode(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 3
				continue
			}
		}
		out = append(out, s[i])
		i++
	}
	return out
}

// decodeText percent-decodes a component that must be valid text.
func decodeText(s string) (string, error) {
	decoded := percentDecode(s)
	if !utf8.Valid(decoded) {
		return "", cserror.New(cserror.CS_DECODE_ERROR, "percent-encoded value is not valid UTF-8")
	}
	return string(decoded), nil
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
