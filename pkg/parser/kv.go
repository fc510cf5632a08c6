package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pg-sharding/pgconnstr/pkg/config"
	"github.com/pg-sharding/pgconnstr/pkg/models/cserror"
)

// kvParser scans the libpq key/value grammar: whitespace-separated
// `key=value` pairs, optional whitespace around `=`, values optionally
// single-quoted with backslash escapes.
type kvParser struct {
	s string
	i int
}

func parseKeyValue(s string) (*config.Config, error) {
	p := &kvParser{s: s}
	cfg := config.New()

	for {
		key, value, ok, err := p.parameter()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if err := cfg.Apply(key, value); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (p *kvParser) peek() (rune, bool) {
	if p.i >= len(p.s) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.s[p.i:])
	return r, true
}

// next consumes one rune, returning it with its byte offset.
func (p *kvParser) next() (rune, int, bool) {
	if p.i >= len(p.s) {
		return 0, p.i, false
	}
	r, size := utf8.DecodeRuneInString(p.s[p.i:])
	pos := p.i
	p.i += size
	return r, pos, true
}

func (p *kvParser) takeWhile(f func(rune) bool) string {
	start := p.i
	for {
		r, ok := p.peek()
		if !ok || !f(r) {
			return p.s[start:p.i]
		}
		p.next()
	}
}

func (p *kvParser) skipWS() {
	p.takeWhile(unicode.IsSpace)
}

func (p *kvParser) eat(target rune) error {
	r, pos, ok := p.next()
	if !ok {
		return cserror.New(cserror.CS_SYNTAX_ERROR, "unexpected EOF")
	}
	if r != target {
		return cserror.Newf(cserror.CS_SYNTAX_ERROR,
			"unexpected character at byte %d: expected `%c` but got `%c`", pos, target, r)
	}
	return nil
}

func (p *kvParser) eatIf(target rune) bool {
	if r, ok := p.peek(); ok && r == target {
		p.next()
		return true
	}
	return false
}

func (p *kvParser) keyword() string {
	return p.takeWhile(func(r rune) bool {
		return !unicode.IsSpace(r) && r != '='
	})
}

func (p *kvParser) value() (string, error) {
	if p.eatIf('\'') {
		value, err := p.quotedValue()
		if err != nil {
			return "", err
		}
		if err := p.eat('\''); err != nil {
			return "", err
		}
		return value, nil
	}
	return p.simpleValue()
}

func (p *kvParser) simpleValue() (string, error) {
	var value strings.Builder

	for {
		r, ok := p.peek()
		if !ok || unicode.IsSpace(r) {
			break
		}
		p.next()
		if r == '\\' {
			if escaped, _, ok := p.next(); ok {
				value.WriteRune(escaped)
			}
		} else {
			value.WriteRune(r)
		}
	}

	// empty values must be quoted
	if value.Len() == 0 {
		return "", cserror.New(cserror.CS_SYNTAX_ERROR, "unexpected EOF")
	}

	return value.String(), nil
}

func (p *kvParser) quotedValue() (string, error) {
	var value strings.Builder

	for {
		r, ok := p.peek()
		if !ok {
			return "", cserror.New(cserror.CS_SYNTAX_ERROR,
				"unterminated quoted connection parameter value")
		}
		if r == '\'' {
			return value.String(), nil
		}
		p.next()
		if r == '\\' {
			if escaped, _, ok := p.next(); ok {
				value.WriteRune(escaped)
			}
		} else {
			value.WriteRune(r)
		}
	}
}

func (p *kvParser) parameter() (string, string, bool, error) {
	p.skipWS()
	key := p.keyword()
	if key == "" {
		return "", "", false, nil
	}
	p.skipWS()
	if err := p.eat('='); err != nil {
		return "", "", false, err
	}
	p.skipWS()
	value, err := p.value()
	if err != nil {
		return "", "", false, err
	}
	return key, value, true, nil
}
