package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/pg-sharding/pgconnstr/pkg/config"
	"github.com/pg-sharding/pgconnstr/pkg/models/cserror"
)

var urlPrefixes = []string{"postgres://", "postgresql://"}

// urlParser scans the connection URL grammar. It is deliberately loose,
// matching libpq rather than RFC 3986: components are located by simple
// delimiter scans, left to right, each section optional.
type urlParser struct {
	s   string
	cfg *config.Config
}

func stripURLPrefix(s string) (string, bool) {
	for _, prefix := range urlPrefixes {
		if strings.HasPrefix(s, prefix) {
			return s[len(prefix):], true
		}
	}
	return "", false
}

func parseURL(s string) (*config.Config, error) {
	p := &urlParser{
		s:   s,
		cfg: config.New(),
	}

	if err := p.parseCredentials(); err != nil {
		return nil, err
	}
	if err := p.parseHost(); err != nil {
		return nil, err
	}
	if err := p.parsePath(); err != nil {
		return nil, err
	}
	if err := p.parseParams(); err != nil {
		return nil, err
	}

	return p.cfg, nil
}

// takeUntil cuts the input at the first occurrence of any delimiter,
// leaving the delimiter in place.
func (p *urlParser) takeUntil(delims string) (string, bool) {
	pos := strings.IndexAny(p.s, delims)
	if pos < 0 {
		return "", false
	}
	head := p.s[:pos]
	p.s = p.s[pos:]
	return head, true
}

func (p *urlParser) takeAll() string {
	head := p.s
	p.s = ""
	return head
}

func (p *urlParser) eatByte() {
	p.s = p.s[1:]
}

func (p *urlParser) parseCredentials() error {
	creds, ok := p.takeUntil("@")
	if !ok {
		// no credentials section, the text is host/path instead
		return nil
	}
	p.eatByte()

	rawUser := creds
	rawPassword := ""
	hasPassword := false
	if pos := strings.IndexByte(creds, ':'); pos >= 0 {
		rawUser = creds[:pos]
		rawPassword = creds[pos+1:]
		hasPassword = true
	}

	user, err := decodeText(rawUser)
	if err != nil {
		return err
	}
	p.cfg.SetUser(user)

	if hasPassword {
		p.cfg.SetPassword(percentDecode(rawPassword))
	}

	return nil
}

func (p *urlParser) parseHost() error {
	host, ok := p.takeUntil("/?")
	if !ok {
		host = p.takeAll()
	}

	if host == "" {
		return nil
	}

	for _, chunk := range strings.Split(host, ",") {
		var hostTok string
		var portTok string
		hasPort := false

		if strings.HasPrefix(chunk, "[") {
			// bracketed host, keeps IPv6 colons out of the port split
			end := strings.IndexByte(chunk, ']')
			if end < 0 {
				return cserror.InvalidValue("host")
			}
			hostTok = chunk[1:end]
			rest := chunk[end+1:]
			switch {
			case strings.HasPrefix(rest, ":"):
				portTok = rest[1:]
				hasPort = true
			case rest == "":
			default:
				return cserror.InvalidValue("host")
			}
		} else {
			hostTok = chunk
			if pos := strings.IndexByte(chunk, ':'); pos >= 0 {
				hostTok = chunk[:pos]
				portTok = chunk[pos+1:]
				hasPort = true
			}
		}

		if err := p.hostParam(hostTok); err != nil {
			return err
		}
		if !hasPort {
			portTok = "5432"
		}
		port, err := decodeText(portTok)
		if err != nil {
			return err
		}
		if err := p.cfg.Apply("port", port); err != nil {
			return err
		}
	}

	return nil
}

func (p *urlParser) parsePath() error {
	if !strings.HasPrefix(p.s, "/") {
		return nil
	}
	p.eatByte()

	dbname, ok := p.takeUntil("?")
	if !ok {
		dbname = p.takeAll()
	}

	if dbname != "" {
		decoded, err := decodeText(dbname)
		if err != nil {
			return err
		}
		p.cfg.SetDBName(decoded)
	}

	return nil
}

func (p *urlParser) parseParams() error {
	if !strings.HasPrefix(p.s, "?") {
		return nil
	}
	p.eatByte()

	for len(p.s) > 0 {
		rawKey, ok := p.takeUntil("=")
		if !ok {
			return cserror.New(cserror.CS_SYNTAX_ERROR, "unterminated parameter")
		}
		p.eatByte()

		var value string
		if head, ok := p.takeUntil("&"); ok {
			value = head
			p.eatByte()
		} else {
			value = p.takeAll()
		}

		key, err := decodeText(rawKey)
		if err != nil {
			return err
		}

		if key == "host" {
			if err := p.hostParam(value); err != nil {
				return err
			}
		} else {
			decoded, err := decodeText(value)
			if err != nil {
				return err
			}
			if err := p.cfg.Apply(key, decoded); err != nil {
				return err
			}
		}
	}

	return nil
}

// hostParam applies one percent-encoded host token. A decoded leading
// slash means a Unix socket directory; the raw decoded bytes are kept
// since socket paths need not be valid text.
func (p *urlParser) hostParam(s string) error {
	decoded := percentDecode(s)

	if config.UnixSocketsSupported() && len(decoded) > 0 && decoded[0] == '/' {
		p.cfg.AddHostPath(string(decoded))
		return nil
	}

	if !utf8.Valid(decoded) {
		return cserror.New(cserror.CS_DECODE_ERROR, "percent-encoded host is not valid UTF-8")
	}
	p.cfg.AddHost(string(decoded))

	return nil
}
