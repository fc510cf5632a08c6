// Package parser turns a libpq-style connection descriptor, in either
// key/value or URL form, into a config.Config.
package parser

import (
	"github.com/pg-sharding/pgconnstr/pkg/config"
)

// Parse dispatches on the URL scheme prefix and falls back to the
// key/value grammar. It either returns a fully populated configuration
// or a single terminal error; there is no partial result.
func Parse(s string) (*config.Config, error) {
	if rest, ok := stripURLPrefix(s); ok {
		return parseURL(rest)
	}
	return parseKeyValue(s)
}
