package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pg-sharding/pgconnstr/pkg/config"
	"github.com/pg-sharding/pgconnstr/pkg/parser"
	"github.com/pg-sharding/pgconnstr/pkg/tsa"
)

func TestConnString(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New().
		SetUser("postgres").
		SetPassword([]byte("password with spaces")).
		AddHost("localhost").
		AddPort(5433).
		SetKeepalives(false)

	assert.Equal("user=postgres password='password with spaces' host=localhost port=5433 keepalives=0",
		cfg.ConnString())
}

func TestConnStringQuoting(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New().SetUser("").SetPassword([]byte(`it\'s`))
	assert.Equal(`user='' password='it\\\'s'`, cfg.ConnString())
}

func TestConnStringRoundTrip(t *testing.T) {
	assert := assert.New(t)

	configs := []*config.Config{
		config.New(),
		config.New().SetUser("postgres"),
		config.New().
			SetUser("u ser").
			SetPassword([]byte(`pa'ss\word`)).
			SetDBName("db").
			SetOptions("-c geqo=off").
			SetApplicationName("app name").
			AddHost("h1").
			AddHost("/var/run/postgresql").
			AddPort(1234).
			AddPort(5432).
			SetConnectTimeout(10 * time.Second).
			SetKeepalives(false).
			SetKeepalivesIdle(30 * time.Second).
			SetTargetSessionAttrs(tsa.TargetSessionAttrsRW),
	}

	for _, cfg := range configs {
		printed := cfg.ConnString()
		reparsed, err := parser.Parse(printed)
		assert.NoError(err, "reparse %q", printed)
		if err != nil {
			continue
		}
		assert.True(cfg.Equal(reparsed), "round trip %q", printed)
	}
}
