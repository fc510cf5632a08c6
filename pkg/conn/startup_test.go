package conn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pg-sharding/pgconnstr/pkg/conn"
	"github.com/pg-sharding/pgconnstr/pkg/config"
)

func TestStartupMessageDatabaseDefaultsToUser(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New().SetUser("postgres")
	sm := conn.StartupMessage(cfg)

	assert.Equal("postgres", sm.Parameters["user"])
	assert.Equal("postgres", sm.Parameters["database"])
	assert.Equal("UTF8", sm.Parameters["client_encoding"])
}

func TestStartupMessageExplicitDatabase(t *testing.T) {
	assert := assert.New(t)

	cfg := config.New().
		SetUser("postgres").
		SetDBName("db").
		SetOptions("-c geqo=off").
		SetApplicationName("app")
	sm := conn.StartupMessage(cfg)

	assert.Equal("db", sm.Parameters["database"])
	assert.Equal("-c geqo=off", sm.Parameters["options"])
	assert.Equal("app", sm.Parameters["application_name"])
}

func TestStartupMessageEmptyConfig(t *testing.T) {
	assert := assert.New(t)

	sm := conn.StartupMessage(config.New())

	_, ok := sm.Parameters["user"]
	assert.False(ok)
	_, ok = sm.Parameters["database"]
	assert.False(ok)
}
