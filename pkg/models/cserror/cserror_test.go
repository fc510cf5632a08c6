package cserror_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pg-sharding/pgconnstr/pkg/models/cserror"
)

func TestErrorRendering(t *testing.T) {
	assert := assert.New(t)

	err := cserror.UnknownOption("foo")
	assert.Equal(cserror.CS_UNKNOWN_OPTION, err.ErrorCode)
	assert.Equal("Code: PGCSO. Name: unknown connection option. Description: unknown option `foo`.",
		err.Error())

	err = cserror.InvalidValue("port")
	assert.Equal(cserror.CS_INVALID_VALUE, err.ErrorCode)
	assert.Contains(err.Error(), "invalid value for option `port`")
}

func TestGetMessageByCode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("connection string syntax error", cserror.GetMessageByCode(cserror.CS_SYNTAX_ERROR))
	assert.Equal("Unexpected error", cserror.GetMessageByCode("nope"))
}
