package tsa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pg-sharding/pgconnstr/pkg/models/cserror"
	"github.com/pg-sharding/pgconnstr/pkg/tsa"
)

func TestParseTSA(t *testing.T) {
	assert := assert.New(t)

	attrs, err := tsa.ParseTSA("any")
	assert.NoError(err)
	assert.Equal(tsa.TargetSessionAttrsAny, attrs)

	attrs, err = tsa.ParseTSA("read-write")
	assert.NoError(err)
	assert.Equal(tsa.TargetSessionAttrsRW, attrs)
}

func TestParseTSAInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []string{"", "read-only", "Any", "READ-WRITE", "read_write"} {
		_, err := tsa.ParseTSA(value)
		assert.Error(err, "value %q", value)

		var csErr *cserror.CSError
		assert.ErrorAs(err, &csErr)
		assert.Equal(cserror.CS_INVALID_VALUE, csErr.ErrorCode)
	}
}
