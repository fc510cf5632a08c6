package tsa

import (
	"github.com/pg-sharding/pgconnstr/pkg/models/cserror"
)

// TSA is stands for target_session_attrs,
// a requirement on the server session checked by the
// connector after the handshake.
type TSA string

const (
	TargetSessionAttrsAny = TSA("any")
	TargetSessionAttrsRW  = TSA("read-write")
)

type CheckResult struct {
	Alive  bool
	RW     bool
	Reason string
}

// ParseTSA validates a target_session_attrs option value.
func ParseTSA(value string) (TSA, error) {
	switch value {
	case "any":
		return TargetSessionAttrsAny, nil
	case "read-write":
		return TargetSessionAttrsRW, nil
	default:
		return "", cserror.InvalidValue("target_session_attrs")
	}
}
