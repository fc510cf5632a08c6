// Package conn defines the contract between a parsed configuration and
// the connection-establishment subsystem. Establishing sockets, TLS and
// authentication live behind these interfaces, not here.
package conn

import (
	"context"

	"github.com/jackc/pgx/v5/pgproto3"

	"github.com/pg-sharding/pgconnstr/pkg/config"
	"github.com/pg-sharding/pgconnstr/pkg/tsa"
)

type InstanceStatus string

const (
	NotInitialized = InstanceStatus("NOT_INITIALIZED")
	Acquired       = InstanceStatus("ACQUIRED")
)

type DBInstance interface {
	Send(msg pgproto3.FrontendMessage) error
	Receive() (pgproto3.BackendMessage, error)

	Hostname() string

	Close() error
	Status() InstanceStatus
	SetStatus(status InstanceStatus)
}

// Connector establishes connections from a finished configuration. The
// implementation validates host/port count agreement, iterates hosts in
// order and applies the connect timeout per address attempt.
type Connector interface {
	Connect(ctx context.Context, cfg *config.Config) (DBInstance, error)
}

// SessionAttrsChecker verifies target_session_attrs against a live
// session after the handshake.
type SessionAttrsChecker interface {
	CheckTSA(instance DBInstance, attrs tsa.TSA) (tsa.CheckResult, error)
}
