package conn

import (
	"github.com/jackc/pgx/v5/pgproto3"

	"github.com/pg-sharding/pgconnstr/pkg/config"
)

// StartupMessage builds the startup packet parameter set for a
// configuration. The database defaults to the user when unset.
func StartupMessage(cfg *config.Config) *pgproto3.StartupMessage {
	parameters := map[string]string{
		"client_encoding": "UTF8",
	}

	if user, ok := cfg.User(); ok {
		parameters["user"] = user
		parameters["database"] = user
	}
	if dbname, ok := cfg.DBName(); ok {
		parameters["database"] = dbname
	}
	if options, ok := cfg.Options(); ok {
		parameters["options"] = options
	}
	if applicationName, ok := cfg.ApplicationName(); ok {
		parameters["application_name"] = applicationName
	}

	return &pgproto3.StartupMessage{
		ProtocolVersion: pgproto3.ProtocolVersionNumber,
		Parameters:      parameters,
	}
}
