package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pg-sharding/pgconnstr/pkg/models/cserror"
	"github.com/pg-sharding/pgconnstr/pkg/tsa"
)

// Apply routes one decoded key/value pair to the matching typed setter.
// Both grammars feed parsed pairs through here. A failing call leaves
// the config untouched.
func (c *Config) Apply(key string, value string) error {
	switch key {
	case "user":
		c.SetUser(value)
	case "password":
		c.SetPassword([]byte(value))
	case "dbname":
		c.SetDBName(value)
	case "options":
		c.SetOptions(value)
	case "application_name":
		c.SetApplicationName(value)
	case "host":
		for _, host := range strings.Split(value, ",") {
			c.AddHost(host)
		}
	case "port":
		chunks := strings.Split(value, ",")
		ports := make([]uint16, 0, len(chunks))
		for _, chunk := range chunks {
			// an empty list slot means the default port
			if chunk == "" {
				ports = append(ports, DefaultPort)
				continue
			}
			port, err := strconv.ParseUint(chunk, 10, 16)
			if err != nil {
				return cserror.InvalidValue("port")
			}
			ports = append(ports, uint16(port))
		}
		for _, port := range ports {
			c.AddPort(port)
		}
	case "connect_timeout":
		timeout, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return cserror.InvalidValue("connect_timeout")
		}
		// non-positive means unbounded, per libpq
		if timeout > 0 {
			c.SetConnectTimeout(time.Duration(timeout) * time.Second)
		}
	case "keepalives":
		keepalives, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return cserror.InvalidValue("keepalives")
		}
		c.SetKeepalives(keepalives != 0)
	case "keepalives_idle":
		idle, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return cserror.InvalidValue("keepalives_idle")
		}
		if idle > 0 {
			c.SetKeepalivesIdle(time.Duration(idle) * time.Second)
		}
	case "target_session_attrs":
		attrs, err := tsa.ParseTSA(value)
		if err != nil {
			return err
		}
		c.SetTargetSessionAttrs(attrs)
	default:
		return cserror.UnknownOption(key)
	}

	return nil
}
