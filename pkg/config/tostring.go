package config

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// ConnString prints the configuration back in key/value form. Values
// containing whitespace, quotes or backslashes are single-quoted.
// Re-parsing the result yields an equal configuration.
func (c *Config) ConnString() string {
	var pairs []string
	add := func(key, value string) {
		pairs = append(pairs, key+"="+quoteValue(value))
	}

	if user, ok := c.User(); ok {
		add("user", user)
	}
	if password, ok := c.Password(); ok {
		add("password", string(password))
	}
	if dbname, ok := c.DBName(); ok {
		add("dbname", dbname)
	}
	if options, ok := c.Options(); ok {
		add("options", options)
	}
	if applicationName, ok := c.ApplicationName(); ok {
		add("application_name", applicationName)
	}
	if hosts := c.inner.hosts; len(hosts) > 0 {
		addrs := make([]string, len(hosts))
		for i, host := range hosts {
			addrs[i] = host.Addr
		}
		add("host", strings.Join(addrs, ","))
	}
	if ports := c.inner.ports; len(ports) > 0 {
		reprs := make([]string, len(ports))
		for i, port := range ports {
			reprs[i] = strconv.FormatUint(uint64(port), 10)
		}
		add("port", strings.Join(reprs, ","))
	}
	if timeout, ok := c.ConnectTimeout(); ok {
		add("connect_timeout", strconv.FormatInt(int64(timeout.Seconds()), 10))
	}
	if !c.Keepalives() {
		add("keepalives", "0")
	}
	if idle := c.KeepalivesIdle(); idle != DefaultKeepalivesIdle {
		add("keepalives_idle", strconv.FormatInt(int64(idle.Seconds()), 10))
	}
	if attrs := c.TargetSessionAttrs(); attrs != "" && attrs != "any" {
		add("target_session_attrs", string(attrs))
	}

	return strings.Join(pairs, " ")
}

var valueEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func quoteValue(value string) string {
	escaped := valueEscaper.Replace(value)
	if value == "" || escaped != value || strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return "'" + escaped + "'"
	}
	return value
}

type configRepr struct {
	User               *string  `json:"user,omitempty"`
	Password           *string  `json:"password,omitempty"`
	DBName             *string  `json:"dbname,omitempty"`
	Options            *string  `json:"options,omitempty"`
	ApplicationName    *string  `json:"application_name,omitempty"`
	Hosts              []Host   `json:"hosts,omitempty"`
	Ports              []uint16 `json:"ports,omitempty"`
	ConnectTimeout     int64    `json:"connect_timeout,omitempty"`
	Keepalives         bool     `json:"keepalives"`
	KeepalivesIdle     int64    `json:"keepalives_idle"`
	TargetSessionAttrs string   `json:"target_session_attrs"`
}

func (c *Config) MarshalJSON() ([]byte, error) {
	in := c.inner
	repr := configRepr{
		User:               in.user,
		DBName:             in.dbname,
		Options:            in.options,
		ApplicationName:    in.applicationName,
		Hosts:              in.hosts,
		Ports:              in.ports,
		ConnectTimeout:     int64(in.connectTimeout.Seconds()),
		Keepalives:         in.keepalives,
		KeepalivesIdle:     int64(in.keepalivesIdle.Seconds()),
		TargetSessionAttrs: string(in.sessionAttrs),
	}
	if in.password != nil {
		password := string(in.password)
		repr.Password = &password
	}
	return json.Marshal(repr)
}
