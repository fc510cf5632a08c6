package config

import (
	"runtime"
	"strings"
	"time"

	"go.uber.org/atomic"

	"github.com/pg-sharding/pgconnstr/pkg/tsa"
)

const DefaultPort = uint16(5432)

const DefaultKeepalivesIdle = 2 * time.Hour

// Resolved once at startup. On platforms without local socket support a
// leading-slash host degrades to a plain hostname, as libpq does.
var unixSocketsSupported = runtime.GOOS != "windows"

func UnixSocketsSupported() bool {
	return unixSocketsSupported
}

type HostType string

const (
	HostTypeTCP  = HostType("tcp")
	HostTypeUnix = HostType("unix")
)

// Host is a single connection endpoint: a network hostname or a
// directory containing Unix domain sockets.
type Host struct {
	Type HostType `json:"type"`
	Addr string   `json:"addr"`
}

type inner struct {
	refs atomic.Int64

	user            *string
	password        []byte
	dbname          *string
	options         *string
	applicationName *string

	hosts          []Host
	ports          []uint16
	connectTimeout time.Duration
	keepalives     bool
	keepalivesIdle time.Duration
	sessionAttrs   tsa.TSA
}

// Config is a parsed connection descriptor. Clones share one record;
// the first mutation after a clone materializes a private copy, so a
// config handed to a concurrent connection attempt never changes
// underfoot.
type Config struct {
	inner *inner
}

func New() *Config {
	in := &inner{
		keepalives:     true,
		keepalivesIdle: DefaultKeepalivesIdle,
		sessionAttrs:   tsa.TargetSessionAttrsAny,
	}
	in.refs.Store(1)
	return &Config{inner: in}
}

// Clone returns a cheap snapshot sharing the same record.
func (c *Config) Clone() *Config {
	c.inner.refs.Inc()
	return &Config{inner: c.inner}
}

func (in *inner) copy() *inner {
	cp := &inner{
		connectTimeout: in.connectTimeout,
		keepalives:     in.keepalives,
		keepalivesIdle: in.keepalivesIdle,
		sessionAttrs:   in.sessionAttrs,
	}
	cp.refs.Store(1)

	cp.user = copyString(in.user)
	cp.dbname = copyString(in.dbname)
	cp.options = copyString(in.options)
	cp.applicationName = copyString(in.applicationName)

	if in.password != nil {
		cp.password = append([]byte(nil), in.password...)
	}
	if in.hosts != nil {
		cp.hosts = append([]Host(nil), in.hosts...)
	}
	if in.ports != nil {
		cp.ports = append([]uint16(nil), in.ports...)
	}

	return cp
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// materialize makes the record exclusively owned before a mutation.
func (c *Config) materialize() *inner {
	if c.inner.refs.Load() == 1 {
		return c.inner
	}
	cp := c.inner.copy()
	c.inner.refs.Dec()
	c.inner = cp
	return cp
}

func (c *Config) SetUser(user string) *Config {
	c.materialize().user = &user
	return c
}

func (c *Config) SetPassword(password []byte) *Config {
	c.materialize().password = append([]byte(nil), password...)
	return c
}

func (c *Config) SetDBName(dbname string) *Config {
	c.materialize().dbname = &dbname
	return c
}

func (c *Config) SetOptions(options string) *Config {
	c.materialize().options = &options
	return c
}

func (c *Config) SetApplicationName(applicationName string) *Config {
	c.materialize().applicationName = &applicationName
	return c
}

// AddHost appends a connection endpoint. A leading slash means a Unix
// socket directory on platforms that have them.
func (c *Config) AddHost(host string) *Config {
	if unixSocketsSupported && strings.HasPrefix(host, "/") {
		return c.AddHostPath(host)
	}
	in := c.materialize()
	in.hosts = append(in.hosts, Host{Type: HostTypeTCP, Addr: host})
	return c
}

// AddHostPath appends a Unix socket directory without hostname detection.
// The path is kept as raw bytes and is not required to be valid text.
func (c *Config) AddHostPath(path string) *Config {
	in := c.materialize()
	in.hosts = append(in.hosts, Host{Type: HostTypeUnix, Addr: path})
	return c
}

func (c *Config) AddPort(port uint16) *Config {
	in := c.materialize()
	in.ports = append(in.ports, port)
	return c
}

func (c *Config) SetConnectTimeout(timeout time.Duration) *Config {
	c.materialize().connectTimeout = timeout
	return c
}

func (c *Config) SetKeepalives(keepalives bool) *Config {
	c.materialize().keepalives = keepalives
	return c
}

func (c *Config) SetKeepalivesIdle(keepalivesIdle time.Duration) *Config {
	c.materialize().keepalivesIdle = keepalivesIdle
	return c
}

func (c *Config) SetTargetSessionAttrs(attrs tsa.TSA) *Config {
	c.materialize().sessionAttrs = attrs
	return c
}

func (c *Config) User() (string, bool) {
	if c.inner.user == nil {
		return "", false
	}
	return *c.inner.user, true
}

func (c *Config) Password() ([]byte, bool) {
	if c.inner.password == nil {
		return nil, false
	}
	return append([]byte(nil), c.inner.password...), true
}

func (c *Config) DBName() (string, bool) {
	if c.inner.dbname == nil {
		return "", false
	}
	return *c.inner.dbname, true
}

func (c *Config) Options() (string, bool) {
	if c.inner.options == nil {
		return "", false
	}
	return *c.inner.options, true
}

func (c *Config) ApplicationName() (string, bool) {
	if c.inner.applicationName == nil {
		return "", false
	}
	return *c.inner.applicationName, true
}

func (c *Config) Hosts() []Host {
	return append([]Host(nil), c.inner.hosts...)
}

func (c *Config) Ports() []uint16 {
	return append([]uint16(nil), c.inner.ports...)
}

// ConnectTimeout reports the per-address connection timeout; ok is false
// when connection attempts are unbounded.
func (c *Config) ConnectTimeout() (time.Duration, bool) {
	return c.inner.connectTimeout, c.inner.connectTimeout > 0
}

func (c *Config) Keepalives() bool {
	return c.inner.keepalives
}

func (c *Config) KeepalivesIdle() time.Duration {
	return c.inner.keepalivesIdle
}

func (c *Config) TargetSessionAttrs() tsa.TSA {
	return c.inner.sessionAttrs
}

func (c *Config) Equal(other *Config) bool {
	if c.inner == other.inner {
		return true
	}
	a, b := c.inner, other.inner
	if !equalString(a.user, b.user) ||
		!equalString(a.dbname, b.dbname) ||
		!equalString(a.options, b.options) ||
		!equalString(a.applicationName, b.applicationName) {
		return false
	}
	if (a.password == nil) != (b.password == nil) || string(a.password) != string(b.password) {
		return false
	}
	if len(a.hosts) != len(b.hosts) {
		return false
	}
	for i := range a.hosts {
		if a.hosts[i] != b.hosts[i] {
			return false
		}
	}
	if len(a.ports) != len(b.ports) {
		return false
	}
	for i := range a.ports {
		if a.ports[i] != b.ports[i] {
			return false
		}
	}
	return a.connectTimeout == b.connectTimeout &&
		a.keepalives == b.keepalives &&
		a.keepalivesIdle == b.keepalivesIdle &&
		a.sessionAttrs == b.sessionAttrs
}

func equalString(a, b *string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return a == nil || *a == *b
}
