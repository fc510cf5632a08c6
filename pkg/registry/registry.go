// Package registry loads named connection descriptors from a config
// file and parses each into a normalized configuration.
package registry

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/pg-sharding/pgconnstr/pkg/config"
	"github.com/pg-sharding/pgconnstr/pkg/cslog"
	"github.com/pg-sharding/pgconnstr/pkg/parser"
)

type ConnectionSet struct {
	Connections map[string]string `json:"connections" toml:"connections" yaml:"connections"`
}

// Load reads a .toml, .yaml or .json file mapping names to connection
// strings and parses every entry.
func Load(cfgPath string) (map[string]*config.Config, error) {
	file, err := os.Open(cfgPath)
	if err != nil {
		return nil, xerrors.Errorf("open connection registry %q: %w", cfgPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var set ConnectionSet
	if err := initRegistry(file, &set); err != nil {
		return nil, xerrors.Errorf("decode connection registry %q: %w", cfgPath, err)
	}

	res := make(map[string]*config.Config, len(set.Connections))
	names := make([]string, 0, len(set.Connections))
	for name, descriptor := range set.Connections {
		cfg, err := parser.Parse(descriptor)
		if err != nil {
			return nil, xerrors.Errorf("parse connection %q: %w", name, err)
		}
		res[name] = cfg
		names = append(names, name)
	}
	sort.Strings(names)

	cslog.Zero.Debug().
		Strs("connections", names).
		Msg("loaded connection registry")

	return res, nil
}

func initRegistry(file *os.File, set *ConnectionSet) error {
	if strings.HasSuffix(file.Name(), ".toml") {
		_, err := toml.NewDecoder(file).Decode(set)
		return err
	}
	if strings.HasSuffix(file.Name(), ".yaml") {
		return yaml.NewDecoder(file).Decode(set)
	}
	if strings.HasSuffix(file.Name(), ".json") {
		return json.NewDecoder(file).Decode(set)
	}
	return xerrors.Errorf("unknown config format type: %s. Use .toml, .yaml or .json suffix in filename", file.Name())
}
