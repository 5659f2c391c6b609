/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

var config *toml.Tree

// LoadConfig loads the configuration from the specified file.
// Files ending in .yml or .yaml are parsed as YAML, everything else as TOML.
func LoadConfig(file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yml", ".yaml":
		raw, err := os.ReadFile(file)
		if err != nil {
			return errors.Wrap(err, "unable to read configuration file")
		}
		tree := make(map[string]interface{})
		if err := yaml.Unmarshal(raw, &tree); err != nil {
			return errors.Wrap(err, "unable to parse configuration file")
		}
		if err := SetConfig(tree); err != nil {
			return err
		}
	default:
		tree, err := toml.LoadFile(file)
		if err != nil {
			return errors.Wrap(err, "unable to load configuration file")
		}
		config = tree
	}
	LogInfo("Config", "Loaded configuration from ", file)
	return nil
}

// SetConfig replaces the configuration with the contents of a (possibly nested) map.
func SetConfig(values map[string]interface{}) error {
	tree, err := toml.TreeFromMap(values)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	config = tree
	return nil
}

func getConfig(key string) interface{} {
	if config == nil {
		return nil
	}
	return config.Get(key)
}

// TOML trees hold int64, YAML documents may produce uint64.
func configInt(valRaw interface{}) (int64, bool) {
	switch val := valRaw.(type) {
	case int64:
		return val, true
	case uint64:
		if val <= math.MaxInt64 {
			return int64(val), true
		}
	}
	return 0, false
}

// GetConfigIntDefault returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigIntDefault(key string, def int) int {
	valRaw := getConfig(key)
	if valRaw == nil {
		return def
	}
	val, ok := configInt(valRaw)
	if ok && val >= math.MinInt32 && val <= math.MaxInt32 {
		return int(val)
	}
	return def
}

// GetConfigStringDefault returns the string configuration value at the specified key or the specified default value if it does not exist.
func GetConfigStringDefault(key string, def string) string {
	valRaw := getConfig(key)
	if valRaw == nil {
		return def
	}
	val, ok := valRaw.(string)
	if ok {
		return val
	}
	return def
}

// GetConfigUint16Default returns the integer configuration value at the specified key or the specified default value if it does not exist.
func GetConfigUint16Default(key string, def uint16) uint16 {
	valRaw := getConfig(key)
	if valRaw == nil {
		return def
	}
	val, ok := configInt(valRaw)
	if ok && val > 0 && val <= math.MaxUint16 {
		return uint16(val)
	}
	return def
}
