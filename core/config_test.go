/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/named-data/ndntlv/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigToml(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ndntlv.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[core]
log_level = "DEBUG"

[tlv]
max_packet_size = 4096

[face.udp]
port = 6363
`), 0o600))
	require.NoError(t, core.LoadConfig(file))

	assert.Equal(t, "DEBUG", core.GetConfigStringDefault("core.log_level", "INFO"))
	assert.Equal(t, 4096, core.GetConfigIntDefault("tlv.max_packet_size", 8800))
	assert.Equal(t, uint16(6363), core.GetConfigUint16Default("face.udp.port", 1))

	assert.Equal(t, 16, core.GetConfigIntDefault("tlv.pool_blocks", 16))
	assert.Equal(t, "x", core.GetConfigStringDefault("tlv.max_packet_size", "x"))
	assert.Equal(t, uint16(1), core.GetConfigUint16Default("core.log_level", 1))
}

func TestLoadConfigYaml(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ndntlv.yml")
	require.NoError(t, os.WriteFile(file, []byte(`
core:
  log_level: WARN
tlv:
  max_packet_size: 2048
`), 0o600))
	require.NoError(t, core.LoadConfig(file))

	assert.Equal(t, "WARN", core.GetConfigStringDefault("core.log_level", "INFO"))
	assert.Equal(t, 2048, core.GetConfigIntDefault("tlv.max_packet_size", 8800))
}

func TestLoadConfigMissing(t *testing.T) {
	assert.Error(t, core.LoadConfig(filepath.Join(t.TempDir(), "absent.toml")))
}

func TestSetConfig(t *testing.T) {
	require.NoError(t, core.SetConfig(map[string]interface{}{
		"tlv": map[string]interface{}{"pool_blocks": 4},
	}))
	assert.Equal(t, 4, core.GetConfigIntDefault("tlv.pool_blocks", 16))
	assert.Equal(t, uint16(7), core.GetConfigUint16Default("face.udp.port", 7))
}
