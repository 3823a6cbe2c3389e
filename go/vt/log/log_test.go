/*
Copyright 2019 The Vitess Authors.
 Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
     http://www.apache.org/licenses/LICENSE-2.0
 Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level slog.Level) *bytes.Buffer {
	var buf bytes.Buffer
	restore := SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(restore)
	return &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestStructuredHelpers(t *testing.T) {
	buf := captureJSON(t, slog.LevelInfo)

	InfoS("registry built", "builtins", 3)
	DebugS("hidden")
	WarnS("careful")
	Errorf("no implementation for %s(%s)", "SQRT", "INT32")

	recs := records(t, buf)
	require.Len(t, recs, 3)
	assert.Equal(t, "registry built", recs[0]["msg"])
	assert.Equal(t, float64(3), recs[0]["builtins"])
	assert.Equal(t, "WARN", recs[1]["level"])
	assert.Equal(t, "ERROR", recs[2]["level"])
	assert.Equal(t, "no implementation for SQRT(INT32)", recs[2]["msg"])
}

func TestVerbose(t *testing.T) {
	buf := captureJSON(t, slog.LevelInfo)
	assert.True(t, bool(V(0)))
	assert.False(t, bool(V(2)))
	V(2).Infof("suppressed %d", 2)
	V(0).Infof("shown %d", 0)

	recs := records(t, buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "shown 0", recs[0]["msg"])
}

func TestInit(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)

	// not changed: stays on glog
	require.NoError(t, Init(fs))
	assert.False(t, structuredLoggingEnabled.Load())

	require.NoError(t, fs.Parse([]string{"--log-fmt", "yaml"}))
	assert.ErrorContains(t, Init(fs), `invalid log-fmt "yaml"`)

	require.NoError(t, fs.Parse([]string{"--log-fmt", "logfmt", "--log-level", "loud"}))
	assert.ErrorContains(t, Init(fs), `invalid log-level "loud"`)

	require.NoError(t, fs.Parse([]string{"--log-rotate-max-size", "1024"}))
	assert.Equal(t, "1024", fs.Lookup("log-rotate-max-size").Value.String())
}

func TestSlogLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"Error":  slog.LevelError,
	} {
		got, err := slogLevel(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
