package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/pretender/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunScriptDrawsLine(t *testing.T) {
	script := strings.NewReader("type l\nenter\nclick 10 10\nclick 50 80\ntype p\nenter\nclick 3 4\n")
	var out bytes.Buffer

	require.NoError(t, runScript(config.Default(), zap.NewNop(), script, &out))

	text := out.String()
	assert.Contains(t, text, "played 7/7 events, running=true")
	assert.Contains(t, text, `layer 0@0 "0" shown`)
	assert.Contains(t, text, `line 0@0 layer="0" (10,10)-(50,80)`)
	assert.Contains(t, text, `point 1@0 layer="0" (3,4)`)
	assert.NotContains(t, text, "prompt:")
}

func TestRunScriptReportsPendingPrompt(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScript(config.Default(), zap.NewNop(), strings.NewReader("type line\nenter\n"), &out))
	assert.Contains(t, out.String(), "prompt: line: point 1/2 x=")
}

func TestRunScriptStopsAtQuit(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScript(config.Default(), zap.NewNop(), strings.NewReader("type q\nenter\ntype l\n"), &out))
	assert.Contains(t, out.String(), "played 2/3 events, running=false")
}

func TestRunScriptRejectsBadScript(t *testing.T) {
	err := runScript(config.Default(), zap.NewNop(), strings.NewReader("jump\n"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestSetupReadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretender.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  output: stderr\neditor:\n  aliases:\n    ln: line\n"), 0o644))

	cfg, log, err := setup(path)
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, "line", cfg.Editor.Aliases["ln"])
	assert.Equal(t, config.Default().Window, cfg.Window)

	require.NoError(t, os.WriteFile(path, []byte("window:\n  width: -1\n"), 0o644))
	_, _, err = setup(path)
	assert.Error(t, err)
}
