package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaedroho/sexpr/parser"
)

func runCmd(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmdStdin(t *testing.T) {
	out, err := runCmd(t, newParseCmd(), "(a (b) \"c d\") ; x\n(e)")
	require.NoError(t, err)
	assert.Equal(t, "(a (b) \"c d\")\n(e)\n", out)
}

func TestParseCmdFormats(t *testing.T) {
	out, err := runCmd(t, newParseCmd(), "(a (b))", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "elements")

	out, err = runCmd(t, newParseCmd(), "(a)", "--format", "tree")
	require.NoError(t, err)
	assert.Equal(t, "(node)[1]\n    (text): a\n", out)

	_, err = runCmd(t, newParseCmd(), "(a)", "--format", "xml")
	assert.EqualError(t, err, "unknown format: xml")
}

func TestParseCmdFiles(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.wast")
	require.NoError(t, os.WriteFile(good, []byte("(module (memory 0 0))\n"), 0o644))

	bad := filepath.Join(dir, "bad.wast")
	require.NoError(t, os.WriteFile(bad, []byte("(module\n"), 0o644))

	out, err := runCmd(t, newParseCmd(), "", good)
	require.NoError(t, err)
	assert.Equal(t, "(module (memory 0 0))\n", out)

	_, err = runCmd(t, newParseCmd(), "", good, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, parser.ErrUnclosedBracket))
	assert.Contains(t, err.Error(), "bad.wast:1:1")

	_, err = runCmd(t, newParseCmd(), "", filepath.Join(dir, "missing.wast"))
	assert.Error(t, err)
}

func TestDemoCmd(t *testing.T) {
	out, err := runCmd(t, newDemoCmd(), "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "(module (memory 0 0))", lines[0])
	assert.Len(t, lines, 47)
}

func TestCheckCmd(t *testing.T) {
	out, err := runCmd(t, newCheckCmd(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "memory.wast: ok ("))

	dir := t.TempDir()
	quirk := filepath.Join(dir, "quirk.wast")
	require.NoError(t, os.WriteFile(quirk, []byte("(a;c\nb)\n"), 0o644))

	_, err = runCmd(t, newCheckCmd(), "", quirk)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsers disagree")
}
