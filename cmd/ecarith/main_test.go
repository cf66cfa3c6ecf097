package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecarith/internal/crypto/curves"
	"github.com/smallyu/go-ecarith/pkg/ec"
)

var toy = []string{"--a", "3", "--b", "1", "--q", "7"}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return strings.TrimSpace(stdout.String()), stderr.String(), err
}

func toyArgs(args ...string) []string {
	return append(append([]string{}, toy...), args...)
}

func TestArithmeticCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"on curve", toyArgs("oncurve", "X = 2; Y = 1;"), "true"},
		{"off curve", toyArgs("oncurve", "X = 2; Y = 2;"), "false"},
		{"infinity on curve", toyArgs("oncurve", "INF;"), "true"},
		{"unreduced on curve", toyArgs("oncurve", "X = 9; Y = 8;"), "true"},
		{"add", toyArgs("add", "X = 2; Y = 1;", "X = 0; Y = 1;"), "X = 5; Y = 6;"},
		{"add inverse", toyArgs("add", "X = 2; Y = 1;", "X = 2; Y = 6;"), "INF;"},
		{"double", toyArgs("double", "X = 2; Y = 1;"), "X = 5; Y = 1;"},
		{"neg", toyArgs("neg", "X = 2; Y = 1;"), "X = 2; Y = 6;"},
		{"mul", toyArgs("mul", "3", "X = 2; Y = 1;"), "X = 0; Y = 6;"},
		{"mul hex scalar", toyArgs("mul", "0xc", "X = 2; Y = 1;"), "INF;"},
		{"encode", toyArgs("encode", "X = 2; Y = 1;"), "040201"},
		{"encode compressed", toyArgs("encode", "--compressed", "X = 2; Y = 1;"), "0302"},
		{"decode", toyArgs("decode", "0302"), "X = 2; Y = 1;"},
		{"decode infinity", toyArgs("decode", "00"), "INF;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  error
	}{
		{"garbage point", toyArgs("oncurve", "garbage"), ec.ErrParse},
		{"add off curve", toyArgs("add", "X = 2; Y = 2;", "X = 0; Y = 1;"), ec.ErrNotOnCurve},
		{"negative scalar", toyArgs("mul", "--", "-1", "X = 2; Y = 1;"), ec.ErrInvalidScalar},
		{"non integer scalar", toyArgs("mul", "two", "X = 2; Y = 1;"), ec.ErrInvalidScalar},
		{"no generator", toyArgs("basemul", "1"), ec.ErrNoGenerator},
		{"bad hex", toyArgs("decode", "zz"), ec.ErrParse},
		{"singular curve", []string{"--a", "0", "--b", "0", "--q", "7", "double", "INF;"}, ec.ErrSingularCurve},
		{"unknown preset", []string{"--curve", "curve25519", "double", "INF;"}, ec.ErrUnknownCurve},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParametersWithoutModulus(t *testing.T) {
	for _, args := range [][]string{
		{"--a", "3", "--b", "1", "oncurve", "X = 2; Y = 1;"},
		{"--curve", "secp256k1", "--gx", "2", "--gy", "1", "basemul", "1"},
		{"--order", "12", "basemul", "1"},
	} {
		out, _, err := run(t, args...)
		assert.ErrorContains(t, err, "requires q", "%v", args)
		assert.Empty(t, out, "%v", args)
	}
}

func TestBaseMulDefaultCurve(t *testing.T) {
	out, _, err := run(t, "basemul", "1")
	require.NoError(t, err)

	g, _ := curves.Secp256k1().Generator()
	assert.Equal(t, g.String(), out)

	out, _, err = run(t, "--curve", "p-256", "basemul", "1")
	require.NoError(t, err)
	g, _ = curves.P256().Generator()
	assert.Equal(t, g.String(), out)
}

func TestRandomSeeded(t *testing.T) {
	first, _, err := run(t, "random", "--seed", "7")
	require.NoError(t, err)
	second, _, err := run(t, "random", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	p, err := curves.Secp256k1().ParsePoint(first)
	require.NoError(t, err)
	assert.False(t, p.IsInfinity())

	other, _, err := run(t, "random")
	require.NoError(t, err)
	_, err = curves.Secp256k1().ParsePoint(other)
	require.NoError(t, err)

	gen, _, err := run(t, "random", "--generator", "--seed", "7")
	require.NoError(t, err)
	_, err = curves.Secp256k1().ParsePoint(gen)
	require.NoError(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
curve:
  name: toy
  a: 3
  b: 1
  q: 7
  gx: 2
  gy: 1
  n: 12
`), 0o600))

	out, _, err := run(t, "--config", path, "basemul", "11")
	require.NoError(t, err)
	assert.Equal(t, "X = 2; Y = 6;", out)

	// flags override the file
	out, _, err = run(t, "--config", path, "--gy", "6", "basemul", "1")
	require.NoError(t, err)
	assert.Equal(t, "X = 2; Y = 6;", out)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, toyArgs("--log-level", "debug", "--log-format", "json", "double", "X = 2; Y = 1;")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"curve ready"`)
	assert.Contains(t, stderr, `"name":"ecarith"`)
	assert.Contains(t, stderr, `"result":"X = 5; Y = 1;"`)

	_, stderr, err = run(t, toyArgs("double", "X = 2; Y = 1;")...)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "curve ready")
}
