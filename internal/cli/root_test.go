package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "fgs", cmd.Use)
	assert.Contains(t, cmd.Long, "pattern")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"search", "simulate", "compare"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.NotNil(t, sub)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	level := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, level)
	assert.Equal(t, "warn", level.DefValue)

	format := cmd.PersistentFlags().Lookup("log-format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestSearchCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	searchCmd, _, err := cmd.Find([]string{"search"})
	require.NoError(t, err)

	defaults := map[string]string{
		"data":                     "",
		"delimiter":                "tab",
		"penalty-discount":         "4",
		"depth":                    "-1",
		"faithful":                 "false",
		"ignore-linear-dependence": "false",
		"verbose":                  "false",
		"graphml":                  "false",
		"dir-out":                  ".",
		"timeout":                  "0s",
	}
	for name, def := range defaults {
		f := searchCmd.Flags().Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, def, f.DefValue, name)
	}
	assert.NotNil(t, searchCmd.Flags().Lookup("thread"))
}

func TestInputErrors(t *testing.T) {
	data := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(data, []byte("A\tB\n1\t2\n2\t1\n3\t5\n"), 0o644))

	cases := map[string][]string{
		"no data":       {"search"},
		"bad depth":     {"search", "--data", data, "--depth", "-2"},
		"missing file":  {"search", "--data", data + ".missing"},
		"bad delimiter": {"search", "--data", data, "--delimiter", "nope"},
		"bad threads":   {"search", "--data", data, "--thread", "0"},
		"unknown flag":  {"search", "--bogus"},
		"bad log level": {"--log-level", "loud", "compare", "--target", "a", "--reference", "b"},
		"compare args":  {"compare"},
		"simulate out":  {"simulate"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			cmd := NewRootCommand()
			cmd.SetArgs(args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			err := cmd.Execute()
			require.Error(t, err)
			assert.True(t, IsInputError(err), "%v", err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("debug", "json", &buf)
	logger.Debug("hello", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	logger = newLogger("error", "text", &buf)
	logger.Info("quiet")
	assert.Empty(t, buf.String())
}

func TestCommas(t *testing.T) {
	assert.Equal(t, "0", commas(0))
	assert.Equal(t, "999", commas(999))
	assert.Equal(t, "1,000", commas(1000))
	assert.Equal(t, "1,234,567", commas(1234567))
	assert.Equal(t, "-12,345", commas(-12345))
}
