package fetchcli

import (
	"flag"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phagetools/internal/prodigal"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func hostSystem() string {
	if runtime.GOOS == "darwin" {
		return prodigal.SystemOSX
	}
	return runtime.GOOS
}

func TestDefaults(t *testing.T) {
	if _, err := prodigal.NormalizeSystem("host"); err != nil {
		t.Skip("host OS has no prodigal release")
	}
	o, err := ParseArgs(newFS(), []string{"--dir", "bin"})
	require.NoError(t, err)
	assert.Equal(t, "bin", o.Dir)
	assert.Equal(t, []string{hostSystem()}, o.Systems)
	assert.Equal(t, "text", o.Output)
	assert.Zero(t, o.Timeout)
}

func TestPositionalDir(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--os", "linux", "bin"})
	require.NoError(t, err)
	assert.Equal(t, "bin", o.Dir)
}

func TestFlagsAfterPositionalDir(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"bin", "--os", "linux", "-o", "json"})
	require.NoError(t, err)
	assert.Equal(t, "bin", o.Dir)
	assert.Equal(t, []string{"linux"}, o.Systems)
	assert.Equal(t, "json", o.Output)
}

func TestOverrides(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{
		"-d", "bin", "--os", "Darwin,windows", "--release", "v2.6.2",
		"--base-url", "http://localhost/dl", "--timeout", "30s", "-o", "json",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"osx", "windows"}, o.Systems)
	assert.Equal(t, "v2.6.2", o.Release)
	assert.Equal(t, "http://localhost/dl", o.BaseURL)
	assert.Equal(t, 30*time.Second, o.Timeout)
	assert.Equal(t, "json", o.Output)
}

func TestParseSystems(t *testing.T) {
	got, err := ParseSystems("all")
	require.NoError(t, err)
	assert.Equal(t, prodigal.SupportedSystems, got)

	got, err = ParseSystems("linux, LINUX,osx,")
	require.NoError(t, err)
	assert.Equal(t, []string{"linux", "osx"}, got)

	_, err = ParseSystems("beos")
	require.ErrorIs(t, err, prodigal.ErrUnsupportedSystem)
	assert.Contains(t, err.Error(), "beos")

	_, err = ParseSystems(" , ")
	assert.Error(t, err)
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"no dir":        {"--os", "linux"},
		"dir twice":     {"--dir", "a", "--os", "linux", "b"},
		"two dirs":      {"--os", "linux", "a", "b"},
		"bad os":        {"--dir", "a", "--os", "plan9"},
		"bad output":    {"--dir", "a", "--os", "linux", "-o", "gff3"},
		"bad timeout":   {"--dir", "a", "--os", "linux", "--timeout", "-1s"},
		"bad log level": {"--dir", "a", "--os", "linux", "--log-level", "loud"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), args)
			assert.Error(t, err)
		})
	}
}
