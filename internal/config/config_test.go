package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gni.dev/ndk/toolchain"
)

const sample = `
ndk: /opt/android-ndk
api: 24
targets:
  - triple: aarch64-linux-android
  - triple: armv7-linux-androideabi
    api: 16
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	want := &Config{
		NDK: "/opt/android-ndk",
		API: 24,
		Targets: []Target{
			{Triple: "aarch64-linux-android", API: 24},
			{Triple: "armv7-linux-androideabi", API: 16},
		},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse([]byte("targets:\n  - triple: x86_64-linux-android\n"))
	require.NoError(t, err)
	assert.Equal(t, "", c.NDK)
	assert.Equal(t, 21, c.API)
	assert.Equal(t, 21, c.Targets[0].API)

	c, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, 21, c.API)
	assert.Empty(t, c.Targets)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		"unknown key":    "ndk: /x\nabi: 21\n",
		"zero api":       "api: 0\n",
		"string api":     "api: latest\n",
		"missing triple": "targets:\n  - api: 21\n",
		"empty field":    "targets:\n  - triple: -linux-android\n",
		"not a mapping":  "- aarch64-linux-android\n",
		"bad yaml":       "targets: [\n",
	}
	for name, data := range tests {
		_, err := Parse([]byte(data))
		assert.Error(t, err, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Targets, 2)

	_, err = Load(filepath.Join(t.TempDir(), FileName))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	require.NoError(t, os.WriteFile(path, []byte("api: -3\n"), 0644))
	_, err = Load(path)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), path)
	}
}

func TestToolchains(t *testing.T) {
	c, err := Parse([]byte(sample))
	require.NoError(t, err)

	tcs, err := c.Toolchains(c.NDK, toolchain.Host{OS: "linux", Arch: "amd64"})
	require.NoError(t, err)
	require.Len(t, tcs, 2)
	assert.Equal(t, "/opt/android-ndk/platforms/android-24/arch-arm64", tcs[0].Sysroot())
	assert.Equal(t, "/opt/android-ndk/platforms/android-16/arch-arm", tcs[1].Sysroot())
}

func TestToolchainsJoinsErrors(t *testing.T) {
	c := &Config{Targets: []Target{
		{Triple: "i686-linux-android", API: 8},
		{Triple: "arm-linux-androideabi", API: 8},
		{Triple: "x86_64-linux-android", API: 5},
	}}
	tcs, err := c.Toolchains("/ndk", toolchain.Host{OS: "linux", Arch: "amd64"})
	assert.Len(t, tcs, 1)
	assert.True(t, errors.Is(err, toolchain.ErrUnsupported))
	assert.Contains(t, err.Error(), "target i686-linux-android is not supported for API 8")
	assert.Contains(t, err.Error(), "target x86_64-linux-android is not supported for API 5")
	assert.Equal(t, toolchain.ExitConfigError, toolchain.ExitCode(err))
}
