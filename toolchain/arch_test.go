package toolchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var archTests = []struct {
	triple string
	api    int
	want   string
}{
	{"i686-linux-android", 21, "x86"},
	{"x86_64-linux-android", 21, "x86_64"},
	{"aarch64-linux-android", 21, "arm64"},
	{"arm-linux-androideabi", 21, "arm"},
	{"armv7-linux-androideabi", 21, "arm"},
	{"mips64el-linux-android", 21, "mips64el"},
	{"mips64-linux-android", 21, "mips64"},
	{"mips64-linux-android", 20, "mips"},
	// 32-bit fallback below the first LP64 API.
	{"x86_64-linux-android", 9, "x86"},
	{"aarch64-linux-android", 9, "arm"},
	// ARM sysroots exist for every API level.
	{"arm-linux-androideabi", 3, "arm"},
	{"aarch64-linux-android", 8, "arm"},
	{"riscv64-linux-android", 35, "riscv64"},
}

func TestPlatformArch(t *testing.T) {
	for _, test := range archTests {
		arch, err := PlatformArch(test.triple, test.api)
		if assert.NoError(t, err, "%s@%d", test.triple, test.api) {
			assert.Equal(t, test.want, arch, "%s@%d", test.triple, test.api)
		}
	}
}

func TestPlatformArchDeterministic(t *testing.T) {
	for _, test := range archTests {
		first, err1 := PlatformArch(test.triple, test.api)
		second, err2 := PlatformArch(test.triple, test.api)
		assert.Equal(t, first, second)
		assert.Equal(t, err1, err2)
	}
}

func TestPlatformArchUnsupportedLowAPI(t *testing.T) {
	for _, triple := range []string{"i686-linux-android", "x86_64-linux-android", "mips64-linux-android", "riscv64-linux-android"} {
		_, err := PlatformArch(triple, 8)
		require.Error(t, err, triple)
		assert.True(t, errors.Is(err, ErrUnsupported), triple)

		var te *Error
		require.True(t, errors.As(err, &te))
		assert.Equal(t, triple, te.Triple)
		assert.Equal(t, 8, te.API)
		assert.Equal(t, "target "+triple+" is not supported for API 8", err.Error())
	}
}

func TestPlatformArchLP64Boundary(t *testing.T) {
	boundary := map[string][2]string{
		"aarch64-linux-android": {"arm", "arm64"},
		"x86_64-linux-android":  {"x86", "x86_64"},
		"mips64-linux-android":  {"mips", "mips64"},
	}
	for triple, want := range boundary {
		for api := MinNonARMAPI; api < FirstLP64API; api++ {
			arch, err := PlatformArch(triple, api)
			require.NoError(t, err)
			assert.Equal(t, want[0], arch, "%s@%d", triple, api)
		}
		for api := FirstLP64API; api <= 35; api++ {
			arch, err := PlatformArch(triple, api)
			require.NoError(t, err)
			assert.Equal(t, want[1], arch, "%s@%d", triple, api)
		}
	}
}

func TestPlatformArchMalformed(t *testing.T) {
	tests := []struct {
		triple string
		api    int
	}{
		{"", 21},
		{"-linux-android", 21},
		{"aarch64-linux-android", 0},
		{"arm-linux-androideabi", -1},
	}
	for _, test := range tests {
		_, err := PlatformArch(test.triple, test.api)
		assert.True(t, errors.Is(err, ErrMalformed), "%q@%d", test.triple, test.api)
		assert.False(t, errors.Is(err, ErrUnsupported))
	}
}

func TestTripleForGOARCH(t *testing.T) {
	triple, ok := TripleForGOARCH("arm64")
	assert.True(t, ok)
	assert.Equal(t, "aarch64-linux-android", triple)

	triple, ok = TripleForGOARCH("arm")
	assert.True(t, ok)
	arch, err := PlatformArch(triple, 16)
	assert.NoError(t, err)
	assert.Equal(t, "arm", arch)

	_, ok = TripleForGOARCH("wasm")
	assert.False(t, ok)
}
