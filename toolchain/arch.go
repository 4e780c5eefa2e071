package toolchain

import "strings"

const (
	// FirstLP64API is the first API level with 64-bit sysroots.
	FirstLP64API = 21
	// MinNonARMAPI is the first API level with non-ARM sysroots.
	MinNonARMAPI = 9
)

type platform struct {
	abi    string
	goarch string
}

var platforms = map[string]platform{
	"arm":    {"armeabi-v7a", "arm"},
	"arm64":  {"arm64-v8a", "arm64"},
	"x86":    {"x86", "386"},
	"x86_64": {"x86_64", "amd64"},
	"mips":   {"mips", "mipsle"},
	"mips64": {"mips64", "mips64le"},
}

var goarchTriples = map[string]string{
	"386":   "i686-linux-android",
	"amd64": "x86_64-linux-android",
	"arm":   "armv7-linux-androideabi",
	"arm64": "aarch64-linux-android",
}

// PlatformArch returns the name of the NDK arch-* directory holding the
// sysroot for triple at the given API level. 64-bit targets fall back to
// their 32-bit sysroot below FirstLP64API. Arch tokens without a rule are
// returned unchanged.
func PlatformArch(triple string, api int) (string, error) {
	token, _, _ := strings.Cut(triple, "-")
	if token == "" || api < 1 {
		return "", malformed(triple, api)
	}
	lp64 := api >= FirstLP64API
	var arch string
	switch token {
	case "arm", "armv7":
		arch = "arm"
	case "aarch64":
		arch = pick(lp64, "arm64", "arm")
	case "i686":
		arch = "x86"
	case "x86_64":
		arch = pick(lp64, "x86_64", "x86")
	case "mips64":
		arch = pick(lp64, "mips64", "mips")
	default:
		arch = token
	}
	if api < MinNonARMAPI && arch != "arm" {
		return "", unsupported(triple, api)
	}
	return arch, nil
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}

// TripleForGOARCH returns the NDK target triple for a Go architecture.
func TripleForGOARCH(goarch string) (string, bool) {
	t, ok := goarchTriples[goarch]
	return t, ok
}
