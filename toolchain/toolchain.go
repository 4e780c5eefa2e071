// Package toolchain resolves the Android NDK compilers and sysroot for a
// target triple and minimum API level.
//
// Resolution only formats strings. Nothing checks that the paths exist.
package toolchain

import (
	"fmt"
	"os"
	"strings"
)

// Name is the compiler toolchain family under $NDK/toolchains.
const Name = "llvm"

// Toolchain holds the resolved NDK layout for one target. It is immutable and
// may be shared between goroutines.
type Toolchain struct {
	ndk          string
	name         string
	api          int
	host         string
	platformArch string
	triple       string
}

// Options configures Resolve.
type Options struct {
	NDK    string
	API    int
	Triple string
	// Host defaults to CurrentHost.
	Host Host
}

// Paths are the outputs handed to a build.
type Paths struct {
	CC      string `yaml:"cc" json:"cc"`
	CXX     string `yaml:"cxx" json:"cxx"`
	Sysroot string `yaml:"sysroot" json:"sysroot"`
}

// New resolves a toolchain in the NDK named by $ANDROID_NDK.
func New(api int, triple string) (*Toolchain, error) {
	ndk := os.Getenv("ANDROID_NDK")
	if ndk == "" {
		return nil, NoNDK("ANDROID_NDK is not set")
	}
	return WithNDK(ndk, api, triple)
}

// WithNDK resolves a toolchain in the given NDK for the running host.
func WithNDK(ndk string, api int, triple string) (*Toolchain, error) {
	return Resolve(Options{NDK: ndk, API: api, Triple: triple})
}

func Resolve(opts Options) (*Toolchain, error) {
	host := opts.Host
	if host == (Host{}) {
		host = CurrentHost()
	}
	arch, err := PlatformArch(opts.Triple, opts.API)
	if err != nil {
		return nil, err
	}
	return &Toolchain{
		ndk:          trimSlash(opts.NDK),
		name:         Name,
		api:          opts.API,
		host:         host.Tag(),
		platformArch: arch,
		triple:       opts.Triple,
	}, nil
}

func trimSlash(p string) string {
	if strings.Trim(p, "/") == "" {
		// "/" stays the filesystem root once joined with "/toolchains".
		return ""
	}
	return strings.TrimRight(p, "/")
}

func (t *Toolchain) NDK() string          { return t.ndk }
func (t *Toolchain) Name() string         { return t.name }
func (t *Toolchain) API() int             { return t.api }
func (t *Toolchain) HostTag() string      { return t.host }
func (t *Toolchain) PlatformArch() string { return t.platformArch }
func (t *Toolchain) Triple() string       { return t.triple }

func (t *Toolchain) bin(tool string) string {
	return fmt.Sprintf("%s/toolchains/%s/prebuilt/%s/bin/%s", t.ndk, t.name, t.host, tool)
}

// CC returns the path of the C compiler.
func (t *Toolchain) CC() string {
	return t.bin("clang")
}

// CXX returns the path of the C++ compiler.
func (t *Toolchain) CXX() string {
	return t.bin("clang++")
}

// Sysroot returns the platform directory with the target's headers and
// libraries.
func (t *Toolchain) Sysroot() string {
	return fmt.Sprintf("%s/platforms/android-%d/arch-%s", t.ndk, t.api, t.platformArch)
}

func (t *Toolchain) Paths() Paths {
	return Paths{CC: t.CC(), CXX: t.CXX(), Sysroot: t.Sysroot()}
}

// ABI returns the Android ABI name used for lib/<abi> directories.
func (t *Toolchain) ABI() string {
	if p, ok := platforms[t.platformArch]; ok {
		return p.abi
	}
	return t.platformArch
}

// GOARCH returns the Go architecture targeting the platform arch, or "" if
// Go has no Android port for it.
func (t *Toolchain) GOARCH() string {
	return platforms[t.platformArch].goarch
}
