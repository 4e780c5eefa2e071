package toolchain

import "runtime"

// Host identifies the machine running the compiler.
type Host struct {
	OS   string
	Arch string
}

// CurrentHost returns the running host in Go's naming.
func CurrentHost() Host {
	return Host{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// Tag returns the name of the NDK prebuilt directory for h, such as
// "linux-x86_64" or "darwin-x86_64".
func (h Host) Tag() string {
	return NormalizeOS(h.OS) + "-" + NormalizeArch(h.Arch)
}

// NormalizeOS maps an OS name to the NDK's naming.
func NormalizeOS(os string) string {
	if os == "macos" {
		return "darwin"
	}
	return os
}

// NormalizeArch maps a Go architecture to the NDK's naming.
func NormalizeArch(arch string) string {
	switch arch {
	case "amd64":
		return "x86_64"
	case "386":
		return "x86"
	case "arm64":
		return "aarch64"
	}
	return arch
}
