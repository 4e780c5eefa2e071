// Package locate finds the Android NDK installed on the build host.
package locate

import (
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"

	"gni.dev/ndk/toolchain"
)

// Env looks up the variables and directories the search reads.
type Env struct {
	Getenv  func(string) string
	ReadDir func(string) ([]fs.DirEntry, error)
}

// OS returns an Env backed by the process environment and filesystem.
func OS() Env {
	return Env{Getenv: os.Getenv, ReadDir: os.ReadDir}
}

var ndkVars = []string{"ANDROID_NDK", "ANDROID_NDK_ROOT", "ANDROID_NDK_HOME"}

// NDK returns the NDK root. Explicit NDK variables win over the newest
// side-by-side install under $ANDROID_HOME/ndk.
func NDK(e Env) (string, error) {
	for _, v := range ndkVars {
		if root := e.Getenv(v); root != "" {
			return root, nil
		}
	}
	androidHome, err := AndroidHome(e)
	if err != nil {
		return "", err
	}
	return newest(e, filepath.Join(androidHome, "ndk"))
}

func AndroidHome(e Env) (string, error) {
	androidHome := e.Getenv("ANDROID_HOME")
	if androidHome == "" {
		androidHome = e.Getenv("ANDROID_SDK_ROOT")
		if androidHome == "" {
			return "", toolchain.NoNDK("no NDK found. Please set ANDROID_NDK or ANDROID_HOME")
		}
	}
	return androidHome, nil
}

func newest(e Env, dir string) (string, error) {
	children, err := e.ReadDir(dir)
	if err != nil {
		return "", toolchain.NoNDK("no NDK found in " + dir + ": " + err.Error())
	}
	var best string
	for _, c := range children {
		if !c.IsDir() {
			continue
		}
		if best == "" || semver.Compare("v"+c.Name(), "v"+best) > 0 {
			best = c.Name()
		}
	}
	if best == "" {
		return "", toolchain.NoNDK("no NDK found in " + dir)
	}
	return filepath.Join(dir, best), nil
}
