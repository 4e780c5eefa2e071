package main

import (
	"context"
	"os"

	"gni.dev/ndk/internal/locate"
	"gni.dev/ndk/ndk/internal/cli"
	"gni.dev/ndk/toolchain"
)

func main() {
	os.Exit(cli.Main(context.Background(), os.Args[1:], cli.Streams{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Env:    locate.OS(),
		Host:   toolchain.CurrentHost(),
	}))
}
