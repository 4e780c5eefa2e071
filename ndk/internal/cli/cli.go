// Package cli implements the ndk subcommands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"gni.dev/ndk/internal/locate"
	"gni.dev/ndk/toolchain"
)

// Streams is the environment a command runs in.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
	Env    locate.Env
	Host   toolchain.Host
}

// Main runs the command line args and returns the exit code.
func Main(ctx context.Context, args []string, s Streams) int {
	top := flag.NewFlagSet("ndk", flag.ContinueOnError)
	top.SetOutput(s.Stderr)
	cdr := subcommands.NewCommander(top, "ndk")
	cdr.Output = s.Stdout
	cdr.Error = s.Stderr

	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")
	cdr.Register(&pathsCmd{s: s}, "")
	cdr.Register(&envCmd{s: s}, "")
	cdr.Register(&archCmd{s: s}, "")

	if err := top.Parse(args); err != nil {
		return int(subcommands.ExitUsageError)
	}
	return int(cdr.Execute(ctx))
}

func fail(s Streams, err error) subcommands.ExitStatus {
	fmt.Fprintln(s.Stderr, err)
	return subcommands.ExitStatus(toolchain.ExitCode(err))
}
