package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"gni.dev/ndk/toolchain"
)

type archCmd struct {
	s   Streams
	api int
}

var _ = subcommands.Command(&archCmd{})

func (*archCmd) Name() string     { return "arch" }
func (*archCmd) Synopsis() string { return "print the NDK platform arch of targets" }
func (*archCmd) Usage() string {
	return `Usage: arch [-api N] <triple>...

Prints the platform arch directory and ABI of each target. No NDK is needed.

`
}

func (c *archCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.api, "api", toolchain.FirstLP64API, "minimum Android API level")
}

func (c *archCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(c.s.Stderr, "Please specify a target triple.\n\n"+c.Usage())
		return subcommands.ExitUsageError
	}
	for _, triple := range f.Args() {
		// The NDK root does not affect the arch.
		tc, err := toolchain.Resolve(toolchain.Options{API: c.api, Triple: triple, Host: c.s.Host})
		if err != nil {
			return fail(c.s, err)
		}
		fmt.Fprintf(c.s.Stdout, "%s\tarch-%s\t%s\n", triple, tc.PlatformArch(), tc.ABI())
	}
	return subcommands.ExitSuccess
}
