package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type envCmd struct {
	s    Streams
	args *Args
}

var _ = subcommands.Command(&envCmd{})

func (*envCmd) Name() string     { return "env" }
func (*envCmd) Synopsis() string { return "print the environment for a cgo build" }
func (*envCmd) Usage() string {
	return `Usage: env [flag]... <triple>

Prints the variables a cgo build for the target needs, one KEY=value per line.

`
}

func (c *envCmd) SetFlags(f *flag.FlagSet) {
	c.args = CreateArgs(f)
}

func (c *envCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.s.Stderr, "Please specify one target triple.\n\n"+c.Usage())
		return subcommands.ExitUsageError
	}
	tcs, err := c.args.toolchains(f.Args(), c.s.Env, c.s.Host)
	if err != nil {
		return fail(c.s, err)
	}
	tc := tcs[0]
	vars := []string{
		"CC=" + tc.CC(),
		"CXX=" + tc.CXX(),
		"CGO_ENABLED=1",
		"CGO_CFLAGS=--sysroot=" + tc.Sysroot(),
		"GOOS=android",
	}
	switch goarch := tc.GOARCH(); goarch {
	case "":
	case "arm":
		vars = append(vars, "GOARCH=arm", "GOARM=7")
	default:
		vars = append(vars, "GOARCH="+goarch)
	}
	for _, v := range vars {
		fmt.Fprintln(c.s.Stdout, v)
	}
	return subcommands.ExitSuccess
}
