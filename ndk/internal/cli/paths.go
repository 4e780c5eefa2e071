package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"gni.dev/ndk/toolchain"
)

type pathsCmd struct {
	s      Streams
	args   *Args
	format string
}

var _ = subcommands.Command(&pathsCmd{})

func (*pathsCmd) Name() string     { return "paths" }
func (*pathsCmd) Synopsis() string { return "print the compilers and sysroot for targets" }
func (*pathsCmd) Usage() string {
	return `Usage: paths [flag]... [triple]...

Prints the C compiler, C++ compiler and sysroot for each target triple.
Without triples, the targets listed in ndk.yaml are used.

`
}

func (c *pathsCmd) SetFlags(f *flag.FlagSet) {
	c.args = CreateArgs(f)
	f.StringVar(&c.format, "format", "text", "output format: text, yaml or json")
}

func (c *pathsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	write, ok := formats[c.format]
	if !ok {
		fmt.Fprintf(c.s.Stderr, "Unknown format: %s\n", c.format)
		return subcommands.ExitUsageError
	}
	tcs, err := c.args.toolchains(f.Args(), c.s.Env, c.s.Host)
	if err != nil {
		return fail(c.s, err)
	}
	entries := make([]entry, 0, len(tcs))
	for _, tc := range tcs {
		entries = append(entries, entry{
			Triple: tc.Triple(),
			API:    tc.API(),
			Arch:   tc.PlatformArch(),
			ABI:    tc.ABI(),
			Paths:  tc.Paths(),
		})
	}
	if err := write(c.s.Stdout, entries); err != nil {
		return fail(c.s, err)
	}
	return subcommands.ExitSuccess
}

type entry struct {
	Triple          string `yaml:"triple" json:"triple"`
	API             int    `yaml:"api" json:"api"`
	Arch            string `yaml:"arch" json:"arch"`
	ABI             string `yaml:"abi" json:"abi"`
	toolchain.Paths `yaml:",inline"`
}

var formats = map[string]func(io.Writer, []entry) error{
	"text": writeText,
	"yaml": writeYAML,
	"json": writeJSON,
}

func writeText(w io.Writer, entries []entry) error {
	title := cases.Title(language.English)
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (API %d, arch-%s)\n", e.Triple, e.API, e.Arch)
		for _, l := range []struct{ label, path string }{
			{"c compiler", e.CC},
			{"c++ compiler", e.CXX},
			{"sysroot", e.Sysroot},
		} {
			if _, err := fmt.Fprintf(w, "  %-13s %s\n", title.String(l.label)+":", l.path); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeYAML(w io.Writer, entries []entry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, entries []entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
