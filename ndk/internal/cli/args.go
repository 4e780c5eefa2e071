package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gni.dev/ndk/internal/config"
	"gni.dev/ndk/internal/locate"
	"gni.dev/ndk/toolchain"
)

type Args struct {
	NDK    string
	API    int
	Config string
}

func CreateArgs(f *flag.FlagSet) *Args {
	var args Args
	f.StringVar(&args.NDK, "ndk", "", "NDK root (default: $ANDROID_NDK, then the newest $ANDROID_HOME/ndk/*)")
	f.IntVar(&args.API, "api", 0, "minimum Android API level (default: from "+config.FileName+", else 21)")
	f.StringVar(&args.Config, "config", "", "config file (default: ./"+config.FileName+" if present)")
	return &args
}

// loadConfig returns the project config, or an empty one when no config
// was asked for and none exists.
func (a *Args) loadConfig() (*config.Config, error) {
	path := a.Config
	if path == "" {
		path = config.FileName
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return config.Parse(nil)
		}
	}
	return config.Load(path)
}

// targets lists the triples to resolve: the command line ones, or the
// config's targets when none are given. -api overrides every API level.
func (a *Args) targets(c *config.Config, triples []string) ([]config.Target, error) {
	api := c.API
	if a.API != 0 {
		api = a.API
	}
	var ts []config.Target
	for _, t := range triples {
		ts = append(ts, config.Target{Triple: t, API: api})
	}
	if len(ts) == 0 {
		for _, t := range c.Targets {
			if a.API != 0 {
				t.API = a.API
			}
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		return nil, &toolchain.Error{Kind: toolchain.KindMalformed, Msg: fmt.Sprintf("no targets given and none listed in %s", config.FileName)}
	}
	return ts, nil
}

func (a *Args) ndkRoot(c *config.Config, env locate.Env) (string, error) {
	if a.NDK != "" {
		return a.NDK, nil
	}
	if c.NDK != "" {
		return c.NDK, nil
	}
	return locate.NDK(env)
}

// toolchains resolves all targets. Config errors exit with the config code.
func (a *Args) toolchains(triples []string, env locate.Env, host toolchain.Host) ([]*toolchain.Toolchain, error) {
	c, err := a.loadConfig()
	if err != nil {
		return nil, &toolchain.Error{Kind: toolchain.KindMalformed, Msg: err.Error()}
	}
	ts, err := a.targets(c, triples)
	if err != nil {
		return nil, err
	}
	ndk, err := a.ndkRoot(c, env)
	if err != nil {
		return nil, err
	}
	return (&config.Config{Targets: ts}).Toolchains(ndk, host)
}
