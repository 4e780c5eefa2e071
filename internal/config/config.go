// Package config loads ndk.yaml, the list of targets a project builds for.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"gni.dev/ndk/internal/config/schema"
	"gni.dev/ndk/toolchain"
)

// FileName is the config file looked up in the working directory.
const FileName = "ndk.yaml"

const defaultAPI = toolchain.FirstLP64API

type Config struct {
	NDK     string   `yaml:"ndk,omitempty"`
	API     int      `yaml:"api,omitempty"`
	Targets []Target `yaml:"targets,omitempty"`
}

type Target struct {
	Triple string `yaml:"triple"`
	API    int    `yaml:"api,omitempty"`
}

var (
	compiled   *jsonschema.Schema
	compileOne sync.Once
	compileErr error
)

func compileSchema() (*jsonschema.Schema, error) {
	compileOne.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema.NDK))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("ndk.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile("ndk.schema.json")
	})
	return compiled, compileErr
}

// Load reads and validates the config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML config data and fills in defaults.
func Parse(data []byte) (*Config, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.API == 0 {
		c.API = defaultAPI
	}
	for i := range c.Targets {
		if c.Targets[i].API == 0 {
			c.Targets[i].API = c.API
		}
	}
	return &c, nil
}

// validate checks the document against the embedded schema. The YAML is
// re-encoded as JSON first since the schema validator only reads JSON values.
func validate(data []byte) error {
	sch, err := compileSchema()
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config must be a mapping with string keys: %w", err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(js))
	if err != nil {
		return err
	}
	if err := sch.Validate(v); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Toolchains resolves every target against ndk. Targets that fail are
// reported together.
func (c *Config) Toolchains(ndk string, host toolchain.Host) ([]*toolchain.Toolchain, error) {
	var (
		tcs  []*toolchain.Toolchain
		errs []error
	)
	for _, t := range c.Targets {
		tc, err := toolchain.Resolve(toolchain.Options{NDK: ndk, API: t.API, Triple: t.Triple, Host: host})
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tcs = append(tcs, tc)
	}
	return tcs, errors.Join(errs...)
}
