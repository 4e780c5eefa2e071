// Package schema embeds the JSON schema for ndk.yaml.
package schema

import _ "embed"

//go:embed ndk.schema.json
var NDK []byte
