// Package docs embeds the API reference served under /docs.
package docs

import _ "embed"

//go:embed scalar.html
var ScalarHTML []byte

//go:embed openapi.json
var OpenAPI []byte
