// Package docs carries the OpenAPI document served under /swagger.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
