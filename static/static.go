// Package static embeds the API docs assets served under /docs and /static.
package static

import "embed"

//go:embed openapi.html openapi.json
var FS embed.FS
