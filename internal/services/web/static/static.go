package static

import "embed"

// FS exposes web static assets for HTTP serving.
//
//go:embed index.html *.css *.js
var FS embed.FS
