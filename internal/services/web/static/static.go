// Package static embeds the site stylesheet, scripts and icons.
package static

import "embed"

// ServiceWorker is the service worker file name. It is served from the site
// root so its scope covers every page.
const ServiceWorker = "sw.js"

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js *.svg *.png
var FS embed.FS
