// Package surface provides paint.Surface implementations for the hosts the
// paint widget runs in: a gg software raster for the desktop and the page
// canvas for the browser build.
package surface
