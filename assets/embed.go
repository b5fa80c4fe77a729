// Package assets embeds static files shipped with the binaries.
package assets

import "embed"

// FS holds the email templates under templates/email.
//
//go:embed all:templates
var FS embed.FS
