// Package templates holds the embedded HTML of the inquiry screen and its themes.
package templates

import (
	"embed"
	"html/template"
	"strings"

	"github.com/cloud-inquiry-balance-web/internal/presentation"
)

// InquiryPage is the name of the single screen template
const InquiryPage = "inquiry.html"

// Themes lists the visual themes; the first one is the fallback
var Themes = []string{"cards", "cyberpunk", "soft"}

//go:embed *.html
var files embed.FS

// Parse parses every embedded template with the helper functions the pages use
func Parse() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(files, "*.html")
}

// Funcs returns the template helpers
func Funcs() template.FuncMap {
	return template.FuncMap{
		"badgeClass": func(c presentation.Category) string {
			return "badge badge-" + string(c)
		},
	}
}

// ResolveTheme returns requested when it names a known theme, else fallback,
// else the first theme.
func ResolveTheme(requested, fallback string) string {
	for _, candidate := range []string{requested, fallback} {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		for _, theme := range Themes {
			if candidate == theme {
				return theme
			}
		}
	}
	return Themes[0]
}
