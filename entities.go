package mustache

import "golang.org/x/net/html"

// escapeHTML and unescapeHTML are the HTML/entity encoder the core
// delegates to rather than defining its own rules for. Both
// forward-encoded Value rendering and its inverse need a concrete
// encoder to be runnable; golang.org/x/net/html supplies both
// directions.
func escapeHTML(s string) string {
	return html.EscapeString(s)
}

func unescapeHTML(s string) string {
	return html.UnescapeString(s)
}
