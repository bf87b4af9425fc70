package tokenauth

import "html"

// ForHTML escapes a user supplied display string for embedding in HTML
// output. Records keep the raw value; only the rendered form is encoded.
func ForHTML(input string) string {
	return html.EscapeString(input)
}
