package xlsx

import (
	"fmt"
	"html"
	"strings"
)

// RenderHTML converts the IR into an HTML table. Filled rows keep their
// background colour so a classified sheet can be previewed in a browser.
func RenderHTML(s Sheet) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf(`<div class="sheet" data-name="%s">
`, html.EscapeString(s.Name)))
	builder.WriteString("<table class=\"table\">\n  <thead>\n    <tr>\n")
	for _, h := range s.Headers {
		builder.WriteString(fmt.Sprintf("      <th>%s</th>\n", html.EscapeString(h)))
	}
	builder.WriteString("    </tr>\n  </thead>\n  <tbody>\n")

	for _, row := range s.Rows {
		rowStyle := ""
		if row.Fill != "" {
			rowStyle = fmt.Sprintf(" style=\"background-color:#%s;\"", row.Fill)
		}
		builder.WriteString(fmt.Sprintf("    <tr data-row=\"%d\"%s>\n", row.Number, rowStyle))
		for _, v := range row.Values {
			escaped := html.EscapeString(v)
			// Excel stores explicit line breaks as \n; preserve them in HTML
			escaped = strings.ReplaceAll(escaped, "\n", "<br>")
			builder.WriteString(fmt.Sprintf("      <td>%s</td>\n", escaped))
		}
		builder.WriteString("    </tr>\n")
	}
	builder.WriteString("  </tbody>\n</table>\n</div>\n")
	return builder.String()
}
