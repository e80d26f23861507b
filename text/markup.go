package text

import (
	"strings"

	"golang.org/x/net/html"
)

// elements whose content is never prose
var nonProseElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// ExtractText returns the visible text of an HTML fragment with entities decoded
func ExtractText(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	var sb strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed tail, either way we are done
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			if nonProseElements[string(name)] {
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if nonProseElements[string(name)] && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
				sb.WriteByte(' ')
			}
		}
	}
}
