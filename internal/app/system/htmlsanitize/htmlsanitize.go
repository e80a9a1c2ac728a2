// Package htmlsanitize strips unsafe HTML from user-authored content
// before it is stored. Announcements and feedback comments pass through
// here so stored content is always safe to render.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}()

// Sanitize returns content with scripts, event handlers, and other unsafe
// markup removed. Safe formatting (paragraphs, emphasis, links, tables) is
// preserved.
func Sanitize(content string) string {
	return policy.Sanitize(content)
}
