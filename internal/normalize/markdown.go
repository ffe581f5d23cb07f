package normalize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Known formatting quirks in source descriptions. This is a best-effort
// repair pass, not a markdown parser: the goal is "renders acceptably", not
// exact round-tripping.
var (
	// "**Header**text" / "**Header** :" -> bold header followed by a blank line
	boldHeaderGlue = regexp.MustCompile(`(?m)^(\*\*[^*\n]+\*\*):?[ \t]*\n?([^\s*])`)
	// list markers indented with tabs or 3+ spaces collapse to two spaces
	deepListIndent = regexp.MustCompile(`(?m)^(?:\t+| {3,})([-*+] )`)
	// runs of 3+ newlines collapse to a single blank line
	excessBlankLines = regexp.MustCompile(`\n{3,}`)
	// trailing whitespace at line ends
	trailingSpace = regexp.MustCompile(`(?m)[ \t]+$`)
)

// CleanMarkdown repairs source-specific markdown quirks: inconsistent
// bold-header spacing, over-indented nested lists and excess blank lines.
// HTML-shaped input is converted to plain markdown-ish text first.
func CleanMarkdown(text string) string {
	if text == "" {
		return ""
	}
	if looksLikeHTML(text) {
		text = htmlToText(text)
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = boldHeaderGlue.ReplaceAllString(text, "$1\n\n$2")
	text = deepListIndent.ReplaceAllString(text, "  $1")
	text = trailingSpace.ReplaceAllString(text, "")
	text = excessBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

var htmlTag = regexp.MustCompile(`<\s*(p|br|div|ul|ol|li|h[1-6]|strong|em|b|i|a)\b`)

func looksLikeHTML(text string) bool {
	return htmlTag.MatchString(text)
}

// htmlToText flattens HTML descriptions (some boards store rich text) into
// line-oriented text that the markdown cleanup can handle. On parse failure
// the input passes through untouched.
func htmlToText(in string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(in))
	if err != nil {
		return in
	}

	var b strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, sel *goquery.Selection) {
		txt := strings.Join(strings.Fields(sel.Text()), " ")
		if txt == "" {
			return
		}
		switch goquery.NodeName(sel) {
		case "li":
			b.WriteString("- " + txt + "\n")
		case "p":
			b.WriteString(txt + "\n\n")
		default:
			b.WriteString("**" + txt + "**\n\n")
		}
	})
	if b.Len() == 0 {
		// no block elements found; fall back to the bare text
		return strings.Join(strings.Fields(doc.Text()), " ")
	}
	return b.String()
}
