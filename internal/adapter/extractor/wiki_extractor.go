package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	// FallbackTitle is substituted when no article heading is present.
	FallbackTitle = "Unknown Title"

	// MaxBodyRunes bounds the extracted body so the downstream prompt stays
	// within the model's practical input limit.
	MaxBodyRunes = 15000

	headingSelector = "h1#firstHeading"
	contentSelector = "div#mw-content-text"
)

var (
	scriptRe     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleRe      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)

	// The fixed entity set decoded by the cleanup pipeline. &amp; goes last
	// so it cannot manufacture new entity sequences mid-pass.
	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&amp;", "&",
	)
)

// WikiExtractor locates the article heading and content region of an
// encyclopedia page and reduces the content region to bounded plain text.
// Both capabilities degrade instead of failing: missing heading yields
// FallbackTitle, missing content region yields the whole document.
type WikiExtractor struct{}

func NewWikiExtractor() *WikiExtractor {
	return &WikiExtractor{}
}

// ExtractTitle returns the text of the first article heading, or
// FallbackTitle when the document carries none.
func (e *WikiExtractor) ExtractTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return FallbackTitle
	}
	if title := strings.TrimSpace(doc.Find(headingSelector).First().Text()); title != "" {
		return title
	}
	return FallbackTitle
}

// ExtractBody locates the primary content region and runs the cleanup
// pipeline over it. When the region marker is absent the whole document is
// treated as body text. This method never fails; worst case it returns a
// short or empty string.
func (e *WikiExtractor) ExtractBody(html string) string {
	region := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		if sel := doc.Find(contentSelector).First(); sel.Length() > 0 {
			if inner, err := sel.Html(); err == nil {
				region = inner
			}
		}
	}
	return cleanText(region)
}

// cleanText strips script/style blocks with their contents, reduces the
// remaining markup to whitespace, decodes the fixed entity set, collapses
// whitespace runs, trims, and truncates to MaxBodyRunes. Truncation is a
// pure suffix drop, so re-cleaning already-clean text is a no-op.
func cleanText(raw string) string {
	text := scriptRe.ReplaceAllString(raw, "")
	text = styleRe.ReplaceAllString(text, "")
	text = tagRe.ReplaceAllString(text, " ")
	text = entityReplacer.Replace(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	return truncateRunes(text, MaxBodyRunes)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
