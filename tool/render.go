package tool

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Peaceout21/linkedin-mutual-connections/linkedin"
)

const (
	defaultMaxChars = 12000
	maxWait         = 10 * time.Second
)

// RenderPage reduces a serialized document to what the model needs: the
// readable body text with whitespace collapsed, then the deduplicated list
// of profile links with their anchor text. maxChars caps the text section
// only; the link list is always kept whole, since the profile URLs are the
// one thing the extraction tasks cannot do without.
func RenderPage(html string, maxChars int) (string, error) {
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing page HTML: %w", err)
	}
	doc.Find("script, style, noscript, svg").Remove()

	text := strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	if len(text) > maxChars {
		text = text[:maxChars] + " [...truncated]"
	}

	var b strings.Builder
	b.WriteString(text)

	links := profileLinks(doc)
	if len(links) > 0 {
		b.WriteString("\n\nProfile links on page:\n")
		for _, l := range links {
			b.WriteString(l)
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

// profileLinks collects every /in/ anchor, canonicalized and deduplicated by
// profile id, keeping document order.
func profileLinks(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var links []string
	doc.Find(`a[href*="/in/"]`).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		id := linkedin.ProfileID(href)
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}

		label := strings.Join(strings.Fields(s.Text()), " ")
		if len(label) > 80 {
			label = label[:80]
		}
		if label == "" {
			label = id
		}
		links = append(links, fmt.Sprintf("- %s: %s", label, linkedin.CanonicalProfileURL(id)))
	})
	return links
}

func parseWait(input string) time.Duration {
	secs, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || secs <= 0 {
		return time.Second
	}
	d := time.Duration(secs * float64(time.Second))
	if d > maxWait {
		return maxWait
	}
	return d
}

func waitTimer(d time.Duration) <-chan time.Time {
	return time.After(d)
}
