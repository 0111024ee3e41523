package linkedin

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	profilePathRe = regexp.MustCompile(`/in/([^/?#]+)`)
	companyURLRe  = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/company/[^/?#]+`)
)

// ProfileID returns the /in/ path segment of a profile URL, or "" when the
// URL does not reference a profile. Tracking query parameters and trailing
// path segments are ignored.
func ProfileID(rawURL string) string {
	m := profilePathRe.FindStringSubmatch(rawURL)
	if m == nil {
		return ""
	}
	return m[1]
}

// CanonicalProfileURL builds the canonical profile URL for an /in/ segment.
func CanonicalProfileURL(id string) string {
	return "https://www.linkedin.com/in/" + id
}

// ValidateCompanyURL rejects anything that is not a LinkedIn company page.
func ValidateCompanyURL(rawURL string) error {
	if !companyURLRe.MatchString(rawURL) {
		return fmt.Errorf("invalid LinkedIn company URL %q: expected format https://www.linkedin.com/company/slug", rawURL)
	}
	return nil
}

// PeopleTabURL derives the /people/ tab URL of a company page.
func PeopleTabURL(companyURL string) string {
	return strings.TrimRight(companyURL, "/") + "/people/"
}
