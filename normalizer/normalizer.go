package normalizer

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Peaceout21/linkedin-mutual-connections/linkedin"
	"github.com/Peaceout21/linkedin-mutual-connections/log"
)

const timeLayout = "2006-01-02T15:04:05Z"

// Normalizer cleans raw agent output into result documents. It holds no
// state beyond the clock and the logger; calls are independent.
type Normalizer struct {
	now    func() time.Time
	logger log.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the clock used for the extracted_at stamp.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// WithLogger sets the logger used for dropped-entry reporting.
func WithLogger(logger log.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New creates a Normalizer with the real clock and the default logger.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		now:    time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ErrorDoc is the document persisted when normalization fails: the error
// message plus the agent's raw output, kept verbatim so a failed scrape is
// still inspectable.
type ErrorDoc struct {
	Error string `json:"error"`
	Raw   string `json:"raw"`
}

// ErrorDocument wraps a terminal extraction failure and the raw agent text.
func ErrorDocument(err error, raw string) *ErrorDoc {
	return &ErrorDoc{Error: err.Error(), Raw: raw}
}

// CanonicalizePerson repairs the profile URL in place. When the URL carries
// an /in/ segment, the id is rewritten from the segment and the URL is
// replaced with its canonical form, shedding tracking parameters and
// relative prefixes. URLs without an /in/ segment are left untouched.
// Idempotent: canonical records pass through unchanged.
func CanonicalizePerson(p *linkedin.Person) {
	if id := linkedin.ProfileID(p.LinkedInURL); id != "" {
		p.LinkedInID = id
		p.LinkedInURL = linkedin.CanonicalProfileURL(id)
	}
}

// personKey is the identity key used for deduplication: the linkedin_id when
// present, else the name. Empty means the entry has no usable identity.
func personKey(p linkedin.Person) string {
	if p.LinkedInID != "" {
		return p.LinkedInID
	}
	return p.Name
}

// DedupePeople keeps the first occurrence of each identity key, preserving
// input order. Entries with no identity key at all are dropped. The dropped
// count covers both duplicates and keyless entries.
func DedupePeople(people []linkedin.Person) (clean []linkedin.Person, dropped int) {
	seen := make(map[string]struct{}, len(people))
	clean = make([]linkedin.Person, 0, len(people))
	for _, p := range people {
		key := personKey(p)
		if key == "" {
			dropped++
			continue
		}
		if _, ok := seen[key]; ok {
			dropped++
			continue
		}
		seen[key] = struct{}{}
		clean = append(clean, p)
	}
	return clean, dropped
}

type mutualPayload struct {
	TargetProfile     string            `json:"target_profile"`
	MutualCount       json.RawMessage   `json:"mutual_count"`
	MutualConnections []linkedin.Person `json:"mutual_connections"`
}

// MutualConnections normalizes the raw agent output of a mutual-connections
// run. On failure the returned error is either ErrNoJSON or the JSON parse
// error; the caller turns it into an ErrorDoc.
func (n *Normalizer) MutualConnections(raw, profileURL string) (*linkedin.MutualConnectionsDoc, error) {
	span, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var payload mutualPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, err
	}

	people := payload.MutualConnections
	for i := range people {
		CanonicalizePerson(&people[i])
	}
	clean, dropped := DedupePeople(people)
	if dropped > 0 {
		n.logger.Debug("dropped %d duplicate or keyless entries", dropped)
	}

	target := payload.TargetProfile
	if target == "" {
		target = profileURL
	}

	return &linkedin.MutualConnectionsDoc{
		TargetProfile:     target,
		MutualCount:       payload.MutualCount,
		ExtractedAt:       n.now().UTC().Format(timeLayout),
		ActualExtracted:   len(clean),
		MutualConnections: clean,
	}, nil
}

type companyPayload struct {
	CompanyURL            string                   `json:"company_url"`
	CompanyName           string                   `json:"company_name"`
	PeopleTabURL          string                   `json:"people_tab_url"`
	TotalEmployeesVisible int                      `json:"total_employees_visible"`
	People                []linkedin.CompanyPerson `json:"people"`
}

// CompanyPeople normalizes the raw agent output of a company-people run.
// Beyond the shared canonicalize/dedupe pass it keeps only 2nd-degree
// entries (the agent is instructed to skip the rest, but its degree reads
// are not trusted) and fills the CRM defaults on every kept record.
func (n *Normalizer) CompanyPeople(raw, companyURL string) (*linkedin.CompanyPeopleDoc, error) {
	span, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var payload companyPayload
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(payload.People))
	clean := make([]linkedin.CompanyPerson, 0, len(payload.People))
	dropped := 0
	for _, p := range payload.People {
		// An absent degree is treated as 2nd; anything else non-2nd is the
		// agent ignoring its instructions.
		if p.ConnectionDegree != "" && !strings.Contains(p.ConnectionDegree, "2nd") {
			dropped++
			continue
		}

		CanonicalizePerson(&p.Person)
		key := personKey(p.Person)
		if key == "" {
			dropped++
			continue
		}
		if _, ok := seen[key]; ok {
			dropped++
			continue
		}
		seen[key] = struct{}{}

		p.ConnectionDegree = "2nd"
		if p.Tags == nil {
			p.Tags = []string{}
		}
		clean = append(clean, p)
	}
	if dropped > 0 {
		n.logger.Debug("dropped %d non-2nd, duplicate or keyless entries", dropped)
	}

	meta := linkedin.CompanyMeta{
		CompanyURL:            payload.CompanyURL,
		CompanyName:           payload.CompanyName,
		PeopleTabURL:          payload.PeopleTabURL,
		ExtractedAt:           n.now().UTC().Format(timeLayout),
		TotalEmployeesVisible: payload.TotalEmployeesVisible,
		SecondDegreeCount:     len(clean),
	}
	if meta.CompanyURL == "" {
		meta.CompanyURL = strings.TrimRight(companyURL, "/")
	}
	if meta.PeopleTabURL == "" {
		meta.PeopleTabURL = linkedin.PeopleTabURL(companyURL)
	}

	return &linkedin.CompanyPeopleDoc{Meta: meta, People: clean}, nil
}
