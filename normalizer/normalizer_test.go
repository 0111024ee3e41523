package normalizer

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peaceout21/linkedin-mutual-connections/linkedin"
	"github.com/Peaceout21/linkedin-mutual-connections/log"
)

var fixedTime = time.Date(2026, 8, 23, 10, 30, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	return New(
		WithClock(func() time.Time { return fixedTime }),
		WithLogger(log.NoOpLogger{}),
	)
}

func TestCanonicalizePersonStripsTrackingParams(t *testing.T) {
	p := linkedin.Person{
		Name:        "J Doe",
		LinkedInURL: "https://www.linkedin.com/in/jdoe?trk=abc",
	}
	CanonicalizePerson(&p)

	assert.Equal(t, "jdoe", p.LinkedInID)
	assert.Equal(t, "https://www.linkedin.com/in/jdoe", p.LinkedInURL)
	assert.Equal(t, "J Doe", p.Name)
}

func TestCanonicalizePersonIdempotent(t *testing.T) {
	p := linkedin.Person{
		Name:        "J Doe",
		LinkedInURL: "https://www.linkedin.com/in/jdoe?trk=abc",
	}
	CanonicalizePerson(&p)
	once := p
	CanonicalizePerson(&p)
	assert.Equal(t, once, p)
}

func TestCanonicalizePersonLeavesNonProfileURL(t *testing.T) {
	p := linkedin.Person{Name: "Jane Doe", LinkedInURL: "https://example.com/jane"}
	CanonicalizePerson(&p)
	assert.Equal(t, "https://example.com/jane", p.LinkedInURL)
	assert.Empty(t, p.LinkedInID)
}

func TestDedupeFirstWinsOrderPreserving(t *testing.T) {
	people := []linkedin.Person{
		{LinkedInID: "a", Title: "first a"},
		{LinkedInID: "b"},
		{LinkedInID: "a", Title: "second a"},
	}
	clean, dropped := DedupePeople(people)

	require.Len(t, clean, 2)
	assert.Equal(t, "a", clean[0].LinkedInID)
	assert.Equal(t, "first a", clean[0].Title)
	assert.Equal(t, "b", clean[1].LinkedInID)
	assert.Equal(t, 1, dropped)
}

func TestDedupeFallsBackToName(t *testing.T) {
	people := []linkedin.Person{
		{Name: "Jane Doe"},
		{Name: "Jane Doe"},
		{Name: "John Doe"},
	}
	clean, dropped := DedupePeople(people)

	require.Len(t, clean, 2)
	assert.Equal(t, "Jane Doe", clean[0].Name)
	assert.Equal(t, "John Doe", clean[1].Name)
	assert.Equal(t, 1, dropped)
}

func TestDedupeDropsKeylessEntries(t *testing.T) {
	people := []linkedin.Person{
		{Title: "only a title"},
		{Name: "Jane Doe"},
	}
	clean, dropped := DedupePeople(people)

	require.Len(t, clean, 1)
	assert.Equal(t, "Jane Doe", clean[0].Name)
	assert.Equal(t, 1, dropped)
}

func TestMutualConnectionsHappyPath(t *testing.T) {
	raw := `Done. Here is the data:
{
  "target_profile": "https://www.linkedin.com/in/target/",
  "mutual_count": 3,
  "extracted_at": "1999-01-01T00:00:00Z",
  "mutual_connections": [
    {"name": "A One", "linkedin_url": "https://www.linkedin.com/in/a-one?trk=x", "title": "CTO", "location": "Berlin, Germany"},
    {"name": "B Two", "linkedin_url": "/in/b-two/", "title": "Engineer"},
    {"name": "A One Again", "linkedin_url": "https://www.linkedin.com/in/a-one/"}
  ]
}`
	doc, err := newTestNormalizer().MutualConnections(raw, "https://www.linkedin.com/in/target/")
	require.NoError(t, err)

	assert.Equal(t, "https://www.linkedin.com/in/target/", doc.TargetProfile)
	assert.Equal(t, json.RawMessage("3"), doc.MutualCount)
	// The agent's timestamp is never trusted.
	assert.Equal(t, "2026-08-23T10:30:00Z", doc.ExtractedAt)

	require.Len(t, doc.MutualConnections, 2)
	assert.Equal(t, "a-one", doc.MutualConnections[0].LinkedInID)
	assert.Equal(t, "https://www.linkedin.com/in/a-one", doc.MutualConnections[0].LinkedInURL)
	assert.Equal(t, "A One", doc.MutualConnections[0].Name)
	assert.Equal(t, "b-two", doc.MutualConnections[1].LinkedInID)
	assert.Equal(t, doc.ActualExtracted, len(doc.MutualConnections))
}

func TestMutualConnectionsDerivedCountInvariant(t *testing.T) {
	// The reported count never influences the derived one.
	raw := `{"mutual_count": 500, "mutual_connections": [{"name": "Only One"}]}`
	doc, err := newTestNormalizer().MutualConnections(raw, "https://www.linkedin.com/in/x/")
	require.NoError(t, err)

	assert.Equal(t, 1, doc.ActualExtracted)
	assert.Equal(t, doc.ActualExtracted, len(doc.MutualConnections))
	assert.Equal(t, json.RawMessage("500"), doc.MutualCount)
}

func TestMutualConnectionsNonNumericReportedCountSurvives(t *testing.T) {
	raw := `{"mutual_count": "10+", "mutual_connections": []}`
	doc, err := newTestNormalizer().MutualConnections(raw, "https://www.linkedin.com/in/x/")
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage(`"10+"`), doc.MutualCount)
	assert.Equal(t, 0, doc.ActualExtracted)
}

func TestMutualConnectionsTargetFallsBackToRequestURL(t *testing.T) {
	raw := `{"mutual_connections": []}`
	doc, err := newTestNormalizer().MutualConnections(raw, "https://www.linkedin.com/in/x/")
	require.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/in/x/", doc.TargetProfile)
}

func TestMutualConnectionsNoJSON(t *testing.T) {
	raw := "I could not complete the task."
	_, err := newTestNormalizer().MutualConnections(raw, "https://www.linkedin.com/in/x/")
	require.ErrorIs(t, err, ErrNoJSON)

	data, merr := json.Marshal(ErrorDocument(err, raw))
	require.NoError(t, merr)
	assert.JSONEq(t, `{"error": "No JSON found", "raw": "I could not complete the task."}`, string(data))
}

func TestMutualConnectionsMalformedJSON(t *testing.T) {
	raw := `{"mutual_connections": [}`
	_, err := newTestNormalizer().MutualConnections(raw, "https://www.linkedin.com/in/x/")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoJSON)

	errDoc := ErrorDocument(err, raw)
	assert.Equal(t, raw, errDoc.Raw)
	assert.NotEmpty(t, errDoc.Error)
}

func TestCompanyPeopleHappyPath(t *testing.T) {
	raw := `{
  "company_url": "https://www.linkedin.com/company/acme",
  "company_name": "Acme",
  "people_tab_url": "https://www.linkedin.com/company/acme/people/",
  "total_employees_visible": 40,
  "second_degree_count": 99,
  "people": [
    {"name": "A One", "linkedin_url": "https://www.linkedin.com/in/a-one?trk=x", "connection_degree": "2nd"},
    {"name": "First Degree", "linkedin_url": "/in/first/", "connection_degree": "1st"},
    {"name": "A One Dup", "linkedin_url": "/in/a-one", "connection_degree": "2nd"},
    {"name": "No Degree Field", "linkedin_url": "/in/no-degree"}
  ]
}`
	doc, err := newTestNormalizer().CompanyPeople(raw, "https://www.linkedin.com/company/acme/")
	require.NoError(t, err)

	assert.Equal(t, "Acme", doc.Meta.CompanyName)
	assert.Equal(t, 40, doc.Meta.TotalEmployeesVisible)
	// Recomputed, not the agent's 99.
	assert.Equal(t, 2, doc.Meta.SecondDegreeCount)
	assert.Equal(t, doc.Meta.SecondDegreeCount, len(doc.People))
	assert.Equal(t, "2026-08-23T10:30:00Z", doc.Meta.ExtractedAt)

	require.Len(t, doc.People, 2)
	assert.Equal(t, "a-one", doc.People[0].LinkedInID)
	assert.Equal(t, "no-degree", doc.People[1].LinkedInID)
	for _, p := range doc.People {
		assert.Equal(t, "2nd", p.ConnectionDegree)
		assert.NotNil(t, p.Tags)
		assert.Empty(t, p.Notes)
		assert.False(t, p.Contacted)
		assert.Nil(t, p.ContactDate)
	}
}

func TestCompanyPeopleMetaFallbacks(t *testing.T) {
	raw := `{"people": []}`
	doc, err := newTestNormalizer().CompanyPeople(raw, "https://www.linkedin.com/company/acme/")
	require.NoError(t, err)

	assert.Equal(t, "https://www.linkedin.com/company/acme", doc.Meta.CompanyURL)
	assert.Equal(t, "https://www.linkedin.com/company/acme/people/", doc.Meta.PeopleTabURL)
	assert.Equal(t, 0, doc.Meta.TotalEmployeesVisible)
	assert.Empty(t, doc.People)
}

func TestCompanyPeopleTagsSurviveWhenSupplied(t *testing.T) {
	raw := `{"people": [{"name": "A", "linkedin_url": "/in/a", "connection_degree": "2nd", "tags": ["warm"]}]}`
	doc, err := newTestNormalizer().CompanyPeople(raw, "https://www.linkedin.com/company/acme/")
	require.NoError(t, err)
	require.Len(t, doc.People, 1)
	assert.Equal(t, []string{"warm"}, doc.People[0].Tags)
}

func TestErrorDocFieldOrder(t *testing.T) {
	data, err := json.Marshal(ErrorDocument(ErrNoJSON, "raw text"))
	require.NoError(t, err)
	assert.Equal(t, `{"error":"No JSON found","raw":"raw text"}`, string(data))
}
