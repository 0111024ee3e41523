package linkedin

import "encoding/json"

// Person is one extracted LinkedIn member. LinkedInID is the /in/ path
// segment of the profile URL and doubles as the identity key during
// deduplication (falling back to Name when the URL is missing).
type Person struct {
	Name        string  `json:"name"`
	LinkedInURL string  `json:"linkedin_url,omitempty"`
	LinkedInID  string  `json:"linkedin_id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Location    *string `json:"location"`
}

// CompanyPerson is a Person found on a company's /people/ tab, extended with
// the connection degree badge and the CRM fields the company tool emits.
type CompanyPerson struct {
	Person
	ConnectionDegree string   `json:"connection_degree"`
	Tags             []string `json:"tags"`
	Notes            string   `json:"notes"`
	Contacted        bool     `json:"contacted"`
	ContactDate      *string  `json:"contact_date"`
}

// MutualConnectionsDoc is the result document of the mutual-connections tool.
//
// MutualCount is the count LinkedIn itself displayed near the profile photo.
// It is carried verbatim as the agent reported it (it may be missing or not
// even numeric) and is only used for a human-readable discrepancy check.
// ActualExtracted is derived from the deduplicated list and is the count to
// trust.
type MutualConnectionsDoc struct {
	TargetProfile     string          `json:"target_profile"`
	MutualCount       json.RawMessage `json:"mutual_count,omitempty"`
	ExtractedAt       string          `json:"extracted_at"`
	ActualExtracted   int             `json:"actual_extracted"`
	MutualConnections []Person        `json:"mutual_connections"`
}

// CompanyMeta describes one company-people extraction run.
// TotalEmployeesVisible is the agent's own count of cards seen (all degrees);
// SecondDegreeCount is recomputed from the cleaned list.
type CompanyMeta struct {
	CompanyURL            string `json:"company_url"`
	CompanyName           string `json:"company_name"`
	PeopleTabURL          string `json:"people_tab_url"`
	ExtractedAt           string `json:"extracted_at"`
	TotalEmployeesVisible int    `json:"total_employees_visible"`
	SecondDegreeCount     int    `json:"second_degree_count"`
}

// CompanyPeopleDoc is the result document of the company-people tool.
type CompanyPeopleDoc struct {
	Meta   CompanyMeta     `json:"meta"`
	People []CompanyPerson `json:"people"`
}
