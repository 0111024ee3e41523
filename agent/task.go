package agent

import (
	"fmt"
	"strings"

	"github.com/Peaceout21/linkedin-mutual-connections/linkedin"
)

const mutualConnectionsTask = `You are extracting mutual connections from a LinkedIn profile.
The browser is already logged into LinkedIn via session cookies.

Step-by-step task:

1. Navigate to: %s
2. Wait for the page to fully load, then read it.
3. Find text near the profile photo that says something like "X mutual connections"
   or "Name, Name, and X other mutual connections". Note the total count.
4. Click on that mutual connections link.
5. You will see a list of people (modal or new page). Scroll and re-read
   repeatedly until no new people appear - you have reached the end of the list.
6. For every person in the list extract:
   - Full name
   - LinkedIn profile URL (the /in/username part)
   - Current job title / headline
   - Location (if visible)
7. Answer with ONLY a valid JSON object in this exact format, nothing else:

{
  "target_profile": "%s",
  "mutual_count": <number from step 3>,
  "extracted_at": "<ISO timestamp>",
  "mutual_connections": [
    {
      "name": "Full Name",
      "linkedin_url": "https://www.linkedin.com/in/username",
      "linkedin_id": "username",
      "title": "Their current role",
      "location": "City, Country or null"
    }
  ]
}`

const enrichInstruction = `

8. Enrichment pass: after collecting the list, visit each person's profile
   page and add to their entry:
   - "company": their current company
   - "about": the first sentence of their About section, if present
   Keep every field from step 6 unchanged.`

// BuildMutualConnectionsTask renders the mutual-connections task for a
// profile URL. With enrich set, a secondary per-person enrichment pass is
// appended.
func BuildMutualConnectionsTask(profileURL string, enrich bool) string {
	task := fmt.Sprintf(mutualConnectionsTask, profileURL, profileURL)
	if enrich {
		task += enrichInstruction
	}
	return task
}

const companyPeopleTask = `You are extracting 2nd-degree connections from a LinkedIn company page.
The browser is already logged into LinkedIn via session cookies.

Step-by-step task:

1. Navigate to: %s
2. Wait for the page to fully load, then read it. Note the company name shown on the page.
3. Scroll and re-read repeatedly through the entire employee list.
   Stop only when no new employee cards appear after two consecutive scrolls.
4. For EACH employee card, read the connection degree badge - it shows "1st", "2nd", or "3rd+".
   Include ONLY cards with the "2nd" degree badge. Skip all others.
5. For each "2nd" degree employee extract:
   - Full name
   - LinkedIn profile URL (the /in/username part from the card link)
   - Job title / headline
   - Location (if visible on the card)
6. Count:
   - total_employees_visible: total cards seen (all degrees)
   - second_degree_count: how many were "2nd"
7. If the people tab is restricted or empty, answer with total_employees_visible: 0 and an empty people list.
8. Answer with ONLY a valid JSON object in this exact format, nothing else:

{
  "company_url": "%s",
  "company_name": "<name shown on the page>",
  "people_tab_url": "%s",
  "total_employees_visible": <integer>,
  "second_degree_count": <integer>,
  "people": [
    {
      "name": "Full Name",
      "linkedin_url": "https://www.linkedin.com/in/username",
      "linkedin_id": "username",
      "title": "Their job title or headline",
      "location": "City, Country or null",
      "connection_degree": "2nd"
    }
  ]
}`

// BuildCompanyPeopleTask renders the company-people task for a company URL.
func BuildCompanyPeopleTask(companyURL string) string {
	tabURL := linkedin.PeopleTabURL(companyURL)
	return fmt.Sprintf(companyPeopleTask, tabURL, strings.TrimRight(companyURL, "/"), tabURL)
}
