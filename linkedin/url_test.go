package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"canonical", "https://www.linkedin.com/in/jdoe", "jdoe"},
		{"trailing slash", "https://www.linkedin.com/in/jdoe/", "jdoe"},
		{"tracking params", "https://www.linkedin.com/in/jdoe?trk=abc", "jdoe"},
		{"fragment", "https://www.linkedin.com/in/jdoe#about", "jdoe"},
		{"relative path", "/in/jdoe/", "jdoe"},
		{"subpage", "https://www.linkedin.com/in/jdoe/details/experience/", "jdoe"},
		{"company url", "https://www.linkedin.com/company/acme/", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProfileID(tt.url))
		})
	}
}

func TestCanonicalProfileURL(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/in/jdoe", CanonicalProfileURL("jdoe"))
}

func TestValidateCompanyURL(t *testing.T) {
	assert.NoError(t, ValidateCompanyURL("https://www.linkedin.com/company/acme"))
	assert.NoError(t, ValidateCompanyURL("https://www.linkedin.com/company/acme/"))
	assert.NoError(t, ValidateCompanyURL("http://linkedin.com/company/acme"))

	assert.Error(t, ValidateCompanyURL("https://www.linkedin.com/in/jdoe"))
	assert.Error(t, ValidateCompanyURL("https://example.com/company/acme"))
	assert.Error(t, ValidateCompanyURL("linkedin.com/company/acme"))
}

func TestPeopleTabURL(t *testing.T) {
	assert.Equal(t, "https://www.linkedin.com/company/acme/people/", PeopleTabURL("https://www.linkedin.com/company/acme"))
	assert.Equal(t, "https://www.linkedin.com/company/acme/people/", PeopleTabURL("https://www.linkedin.com/company/acme/"))
}
