package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMutualConnectionsTask(t *testing.T) {
	task := BuildMutualConnectionsTask("https://www.linkedin.com/in/someone/", false)

	assert.Contains(t, task, "Navigate to: https://www.linkedin.com/in/someone/")
	assert.Contains(t, task, `"target_profile": "https://www.linkedin.com/in/someone/"`)
	assert.Contains(t, task, `"mutual_connections"`)
	assert.NotContains(t, task, "Enrichment pass")
}

func TestBuildMutualConnectionsTaskEnrich(t *testing.T) {
	task := BuildMutualConnectionsTask("https://www.linkedin.com/in/someone/", true)
	assert.Contains(t, task, "Enrichment pass")
	assert.Contains(t, task, `"company"`)
}

func TestBuildCompanyPeopleTask(t *testing.T) {
	task := BuildCompanyPeopleTask("https://www.linkedin.com/company/acme/")

	assert.Contains(t, task, "Navigate to: https://www.linkedin.com/company/acme/people/")
	assert.Contains(t, task, `"company_url": "https://www.linkedin.com/company/acme"`)
	assert.Contains(t, task, `"people_tab_url": "https://www.linkedin.com/company/acme/people/"`)
	assert.Contains(t, task, `"connection_degree": "2nd"`)
	// Only the link target keeps the trailing slash form.
	assert.Equal(t, 1, strings.Count(task, `"company_url"`))
}

func TestExecutorUnknownTool(t *testing.T) {
	e := NewToolExecutor(nil)
	_, err := e.Execute(context.Background(), ToolInvocation{Tool: "nope"})
	assert.Error(t, err)
}
