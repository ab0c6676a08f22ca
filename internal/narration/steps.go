package narration

import "fmt"

// Step is one advisory stage of the release notes workflow. None of the calls
// listed here are executed; they describe what a live integration would do.
type Step struct {
	Title   string
	Details []string
}

// WorkflowSteps lists the seven workflow stages for the given names.
func WorkflowSteps(space, project, environment string) []Step {
	return []Step{
		{
			Title: "Listing available spaces...",
			Details: []string{
				"Would call: octopusdeploy-list_spaces",
				"Verify space exists: " + space,
			},
		},
		{
			Title: "Finding project in space...",
			Details: []string{
				fmt.Sprintf("Would call: octopusdeploy-list_projects(spaceName=%q, partialName=%q)", space, project),
				"Extract project ID",
			},
		},
		{
			Title: "Finding environment...",
			Details: []string{
				fmt.Sprintf("Would call: octopusdeploy-list_environments(spaceName=%q, partialName=%q)", space, environment),
				"Extract environment ID",
			},
		},
		{
			Title: "Getting latest deployment...",
			Details: []string{
				fmt.Sprintf("Would call: octopusdeploy-list_deployments(spaceName=%q, projects=[projectId], environments=[environmentId], taskState=\"Success\", take=1)", space),
				"Extract deployment and release ID",
			},
		},
		{
			Title: "Getting release details...",
			Details: []string{
				"Would call: octopusdeploy-get_release_by_id(spaceName, releaseId)",
				"Extract build information with Git commits",
			},
		},
		{
			Title: "Fetching Git commit details from GitHub...",
			Details: []string{
				"For each commit SHA in the release:",
				"  - Would call: github-mcp-server-get_commit(owner, repo, sha)",
				"  - Extract: message, author, date, diff summary",
			},
		},
		{
			Title: "Generating release notes...",
			Details: []string{
				"Format commits into markdown",
				"Save to RELEASE_NOTES.md",
			},
		},
	}
}
