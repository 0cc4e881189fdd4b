// Package github talks to the GitHub GraphQL API: it builds the contribution
// calendar query, performs the HTTP exchange and classifies the response.
package github

// calendarQuery takes the login as a GraphQL variable. The login is never
// spliced into the document text, so it cannot alter the query.
const calendarQuery = `query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            color
          }
        }
      }
    }
  }
}`

// GraphQLRequest is the JSON body POSTed to the endpoint.
type GraphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// BuildQuery returns the calendar request for login.
func BuildQuery(login string) GraphQLRequest {
	return GraphQLRequest{
		Query:     calendarQuery,
		Variables: map[string]any{"login": login},
	}
}
