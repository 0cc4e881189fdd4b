package github

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akyairhashvil/contribcheck/internal/models"
)

// Wire shapes use pointers so an absent field can be told apart from a zero
// value. Every calendar, week, day and error field is required.
type envelope struct {
	Data   *envelopeData  `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type envelopeData struct {
	User *envelopeUser `json:"user"`
}

type envelopeUser struct {
	ContributionsCollection *contributionsCollection `json:"contributionsCollection"`
}

type contributionsCollection struct {
	ContributionCalendar *wireCalendar `json:"contributionCalendar"`
}

type wireCalendar struct {
	TotalContributions *uint       `json:"totalContributions"`
	Weeks              *[]wireWeek `json:"weeks"`
}

type wireWeek struct {
	ContributionDays *[]wireDay `json:"contributionDays"`
}

type wireDay struct {
	Date              *string `json:"date"`
	ContributionCount *uint   `json:"contributionCount"`
	Color             *string `json:"color"`
}

type graphQLError struct {
	Message *string `json:"message"`
}

func missingField(name string) error {
	return &ParseError{Err: fmt.Errorf("missing field `%s`", name)}
}

// ParseEnvelope classifies a response body. The checks run in a fixed order:
// decoding and shape, server errors, missing user, missing data. Server errors
// win over any partial data in the same envelope.
func ParseEnvelope(body []byte) (models.ContributionCalendar, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return models.ContributionCalendar{}, &ParseError{Err: errors.New("expected a JSON object")}
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return models.ContributionCalendar{}, &ParseError{Err: err}
	}
	msgs := make([]string, 0, len(env.Errors))
	for _, e := range env.Errors {
		if e.Message == nil {
			return models.ContributionCalendar{}, missingField("message")
		}
		msgs = append(msgs, *e.Message)
	}
	var cal models.ContributionCalendar
	if env.Data != nil && env.Data.User != nil {
		coll := env.Data.User.ContributionsCollection
		if coll == nil {
			return models.ContributionCalendar{}, missingField("contributionsCollection")
		}
		if coll.ContributionCalendar == nil {
			return models.ContributionCalendar{}, missingField("contributionCalendar")
		}
		var err error
		if cal, err = coll.ContributionCalendar.toModel(); err != nil {
			return models.ContributionCalendar{}, err
		}
	}

	if len(msgs) > 0 {
		return models.ContributionCalendar{}, &APIError{Messages: msgs}
	}
	if env.Data == nil {
		return models.ContributionCalendar{}, &MissingDataError{Err: ErrNoData}
	}
	if env.Data.User == nil {
		return models.ContributionCalendar{}, &MissingDataError{Err: ErrNoUserData}
	}
	return cal, nil
}

func (w *wireCalendar) toModel() (models.ContributionCalendar, error) {
	if w.TotalContributions == nil {
		return models.ContributionCalendar{}, missingField("totalContributions")
	}
	if w.Weeks == nil {
		return models.ContributionCalendar{}, missingField("weeks")
	}
	cal := models.ContributionCalendar{
		TotalContributions: *w.TotalContributions,
		Weeks:              make([]models.Week, 0, len(*w.Weeks)),
	}
	for _, wk := range *w.Weeks {
		if wk.ContributionDays == nil {
			return models.ContributionCalendar{}, missingField("contributionDays")
		}
		week := models.Week{ContributionDays: make([]models.ContributionDay, 0, len(*wk.ContributionDays))}
		for _, d := range *wk.ContributionDays {
			switch {
			case d.Date == nil:
				return models.ContributionCalendar{}, missingField("date")
			case d.ContributionCount == nil:
				return models.ContributionCalendar{}, missingField("contributionCount")
			case d.Color == nil:
				return models.ContributionCalendar{}, missingField("color")
			}
			week.ContributionDays = append(week.ContributionDays, models.ContributionDay{
				Date:              *d.Date,
				ContributionCount: *d.ContributionCount,
				Color:             *d.Color,
			})
		}
		cal.Weeks = append(cal.Weeks, week)
	}
	return cal, nil
}
