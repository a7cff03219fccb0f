package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"meetingbot/models"
)

// CalendarGateway creates an event from an extracted meeting request
// and returns a shareable link to it.
type CalendarGateway interface {
	CreateEvent(ctx context.Context, req *models.EventRequest, cred *models.Credential) (string, error)
}

// GoogleCalendarGateway books events on one configured calendar with
// the single owner credential. Failures are wrapped in CalendarAPIError
// and surfaced to the user as text; nothing is retried.
type GoogleCalendarGateway struct {
	oauthCfg   *oauth2.Config
	calendarID string
	timezone   string
}

func NewGoogleCalendarGateway(oauthCfg *oauth2.Config, calendarID, timezone string) *GoogleCalendarGateway {
	return &GoogleCalendarGateway{
		oauthCfg:   oauthCfg,
		calendarID: calendarID,
		timezone:   timezone,
	}
}

func (g *GoogleCalendarGateway) CreateEvent(ctx context.Context, req *models.EventRequest, cred *models.Credential) (string, error) {
	client := g.oauthCfg.Client(ctx, cred.Token())

	service, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return "", &CalendarAPIError{Message: err.Error(), Err: err}
	}

	// The same explicit timezone goes on both ends of the event.
	event := &calendar.Event{
		Summary:     req.Subject,
		Description: req.Subject,
		Location:    req.Location,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.Format(time.RFC3339),
			TimeZone: g.timezone,
		},
		Attendees: []*calendar.EventAttendee{
			{Email: req.AttendeeEmail},
		},
	}

	// SendUpdates("all") emails the attendee the invitation.
	created, err := service.Events.Insert(g.calendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", &CalendarAPIError{Message: apiErrorMessage(err), Err: err}
	}

	return created.HtmlLink, nil
}

// apiErrorMessage prefers the API's own human-readable message over the
// wrapped transport error.
func apiErrorMessage(err error) string {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Message != "" {
		return gerr.Message
	}
	return err.Error()
}
