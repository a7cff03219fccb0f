package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"meetingbot/models"
)

// MeetingExtractor turns free-form assistant text into a structured
// event request. Implementations return (nil, nil) when the text simply
// contains no meeting, and an error only when the text matched the
// format but its date/time/duration could not be parsed.
type MeetingExtractor interface {
	Extract(text string) (*models.EventRequest, error)
}

// The six labeled lines the system prompt instructs the model to emit,
// in this exact order and case.
var meetingPattern = regexp.MustCompile(
	`Email: (?P<email>.*)\n` +
		`Subject: (?P<subject>.*)\n` +
		`Location: (?P<location>.*)\n` +
		`Date: (?P<date>.*)\n` +
		`Time: (?P<time>.*)\n` +
		`Duration: (?P<duration>.*)`)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
	"3:04 pm",
	"3:04 PM",
	"3:04pm",
	"3:04PM",
	"3 pm",
	"3 PM",
	"3pm",
}

// RegexMeetingExtractor matches the fixed line-oriented pattern and
// parses the date/time in the configured calendar timezone.
type RegexMeetingExtractor struct {
	loc *time.Location
}

func NewRegexMeetingExtractor(loc *time.Location) *RegexMeetingExtractor {
	if loc == nil {
		loc = time.UTC
	}
	return &RegexMeetingExtractor{loc: loc}
}

func (e *RegexMeetingExtractor) Extract(text string) (*models.EventRequest, error) {
	m := meetingPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}

	fields := make(map[string]string)
	for i, name := range meetingPattern.SubexpNames() {
		if name != "" {
			// tolerate CRLF line endings in the model output
			fields[name] = strings.TrimRight(m[i], "\r")
		}
	}

	start, err := e.parseDateTime(fields["date"], fields["time"])
	if err != nil {
		return nil, err
	}

	duration, err := parseMeetingDuration(fields["duration"])
	if err != nil {
		return nil, err
	}

	return &models.EventRequest{
		Subject:       fields["subject"],
		Location:      fields["location"],
		Start:         start,
		End:           start.Add(duration),
		AttendeeEmail: fields["email"],
	}, nil
}

func (e *RegexMeetingExtractor) parseDateTime(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	for _, dl := range dateLayouts {
		for _, tl := range timeLayouts {
			t, err := time.ParseInLocation(dl+" "+tl, date+" "+clock, e.loc)
			if err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse meeting date/time %q %q", date, clock)
}

var durationPattern = regexp.MustCompile(`^([0-9]+(?:\.[0-9]+)?)\s*([A-Za-z]+)\.?$`)

// parseMeetingDuration accepts the free-text durations the model emits
// ("30 minutes", "1 hour", "45 min") plus bare Go durations ("90m").
// The result must be strictly positive.
func parseMeetingDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if m := durationPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse meeting duration %q", s)
		}
		var unit time.Duration
		switch strings.ToLower(m[2]) {
		case "minute", "minutes", "min", "mins", "m":
			unit = time.Minute
		case "hour", "hours", "hr", "hrs", "h":
			unit = time.Hour
		case "day", "days", "d":
			unit = 24 * time.Hour
		default:
			return 0, fmt.Errorf("unknown duration unit %q", m[2])
		}
		d := time.Duration(n * float64(unit))
		if d <= 0 {
			return 0, fmt.Errorf("meeting duration %q is not positive", s)
		}
		return d, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("cannot parse meeting duration %q", s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("meeting duration %q is not positive", s)
	}
	return d, nil
}
