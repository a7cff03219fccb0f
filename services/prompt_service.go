package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"meetingbot/config"
)

// nowDateTimeLayout matches what the prompt template promises the
// model: "Friday, January 5, 2024, 10:00 am".
const nowDateTimeLayout = "Monday, January 2, 2006, 3:04 pm"

// PromptService renders the system message from a plain-text template
// with literal placeholder tokens, substituted at request time.
type PromptService struct {
	path string
	now  func() time.Time
}

func NewPromptService(path string) *PromptService {
	return &PromptService{path: path, now: time.Now}
}

// SystemContent reads the template and fills in the operator-configured
// placeholder values plus the current date-time.
func (p *PromptService) SystemContent() (string, error) {
	content, err := os.ReadFile(p.path)
	if err != nil {
		return "", fmt.Errorf("failed to read system message template: %w", err)
	}

	replacer := strings.NewReplacer(
		"__CHAT_BOT_NAME__", config.GetBotName(),
		"__COMPANY__", config.GetCompany(),
		"__SERVICES__", config.GetServices(),
		"__SUPPORT_EMAIL__", config.GetSupportEmail(),
		"__AVAILABILITY__", config.GetAvailability(),
		"__LOCATION__", config.GetLocation(),
		"__NOW_DATE_TIME__", p.now().Format(nowDateTimeLayout),
	)

	return replacer.Replace(string(content)), nil
}
