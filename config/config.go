package config

import (
	"os"
	"strings"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetOpenAIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func GetOpenAIModel() string {
	return getenv("OPENAI_MODEL", "gpt-4o-mini")
}

// GetOpenAIBaseURL overrides the API endpoint, for OpenAI-compatible
// servers. Empty means the official endpoint.
func GetOpenAIBaseURL() string {
	return os.Getenv("OPENAI_BASE_URL")
}

// GetLLMBackend selects the chat-completion client: "openai" (SDK) or
// "resty" (raw HTTP, for OpenAI-compatible endpoints).
func GetLLMBackend() string {
	return getenv("LLM_BACKEND", "openai")
}

func GetGoogleClientID() string {
	return os.Getenv("GOOGLE_CLIENT_ID")
}

func GetGoogleClientSecret() string {
	return os.Getenv("GOOGLE_CLIENT_SECRET")
}

// GetRedirectBaseURL is the externally visible base URL registered in
// the Google console; the OAuth redirect route is appended to it.
func GetRedirectBaseURL() string {
	return getenv("GOOGLE_REDIRECT_BASE_URL", "http://localhost:8080")
}

func GetCalendarID() string {
	return getenv("GOOGLE_CALENDAR_ID", "primary")
}

func GetCredentialsFile() string {
	return getenv("CREDENTIALS_FILE", "credentials.json")
}

// GetCredentialsBackend selects where the owner credential lives:
// "file" or "dynamodb".
func GetCredentialsBackend() string {
	return getenv("CREDENTIALS_BACKEND", "file")
}

// GetDynamoDBEndpoint points the credential store at a local DynamoDB
// when set (e.g. http://localhost:8000).
func GetDynamoDBEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

// AllowCalendarOwnerLogin gates the /connect/google routes. Anything
// other than an empty value or "false" enables the flow.
func AllowCalendarOwnerLogin() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ALLOW_CALENDAR_OWNER_LOGIN")))
	return v != "" && v != "false" && v != "0"
}

func GetCalendarTimezone() string {
	return getenv("CALENDAR_TIMEZONE", "UTC")
}

func GetSystemMessageFile() string {
	return getenv("SYSTEM_MESSAGE_FILE", "system_message.txt")
}

func GetChatLogFile() string {
	return getenv("CHAT_LOG_FILE", "logs/chat.log")
}

func GetPort() string {
	return getenv("PORT", "8080")
}

// System-prompt placeholder values, substituted into the template at
// request time.

func GetBotName() string {
	return getenv("GPT_SYS_MESSAGE_CHAT_BOT_NAME", "Assistant")
}

func GetCompany() string {
	return os.Getenv("GPT_SYS_MESSAGE_COMPANY")
}

func GetServices() string {
	return os.Getenv("GPT_SYS_MESSAGE_SERVICES")
}

func GetSupportEmail() string {
	return os.Getenv("GPT_SYS_MESSAGE_SUPPORT_EMAIL")
}

func GetAvailability() string {
	return os.Getenv("GPT_SYS_MESSAGE_AVAILABILITY")
}

func GetLocation() string {
	return os.Getenv("GPT_SYS_MESSAGE_LOCATION")
}
