package services

import (
	"context"
	"log"

	"meetingbot/models"
)

// ChatService composes the conversation into a language-model request,
// runs the meeting extractor on the reply and, on a match, attempts the
// booking. Booking failures never fail the request; their text is
// appended to the answer instead.
type ChatService struct {
	llm       LanguageModel
	extractor MeetingExtractor
	store     CredentialStore
	calendar  CalendarGateway
	prompts   *PromptService
	chatLog   *log.Logger
}

func NewChatService(
	llm LanguageModel,
	extractor MeetingExtractor,
	store CredentialStore,
	calendar CalendarGateway,
	prompts *PromptService,
	chatLog *log.Logger,
) *ChatService {
	return &ChatService{
		llm:       llm,
		extractor: extractor,
		store:     store,
		calendar:  calendar,
		prompts:   prompts,
		chatLog:   chatLog,
	}
}

// Respond handles one chat turn. The history arrives verbatim from the
// caller and is sent upstream unmodified, after the templated system
// turn. The service is stateless across requests.
func (s *ChatService) Respond(ctx context.Context, history []models.ConversationTurn) (models.ChatReply, error) {
	system, err := s.prompts.SystemContent()
	if err != nil {
		return models.ChatReply{}, err
	}

	messages := make([]models.ConversationTurn, 0, len(history)+1)
	messages = append(messages, models.ConversationTurn{Role: "system", Content: system})
	messages = append(messages, history...)

	answer, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return models.ChatReply{}, err
	}

	reply := models.ChatReply{Answer: answer}

	request, err := s.extractor.Extract(answer)
	if err != nil {
		// the text claimed to be a meeting but did not parse
		return models.ChatReply{}, err
	}
	if request != nil {
		reply.BookingResult = s.book(ctx, request)
	}

	s.logExchange(history, reply.Text())
	return reply, nil
}

// book returns the event link, or the error text the user should see.
func (s *ChatService) book(ctx context.Context, request *models.EventRequest) string {
	cred, err := s.store.Load()
	if err != nil {
		return err.Error()
	}

	link, err := s.calendar.CreateEvent(ctx, request, cred)
	if err != nil {
		return err.Error()
	}
	return link
}

func (s *ChatService) logExchange(history []models.ConversationTurn, answer string) {
	if s.chatLog == nil {
		return
	}
	lastUser := ""
	if len(history) > 0 {
		lastUser = history[len(history)-1].Content
	}
	s.chatLog.Printf("Chat [user]: %q [agent]: %q", lastUser, answer)
}
