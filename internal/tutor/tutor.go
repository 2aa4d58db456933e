package tutor

import (
	"context"
	"strings"

	"github.com/abhisek/corelearn/internal/llm"
)

// maxLessonContext caps how much lesson content is sent with each question.
const maxLessonContext = 15000

// FallbackMessage is shown when the tutor request fails. Tutoring is
// best-effort; a failed question never surfaces as an error to the learner.
const FallbackMessage = "I'm sorry, I encountered an error. Please check your connection and try again."

// Message is one turn in a tutor conversation.
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// Service answers learner questions about the lesson being studied.
type Service struct {
	provider  llm.Provider
	maxTokens int
}

// NewService creates a tutor service.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, maxTokens: 2048}
}

// Ask answers a question grounded in the current lesson. History carries the
// conversation so far. On any failure the fallback message is returned.
func (s *Service) Ask(ctx context.Context, lessonTitle, lessonContent, question string, history []Message) string {
	ctx = llm.WithPurpose(ctx, "tutor")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorMessage(lessonTitle, lessonContent, question, history)},
		},
		MaxTokens: s.maxTokens,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackMessage
	}

	answer := strings.TrimSpace(string(resp.Content))
	if answer == "" {
		return "I'm having trouble connecting right now. Please try again."
	}
	return answer
}

func buildTutorMessage(lessonTitle, lessonContent, question string, history []Message) string {
	if len(lessonContent) > maxLessonContext {
		lessonContent = lessonContent[:maxLessonContext]
	}

	var b strings.Builder

	b.WriteString("You are a helpful, encouraging, and highly knowledgeable AI Teaching Assistant.\n\n")
	b.WriteString("CONTEXT (The student is currently studying this lesson):\n")
	b.WriteString("Title: " + lessonTitle + "\n")
	b.WriteString("Content:\n" + lessonContent + "\n\n")

	b.WriteString("PREVIOUS CHAT HISTORY:\n")
	for _, m := range history {
		speaker := "Student"
		if m.Role == "assistant" {
			speaker = "AI Tutor"
		}
		b.WriteString(speaker + ": " + m.Text + "\n")
	}

	b.WriteString("\nSTUDENT QUESTION: \"" + question + "\"\n")
	b.WriteString(`
INSTRUCTIONS:
1. Answer the student's question clearly and concisely.
2. Use the provided Lesson Content as your primary source of truth.
3. If the answer is in the lesson, explain it in a new way to help them understand.
4. If the question requires outside knowledge, provide it but keep it relevant.
5. Use plain text suitable for a terminal. Short paragraphs and simple lists.

Provide the response now.`)

	return b.String()
}
