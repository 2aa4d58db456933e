package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/corelearn/internal/course"
	"github.com/abhisek/corelearn/internal/llm"
)

// DemoTopic triggers the built-in course instead of a generation request.
const DemoTopic = "demo"

// Service generates courses from topics.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a course generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// ModelID returns the underlying provider's model ID.
func (s *Service) ModelID() string {
	return s.provider.ModelID()
}

// GenerateTitle produces a course title for the topic. Title generation is
// best-effort: any failure falls back to the raw topic.
func (s *Service) GenerateTitle(ctx context.Context, topic string) string {
	ctx = llm.WithPurpose(ctx, "course-title")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTitleUserMessage(topic)},
		},
		MaxTokens:   s.cfg.TitleMaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return topic
	}

	title := strings.TrimSpace(strings.Trim(strings.TrimSpace(string(resp.Content)), `"`))
	if title == "" {
		return topic
	}
	return title
}

// GenerateCourse produces a complete course for the topic. When title is
// non-empty the course uses it verbatim. The returned course is validated
// for structural soundness before being handed to the caller.
func (s *Service) GenerateCourse(ctx context.Context, topic, title string) (*course.Course, error) {
	if strings.EqualFold(strings.TrimSpace(topic), DemoTopic) {
		return course.Demo(), nil
	}

	ctx = llm.WithPurpose(ctx, "course-gen")

	req := llm.Request{
		System: courseSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildCourseUserMessage(topic, title)},
		},
		Schema:      CourseSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("course generation: %w", err)
	}

	var crs course.Course
	if err := json.Unmarshal(resp.Content, &crs); err != nil {
		return nil, fmt.Errorf("parse course response: %w", err)
	}

	if err := crs.Validate(); err != nil {
		return nil, fmt.Errorf("generated course invalid: %w", err)
	}

	return &crs, nil
}
