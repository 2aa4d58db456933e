package generator

import "github.com/abhisek/corelearn/internal/llm"

// CourseSchema defines the JSON schema for full-course generation.
var CourseSchema = &llm.Schema{
	Name:        "course",
	Description: "A complete online course with modules, lessons, quizzes, and a final exam",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type": "string",
			},
			"certificateTitle": map[string]any{
				"type":        "string",
				"description": "Formal title printed on the certificate of completion",
			},
			"description": map[string]any{
				"type": "string",
			},
			"targetAudience": map[string]any{
				"type": "string",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": []any{"Beginner", "Intermediate", "Advanced"},
			},
			"estimatedTotalDuration": map[string]any{
				"type": "string",
			},
			"modules": map[string]any{
				"type":  "array",
				"items": moduleSchema,
			},
			"finalExam": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string"},
					"questions": map[string]any{
						"type":  "array",
						"items": examQuestionSchema,
					},
				},
				"required": []any{"title", "questions"},
			},
		},
		"required": []any{
			"title", "certificateTitle", "description", "targetAudience",
			"difficulty", "estimatedTotalDuration", "modules", "finalExam",
		},
	},
}

var moduleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"lessons": map[string]any{
			"type":  "array",
			"items": lessonSchema,
		},
	},
	"required": []any{"title", "description", "lessons"},
}

var lessonSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title":    map[string]any{"type": "string"},
		"duration": map[string]any{"type": "string"},
		"content": map[string]any{
			"type":        "string",
			"description": "Extensive educational content (approx 600-800 words). Must include deep dives, examples, and correct technical syntax.",
		},
		"keyTakeaways": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"assignment": map[string]any{"type": "string"},
		"resources": map[string]any{
			"type":        "array",
			"items":       resourceSchema,
			"description": "List of 2-3 external resources for further reading.",
		},
		"quiz": map[string]any{
			"type":  "array",
			"items": quizQuestionSchema,
		},
	},
	"required": []any{"title", "duration", "content", "keyTakeaways", "assignment", "resources", "quiz"},
}

var resourceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{"type": "string"},
		"url": map[string]any{
			"type":        "string",
			"description": "A valid URL to a real resource (documentation, video, article).",
		},
		"type": map[string]any{
			"type": "string",
			"enum": []any{"video", "article", "book", "tool"},
		},
	},
	"required": []any{"title", "url", "type"},
}

var quizQuestionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"correctAnswerIndex": map[string]any{"type": "integer"},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Detailed pedagogical explanation of the correct answer and why other options are incorrect.",
		},
	},
	"required": []any{"question", "options", "correctAnswerIndex", "explanation"},
}

var examQuestionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":   map[string]any{"type": "integer"},
		"text": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"correctAnswerIndex": map[string]any{"type": "integer"},
	},
	"required": []any{"id", "text", "options", "correctAnswerIndex"},
}
