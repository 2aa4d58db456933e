package course

// Demo returns a small built-in course used when the learner enters the
// topic "demo". It exercises every dashboard feature (locked lessons, a
// lesson without a quiz, gating quizzes, the final exam) without an API key.
func Demo() *Course {
	return &Course{
		Title:                  "Modern Full Stack Development with Go",
		CertificateTitle:       "Full Stack Development with Go",
		Description:            "A compact tour of building and shipping a production web service in Go.",
		TargetAudience:         "Developers comfortable in at least one programming language.",
		Difficulty:             DifficultyIntermediate,
		EstimatedTotalDuration: "4 hours",
		Modules: []Module{
			{
				Title:       "Foundations",
				Description: "Language fundamentals for service development.",
				Lessons: []Lesson{
					{
						Title:    "Orientation",
						Duration: "10 min",
						Content: "Welcome to the course. This opening lesson sets expectations and " +
							"walks through the toolchain you will need: the Go compiler, a module-aware " +
							"editor, and curl. There is no quiz here — read it and move on.",
						KeyTakeaways: []string{
							"Install Go 1.22 or later",
							"Every project is a module",
						},
						Assignment: "Run `go version` and create an empty module with `go mod init`.",
						Resources: []Resource{
							{Title: "Go installation guide", URL: "https://go.dev/doc/install", Type: ResourceArticle},
						},
					},
					{
						Title:    "HTTP Services",
						Duration: "25 min",
						Content: "Go's net/http package gives you a production-grade server in a dozen " +
							"lines. This lesson covers handlers, the request multiplexer, middleware as " +
							"handler decoration, and graceful shutdown with context cancellation.",
						KeyTakeaways: []string{
							"http.Handler is the universal interface",
							"Middleware composes by wrapping handlers",
						},
						Assignment: "Write a server with a /healthz endpoint and a logging middleware.",
						Resources: []Resource{
							{Title: "net/http documentation", URL: "https://pkg.go.dev/net/http", Type: ResourceTool},
						},
						Quiz: []QuizQuestion{
							{
								Question:           "Which interface must a type satisfy to serve HTTP requests?",
								Options:            []string{"http.Server", "http.Handler", "http.Client", "io.Reader"},
								CorrectAnswerIndex: 1,
								Explanation:        "http.Handler, with its single ServeHTTP method, is the contract every handler fulfils.",
							},
							{
								Question:           "What is the idiomatic way to stop a server without dropping in-flight requests?",
								Options:            []string{"os.Exit", "Server.Shutdown with a context", "panic and recover", "closing the listener directly"},
								CorrectAnswerIndex: 1,
								Explanation:        "Server.Shutdown drains active connections before returning, bounded by the supplied context.",
							},
						},
					},
				},
			},
			{
				Title:       "Shipping",
				Description: "Persistence and deployment.",
				Lessons: []Lesson{
					{
						Title:    "Storage and Deployment",
						Duration: "30 min",
						Content: "A service is only useful once it persists data and runs somewhere. " +
							"This lesson pairs database/sql with SQLite for zero-ops storage, then " +
							"builds a static binary and a minimal container image around it.",
						KeyTakeaways: []string{
							"database/sql is driver-agnostic",
							"A static Go binary needs only a scratch image",
						},
						Assignment: "Persist the health-check hit count in SQLite and containerize the service.",
						Resources: []Resource{
							{Title: "database/sql tutorial", URL: "https://go.dev/doc/tutorial/database-access", Type: ResourceArticle},
						},
						Quiz: []QuizQuestion{
							{
								Question:           "Why can a Go service run in a `scratch` container image?",
								Options:            []string{"Go ships its own kernel", "The compiler produces statically linked binaries", "Docker injects a libc", "It cannot"},
								CorrectAnswerIndex: 1,
								Explanation:        "With CGO disabled the toolchain emits a fully static binary with no runtime dependencies.",
							},
						},
					},
				},
			},
		},
		FinalExam: FinalExam{
			Title: "Final Assessment",
			Questions: []Question{
				{ID: 1, Text: "Which package provides the standard HTTP server?", Options: []string{"net/http", "net/url", "io/fs", "os/exec"}, CorrectAnswerIndex: 0},
				{ID: 2, Text: "What does `go mod init` create?", Options: []string{"a binary", "a go.mod file", "a Dockerfile", "a vendor directory"}, CorrectAnswerIndex: 1},
				{ID: 3, Text: "Server.Shutdown accepts which argument?", Options: []string{"a timeout integer", "a context.Context", "a channel", "nothing"}, CorrectAnswerIndex: 1},
				{ID: 4, Text: "database/sql talks to SQLite through what?", Options: []string{"a registered driver", "reflection", "cgo only", "an ORM"}, CorrectAnswerIndex: 0},
				{ID: 5, Text: "Middleware in net/http is typically implemented as…", Options: []string{"goroutines", "handler wrapping", "channels", "build tags"}, CorrectAnswerIndex: 1},
			},
		},
	}
}
