package openai

// Config contains OpenAI summarizer configuration.
// All fields map to OpenAI SDK options:
//   - APIKey: Maps to option.WithAPIKey()
//   - BaseURL: Maps to option.WithBaseURL()
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
//   - MaxRetries: Maps to option.WithMaxRetries()
//   - Model: Chat model used to write summaries
//   - MaxTokens: Upper bound on the summary length
type Config struct {
	APIKey     string `env:"OPENAI_API_KEY"`
	BaseURL    string `env:"OPENAI_BASE_URL"    envDefault:"https://api.openai.com/v1"`
	Timeout    int    `env:"OPENAI_TIMEOUT"     envDefault:"30"`
	MaxRetries int    `env:"OPENAI_MAX_RETRIES" envDefault:"2"`
	Model      string `env:"OPENAI_MODEL"       envDefault:"gpt-4o-mini"`
	MaxTokens  int    `env:"OPENAI_MAX_TOKENS"  envDefault:"300"`
}
