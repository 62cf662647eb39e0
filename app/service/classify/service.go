package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"relaxan/app/config"

	"github.com/samber/do"
	"github.com/samber/oops"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const maxClassifyDuration = 30 * time.Second

type Service struct {
	cfg *config.Config
	llm llms.Model
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)

	llm, err := openai.New(
		openai.WithToken(cfg.OpenAI.Token),
		openai.WithBaseURL(cfg.OpenAI.BaseURL),
		openai.WithModel(cfg.OpenAI.Model),
		openai.WithHTTPClient(&http.Client{
			Timeout: 30 * time.Second,
		}),
	)
	if err != nil {
		return nil, oops.Errorf("failed to create openai client: %w", err)
	}

	return &Service{
		cfg: cfg,
		llm: llm,
	}, nil
}

// Classify extracts a structured intent from the user message. A nil intent
// with a nil error means the model produced no tool call, i.e. it could not
// recognize the request.
func (s *Service) Classify(ctx context.Context, text string) (*Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, maxClassifyDuration)
	defer cancel()

	response, err := s.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeHuman, text),
		},
		llms.WithTools([]llms.Tool{getProductTool}),
		llms.WithTemperature(0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(response.Choices) == 0 {
		return nil, fmt.Errorf("no chat completion found")
	}

	toolCalls := response.Choices[0].ToolCalls
	if len(toolCalls) == 0 || toolCalls[0].FunctionCall == nil {
		return nil, nil
	}

	return parseIntent(toolCalls[0].FunctionCall.Arguments)
}

// parseIntent tolerates models that wrap tool arguments in markdown fences.
func parseIntent(arguments string) (*Intent, error) {
	arguments = strings.Trim(arguments, "`")
	arguments = strings.TrimSpace(arguments)
	arguments = strings.TrimPrefix(arguments, "json")
	arguments = strings.TrimSpace(arguments)

	var intent Intent
	if err := json.Unmarshal([]byte(arguments), &intent); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tool arguments: %w", err)
	}

	return &intent, nil
}
