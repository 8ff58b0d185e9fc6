package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"reviewflow/pkg/utils"

	"go.uber.org/zap"
)

// Fallback result returned whenever the model cannot produce one. Callers
// never see a classification failure.
const (
	FallbackLabel      = "neutral"
	FallbackConfidence = 0.5
)

type Result struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier turns free text into a sentiment label. Implementations must
// always return a usable result, never an error.
type Classifier interface {
	Classify(ctx context.Context, text string) Result
}

// ModelClassifier calls a remote text-classification inference endpoint
// serving the configured model.
type ModelClassifier struct {
	client *http.Client
	url    string
	model  string
	log    *zap.Logger
}

func NewModelClassifier(config utils.ModelConfig, log *zap.Logger) *ModelClassifier {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &ModelClassifier{
		client: &http.Client{Timeout: timeout},
		url:    config.URL,
		model:  config.Name,
		log:    log.With(zap.String("classifier", config.Name)),
	}
}

// Classify delegates to the model endpoint. On any failure it downgrades to
// the neutral fallback instead of surfacing an error.
func (c *ModelClassifier) Classify(ctx context.Context, text string) Result {
	result, err := c.invoke(ctx, text)
	if err != nil {
		c.log.Warn("Sentiment classification failed, using fallback",
			zap.Error(err),
			zap.Int("text_length", len(text)),
		)
		return Result{Label: FallbackLabel, Confidence: FallbackConfidence}
	}

	return result
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
	Model  string `json:"model,omitempty"`
}

type candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *ModelClassifier) invoke(ctx context.Context, text string) (Result, error) {
	if c.url == "" {
		return Result{}, fmt.Errorf("no model endpoint configured")
	}

	body, err := json.Marshal(inferenceRequest{Inputs: text, Model: c.model})
	if err != nil {
		return Result{}, fmt.Errorf("marshal inference request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("call inference endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
	}

	candidates, err := decodeCandidates(resp.Body)
	if err != nil {
		return Result{}, err
	}

	// Highest-scoring label wins
	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Score > best.Score {
			best = cand
		}
	}

	return Result{Label: best.Label, Confidence: best.Score}, nil
}

// decodeCandidates accepts both response shapes commonly served by
// text-classification pipelines: a flat candidate list or a list per input.
func decodeCandidates(r io.Reader) ([]candidate, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode inference response: %w", err)
	}

	var nested [][]candidate
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return nested[0], nil
	}

	var flat []candidate
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, fmt.Errorf("inference response has no candidates")
}
