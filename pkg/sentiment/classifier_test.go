package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewflow/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClassifier(url string) *ModelClassifier {
	return NewModelClassifier(utils.ModelConfig{
		Name:           "test-model",
		URL:            url,
		TimeoutSeconds: 1,
	}, zap.NewNop())
}

func TestClassifyPicksHighestScoringLabel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req inferenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Great movie!", req.Inputs)

		json.NewEncoder(w).Encode([][]candidate{{
			{Label: "NEGATIVE", Score: 0.02},
			{Label: "POSITIVE", Score: 0.98},
		}})
	}))
	defer srv.Close()

	result := newClassifier(srv.URL).Classify(context.Background(), "Great movie!")

	assert.Equal(t, "POSITIVE", result.Label)
	assert.InDelta(t, 0.98, result.Confidence, 1e-9)
}

func TestClassifyAcceptsFlatResponseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]candidate{{Label: "NEGATIVE", Score: 0.91}})
	}))
	defer srv.Close()

	result := newClassifier(srv.URL).Classify(context.Background(), "terrible")

	assert.Equal(t, "NEGATIVE", result.Label)
}

func TestClassifyFallsBackWhenEndpointUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	result := newClassifier(srv.URL).Classify(context.Background(), "anything")

	assert.Equal(t, FallbackLabel, result.Label)
	assert.Equal(t, FallbackConfidence, result.Confidence)
}

func TestClassifyFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := newClassifier(srv.URL).Classify(context.Background(), "anything")

	assert.Equal(t, FallbackLabel, result.Label)
}

func TestClassifyFallsBackOnMalformedOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	defer srv.Close()

	result := newClassifier(srv.URL).Classify(context.Background(), "anything")

	assert.Equal(t, FallbackLabel, result.Label)
	assert.Equal(t, FallbackConfidence, result.Confidence)
}

func TestClassifyFallsBackWithoutConfiguredEndpoint(t *testing.T) {
	result := newClassifier("").Classify(context.Background(), "anything")

	assert.Equal(t, FallbackLabel, result.Label)
}
