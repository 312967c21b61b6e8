package embedding

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"

	"book-analysis/internal/config"
	"book-analysis/internal/tokenizer"

	"github.com/philippgille/chromem-go"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
)

// ErrNoTokens is returned when text has no words to embed.
var ErrNoTokens = errors.New("text has no words to embed")

// New returns the embedding function selected by cfg.
func New(cfg *config.SimilarityConfig) (chromem.EmbeddingFunc, error) {
	switch cfg.Provider {
	case "", config.ProviderHashing:
		return NewHashingEmbedder(cfg.Dimensions), nil
	case config.ProviderOllama:
		embedder, err := NewOllamaEmbedder(&cfg.EmbedLLM)
		if err != nil {
			return nil, err
		}
		return FromEmbedder(embedder), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Provider)
	}
}

// NewHashingEmbedder embeds text as a bag of cleaned words hashed into
// dimensions buckets. The result is L2-normalized. It needs no model.
func NewHashingEmbedder(dimensions int) chromem.EmbeddingFunc {
	if dimensions <= 0 {
		dimensions = config.DefaultDimensions
	}
	return func(_ context.Context, text string) ([]float32, error) {
		words := tokenizer.QuoteTokens(text)
		if len(words) == 0 {
			return nil, ErrNoTokens
		}

		vec := make([]float32, dimensions)
		h := fnv.New32a()
		for _, w := range words {
			h.Reset()
			h.Write([]byte(w))
			vec[h.Sum32()%uint32(dimensions)]++
		}

		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] = float32(float64(vec[i]) / norm)
		}
		return vec, nil
	}
}

// new ollama embedder
func NewOllamaEmbedder(llmConfig *config.LLMConfig) (*embeddings.EmbedderImpl, error) {
	log.Debug().Interface("config", map[string]string{
		"base_url":        llmConfig.BaseURL,
		"embedding_model": llmConfig.Model,
	}).Msg("Loaded embedder config")

	llm, err := ollama.New(
		ollama.WithServerURL(llmConfig.BaseURL),
		ollama.WithModel(llmConfig.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing ollama: %w", err)
	}
	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}
	return embedder, nil
}

// FromEmbedder adapts a langchaingo embedder to chromem.
func FromEmbedder(e embeddings.Embedder) chromem.EmbeddingFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return e.EmbedQuery(ctx, text)
	}
}
