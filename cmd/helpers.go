package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omarselim0/shopmate/internal/catalog"
	"github.com/omarselim0/shopmate/internal/config"
	"github.com/omarselim0/shopmate/internal/db"
	"github.com/omarselim0/shopmate/internal/docchat"
	"github.com/omarselim0/shopmate/internal/embeddings"
	"github.com/omarselim0/shopmate/internal/llm"
	"github.com/omarselim0/shopmate/internal/pdf"
	"github.com/omarselim0/shopmate/internal/textsplit"
	"github.com/omarselim0/shopmate/internal/vectordb"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `shopmate init` to create a config file", err)
	}
	return cfg, nil
}

// createLLMProviderFromConfig creates a rate-limited LLM provider from config.
func createLLMProviderFromConfig(cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, err
	}
	return llm.NewRateLimitedProvider(provider, cfg.RequestsPerMinute), nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = cfg.Provider
	}
	model := cfg.EmbeddingModel
	if model == "" {
		_, model = config.DefaultModelFor(provider)
	}

	switch provider {
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, embeddings.OpenAIModel(model)), nil
	case config.ProviderGoogle:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderGoogle))
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required for Google embeddings")
		}
		return embeddings.NewGoogleEmbedder(apiKey, embeddings.GoogleModel(model)), nil
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(model, 768, ""), nil
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", provider)
	}
}

// openDatabase opens the sqlite database under the data dir.
func openDatabase(cfg *config.Config) (*db.DB, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return db.Open(filepath.Join(cfg.DataDir, "shopmate.db"))
}

// loadCatalog reads the support reference tables named by the config.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	return catalog.Load(cfg.Support.OrdersCSV, cfg.Support.ProductsCSV, cfg.Support.FAQCSV)
}

// vectorStoreDir is where the doc-chat engine persists its vector store.
func vectorStoreDir(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, "vectordb")
}

// createDocChatEngine builds the doc-chat engine and loads any persisted
// vector store from the data dir.
func createDocChatEngine(ctx context.Context, cfg *config.Config, database *db.DB) (*docchat.Engine, error) {
	provider, err := createLLMProviderFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	embedder, err := createEmbedderFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	store, err := vectordb.NewChromemStore(embedder)
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	engine := docchat.NewEngine(provider, store, database,
		textsplit.New(cfg.Chunk.Size, cfg.Chunk.Overlap), cfg.RetrievalLimit)

	if err := engine.Load(ctx, vectorStoreDir(cfg)); err != nil && verbose {
		fmt.Fprintf(os.Stderr, "no persisted vector store loaded: %v\n", err)
	}
	return engine, nil
}

// extractPDFText reads a PDF and returns its full text.
func extractPDFText(ctx context.Context, path string) (string, error) {
	doc, err := pdf.Extract(ctx, path)
	if err != nil {
		return "", fmt.Errorf("extracting %s: %w", path, err)
	}
	return doc.Text(), nil
}
