package config

// defaultModels maps each provider to its default chat and embedding models.
var defaultModels = map[ProviderType]struct {
	Model          string
	EmbeddingModel string
}{
	ProviderOpenAI: {Model: "gpt-4o", EmbeddingModel: "text-embedding-3-small"},
	ProviderGoogle: {Model: "gemini-1.5-flash", EmbeddingModel: "gemini-embedding-001"},
	ProviderOllama: {Model: "llama3", EmbeddingModel: "nomic-embed-text"},
}

// DefaultExcludes are glob patterns skipped during document ingestion.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"*.tmp",
}

// DefaultConfig returns a Config with sensible defaults. The Google provider
// is the default because the hosted assistants were built against Gemini.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderGoogle,
		Model:             "gemini-1.5-flash",
		EmbeddingProvider: ProviderGoogle,
		EmbeddingModel:    "gemini-embedding-001",
		DataDir:           ".shopmate",
		Port:              8080,
		Support: SupportConfig{
			OrdersCSV:   "data/orders.csv",
			ProductsCSV: "data/products.csv",
			FAQCSV:      "data/faqs.csv",
		},
		Chunk: ChunkConfig{
			Size:    1000,
			Overlap: 200,
		},
		RetrievalLimit:    4,
		WordLimit:         800,
		Include:           []string{"**/*.pdf"},
		Exclude:           DefaultExcludes,
		RequestsPerMinute: 60,
	}
}

// DefaultModelFor returns the default chat and embedding models for a provider.
func DefaultModelFor(provider ProviderType) (model, embeddingModel string) {
	if m, ok := defaultModels[provider]; ok {
		return m.Model, m.EmbeddingModel
	}
	m := defaultModels[ProviderGoogle]
	return m.Model, m.EmbeddingModel
}
