package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	ProviderOllama ProviderType = "ollama"
)

// SupportConfig holds paths to the reference tables consumed by the
// order and FAQ responder.
type SupportConfig struct {
	OrdersCSV   string `yaml:"orders_csv" koanf:"orders_csv"`
	ProductsCSV string `yaml:"products_csv" koanf:"products_csv"`
	FAQCSV      string `yaml:"faq_csv" koanf:"faq_csv"`
}

// ChunkConfig controls document splitting before embedding.
type ChunkConfig struct {
	Size    int `yaml:"size" koanf:"size"`
	Overlap int `yaml:"overlap" koanf:"overlap"`
}

// Config is the top-level shopmate configuration, corresponding to .shopmate.yml.
type Config struct {
	Provider          ProviderType  `yaml:"provider" koanf:"provider"`
	Model             string        `yaml:"model" koanf:"model"`
	EmbeddingProvider ProviderType  `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string        `yaml:"embedding_model" koanf:"embedding_model"`
	DataDir           string        `yaml:"data_dir" koanf:"data_dir"`
	Port              int           `yaml:"port" koanf:"port"`
	Support           SupportConfig `yaml:"support" koanf:"support"`
	Chunk             ChunkConfig   `yaml:"chunk" koanf:"chunk"`
	RetrievalLimit    int           `yaml:"retrieval_limit" koanf:"retrieval_limit"`
	WordLimit         int           `yaml:"word_limit" koanf:"word_limit"`
	Include           []string      `yaml:"include" koanf:"include"`
	Exclude           []string      `yaml:"exclude" koanf:"exclude"`
	RequestsPerMinute int           `yaml:"requests_per_minute" koanf:"requests_per_minute"`
}
