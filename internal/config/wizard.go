package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. The caller is responsible for saving it.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to shopmate! Let's configure your assistant.")
	fmt.Println()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"google", "openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)
	model, embeddingModel := DefaultModelFor(provider)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory (vector index, chat history, bookmarks)",
		Default: ".shopmate",
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Support reference tables.
	ordersPrompt := promptui.Prompt{
		Label:   "Orders CSV path",
		Default: "data/orders.csv",
	}
	ordersCSV, err := ordersPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("orders csv: %w", err)
	}

	productsPrompt := promptui.Prompt{
		Label:   "Products CSV path",
		Default: "data/products.csv",
	}
	productsCSV, err := productsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("products csv: %w", err)
	}

	faqPrompt := promptui.Prompt{
		Label:   "FAQ CSV path",
		Default: "data/faqs.csv",
	}
	faqCSV, err := faqPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("faq csv: %w", err)
	}

	// 4. Document include patterns.
	includePrompt := promptui.Prompt{
		Label:   "Document include patterns (comma-separated globs)",
		Default: "**/*.pdf",
	}
	includeStr, err := includePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("include patterns: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Provider = provider
	cfg.Model = model
	cfg.EmbeddingProvider = embeddingProviderFor(provider)
	cfg.EmbeddingModel = embeddingModel
	cfg.DataDir = dataDir
	cfg.Support = SupportConfig{
		OrdersCSV:   ordersCSV,
		ProductsCSV: productsCSV,
		FAQCSV:      faqCSV,
	}
	cfg.Include = splitAndTrim(includeStr)

	// Check for API key.
	envVar := APIKeyEnvVar(provider)
	if envVar != "" && os.Getenv(envVar) == "" {
		fmt.Printf("\nNote: Set %s in your environment before running shopmate.\n", envVar)
	}

	return cfg, nil
}

// embeddingProviderFor returns the default embedding provider for a given
// LLM provider. Ollama embeds locally; everything else uses its own API.
func embeddingProviderFor(p ProviderType) ProviderType {
	return p
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
