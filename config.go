package ashare

import "fmt"

// Supported quote providers.
const (
	ProviderSina    = "sina"
	ProviderNetease = "netease"
)

// Config holds the persisted settings: the static token forwarded to the
// quote gateway, and which gateway to use. The whole document is rewritten
// on every change; there is no versioning.
type Config struct {
	APIKey   string `json:"apiKey"`
	Provider string `json:"provider,omitempty"`
}

// DefaultConfig is the record substituted when config.json does not exist
// yet: an empty key and the sina gateway.
func DefaultConfig() Config { return Config{Provider: ProviderSina} }

// ValidateProvider checks a provider name. The empty string is valid and
// means "the default".
func ValidateProvider(p string) error {
	switch p {
	case "", ProviderSina, ProviderNetease:
		return nil
	}
	return fmt.Errorf("unknown provider %q (want %q or %q)", p, ProviderSina, ProviderNetease)
}
