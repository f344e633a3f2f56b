package charset

import (
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// LanguageConfig is the per-language section of a charset configuration
// file.
type LanguageConfig struct {
	// ExtraWordChars lists characters added to the word class for this
	// language.
	ExtraWordChars string `toml:"extra_word_chars"`
}

// Config is the on-disk charset configuration.
//
//	[languages.lisp]
//	extra_word_chars = "-*"
//
//	[languages.css]
//	extra_word_chars = "-"
type Config struct {
	Languages map[string]LanguageConfig `toml:"languages"`
}

// Registry resolves charsets per language ID. Unconfigured languages fall
// back to the base charset. Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	base  *Charset
	langs map[string]*Charset
}

// NewRegistry creates a registry over the given base charset.
// A nil base uses Default().
func NewRegistry(base *Charset) *Registry {
	if base == nil {
		base = Default()
	}
	return &Registry{
		base:  base,
		langs: make(map[string]*Charset),
	}
}

// Base returns the fallback charset.
func (r *Registry) Base() *Charset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.base
}

// For returns the charset for the given language ID, falling back to the
// base charset when the language has no configuration.
func (r *Registry) For(lang string) *Charset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if cs, ok := r.langs[lang]; ok {
		return cs
	}
	return r.base
}

// Set installs a charset for a language ID.
func (r *Registry) Set(lang string, cs *Charset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.langs[lang] = cs
}

// Apply replaces the per-language charsets from a parsed configuration.
func (r *Registry) Apply(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	langs := make(map[string]*Charset, len(cfg.Languages))
	for lang, lc := range cfg.Languages {
		langs[lang] = r.base.WithExtraWordChars(lc.ExtraWordChars)
	}
	r.langs = langs
}

// Load parses TOML configuration data and applies it.
func (r *Registry) Load(data []byte) error {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing charset config: %w", err)
	}
	r.Apply(cfg)
	return nil
}

// LoadFile reads and applies a TOML configuration file. A missing file is
// not an error: the registry keeps its current charsets.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading charset config %s: %w", path, err)
	}
	return r.Load(data)
}
