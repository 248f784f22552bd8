package momentfmt

import "sync"

// FallbackResolver resolves fallback culture chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver holds explicit fallback chains keyed by culture name
type StaticFallbackResolver struct {
	mu     sync.RWMutex
	chains map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{chains: make(map[string][]string)}
}

// Set replaces the chain for locale. Names are normalized and deduplicated.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	key := normalizeLocale(locale)
	if key == "" {
		return
	}

	chain := make([]string, 0, len(fallbacks))
	for _, fallback := range normalizeLocales(fallbacks) {
		if fallback == key {
			continue
		}
		chain = append(chain, fallback)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.chains == nil {
		s.chains = make(map[string][]string)
	}
	s.chains[key] = chain
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.chains[normalizeLocale(locale)]
	if !ok || len(chain) == 0 {
		return nil
	}
	out := make([]string, len(chain))
	copy(out, chain)
	return out
}
