package momentfmt

import (
	"fmt"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/language"
)

// CultureRegistry resolves culture names to complete Culture snapshots.
type CultureRegistry struct {
	mu          sync.RWMutex
	cultures    map[string]Culture
	resolver    FallbackResolver
	defaultName string
	cache       map[string]Culture

	matcher     language.Matcher
	matcherKeys []string
}

type cultureRegistryConfig struct {
	resolver    FallbackResolver
	cultures    []Culture
	defaultName string
}

type CultureRegistryOption func(*cultureRegistryConfig)

func WithCultureRegistryResolver(resolver FallbackResolver) CultureRegistryOption {
	return func(crc *cultureRegistryConfig) {
		crc.resolver = resolver
	}
}

// WithCultureRegistryCultures registers cultures on top of the built-in set.
func WithCultureRegistryCultures(cultures ...Culture) CultureRegistryOption {
	return func(crc *cultureRegistryConfig) {
		crc.cultures = append(crc.cultures, cultures...)
	}
}

// WithCultureRegistryDefault sets the culture used for empty names.
func WithCultureRegistryDefault(name string) CultureRegistryOption {
	return func(crc *cultureRegistryConfig) {
		crc.defaultName = name
	}
}

// NewCultureRegistry seeds a registry with the built-in cultures. The default
// culture must resolve, otherwise an error wrapping ErrUnknownCulture is
// returned.
func NewCultureRegistry(opts ...CultureRegistryOption) (*CultureRegistry, error) {
	cfg := cultureRegistryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	registry := &CultureRegistry{
		cultures: make(map[string]Culture, len(builtinCultures)+len(cfg.cultures)),
		resolver: cfg.resolver,
	}
	for key, culture := range builtinCultures {
		registry.cultures[key] = culture
	}
	for _, culture := range cfg.cultures {
		if err := registry.Register(culture); err != nil {
			return nil, err
		}
	}

	registry.defaultName = cultureKey(cfg.defaultName)
	if _, err := registry.Culture(""); err != nil {
		return nil, fmt.Errorf("default culture: %w", err)
	}
	return registry, nil
}

// Register adds or replaces a culture. Missing fields are inherited at
// resolution time.
func (r *CultureRegistry) Register(culture Culture) error {
	key := cultureKey(culture.Code)
	if strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("momentfmt: invalid culture code %q", culture.Code)
	}
	culture.Code = key
	culture.Parent = cultureKey(culture.Parent)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cultures == nil {
		r.cultures = make(map[string]Culture)
	}
	r.cultures[key] = culture
	r.invalidateLocked()
	return nil
}

// Culture resolves name to a complete culture. An empty name selects the
// default culture and "invariant" selects the invariant culture.
func (r *CultureRegistry) Culture(name string) (Culture, error) {
	if r == nil {
		return Invariant(), nil
	}

	key := r.requestKey(name)

	r.mu.RLock()
	if cached, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached, nil
	}

	culture, ok := r.resolveLocked(key)
	if !ok {
		return Culture{}, r.unknownLocked(name)
	}
	culture = r.completeLocked(culture)

	if r.cache == nil {
		r.cache = make(map[string]Culture)
	}
	r.cache[key] = culture
	return culture, nil
}

// Has reports whether name is registered exactly, without fallbacks.
func (r *CultureRegistry) Has(name string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cultures[cultureKey(name)]
	return ok
}

// Names returns the registered culture codes, sorted. The invariant culture
// is not listed.
func (r *CultureRegistry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := sortedKeys(r.cultures)
	if len(names) > 0 && names[0] == invariantCode {
		names = names[1:]
	}
	return names
}

// DefaultCulture returns the code of the culture used for empty names.
func (r *CultureRegistry) DefaultCulture() string {
	if r == nil {
		return invariantCode
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultName
}

func (r *CultureRegistry) requestKey(name string) string {
	if strings.TrimSpace(name) == "" {
		r.mu.RLock()
		defer r.mu.RUnlock()
		return r.defaultName
	}
	return cultureKey(name)
}

func (r *CultureRegistry) resolveLocked(key string) (Culture, bool) {
	if culture, ok := r.cultures[key]; ok {
		return culture, true
	}

	for _, candidate := range r.candidateLocked(key) {
		if culture, ok := r.cultures[candidate]; ok {
			return culture, true
		}
	}

	tag, err := language.Parse(key)
	if err != nil {
		return Culture{}, false
	}
	r.ensureMatcherLocked()
	if r.matcher == nil {
		return Culture{}, false
	}
	_, index, conf := r.matcher.Match(tag)
	if conf < language.High || index < 0 || index >= len(r.matcherKeys) {
		return Culture{}, false
	}
	culture, ok := r.cultures[r.matcherKeys[index]]
	return culture, ok
}

// candidateLocked lists fallbacks for key: resolver chain first, then the
// language parent chain.
func (r *CultureRegistry) candidateLocked(key string) []string {
	var chain []string
	if r.resolver != nil {
		for _, fallback := range r.resolver.Resolve(key) {
			chain = appendUnique(chain, cultureKey(fallback))
		}
	}
	for _, parent := range localeParentChain(key) {
		chain = appendUnique(chain, parent)
	}
	return chain
}

// completeLocked fills missing fields from the explicit parent, the fallback
// chain and finally the built-in invariant culture.
func (r *CultureRegistry) completeLocked(culture Culture) Culture {
	if culture.complete() {
		return culture
	}

	seen := map[string]struct{}{culture.Code: {}}
	chain := appendUnique(nil, culture.Parent)
	for _, candidate := range r.candidateLocked(culture.Code) {
		chain = appendUnique(chain, candidate)
	}
	if culture.Code != invariantCode {
		chain = append(chain, invariantCode)
	}

	for _, key := range chain {
		if culture.complete() {
			return culture
		}
		if _, visited := seen[key]; visited {
			continue
		}
		seen[key] = struct{}{}
		if parent, ok := r.cultures[key]; ok {
			culture = culture.inherit(parent)
		}
	}

	if !culture.complete() {
		culture = culture.inherit(builtinCultures[invariantCode])
	}
	return culture
}

func (r *CultureRegistry) ensureMatcherLocked() {
	if r.matcher != nil {
		return
	}

	tags := make([]language.Tag, 0, len(r.cultures))
	keys := make([]string, 0, len(r.cultures))
	for _, key := range sortedKeys(r.cultures) {
		if key == invariantCode {
			continue
		}
		tag, err := language.Parse(key)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		keys = append(keys, key)
	}
	if len(tags) == 0 {
		return
	}
	r.matcher = language.NewMatcher(tags)
	r.matcherKeys = keys
}

func (r *CultureRegistry) unknownLocked(name string) error {
	key := strings.ToLower(cultureKey(name))
	best, bestDistance := "", 3
	for _, candidate := range sortedKeys(r.cultures) {
		if candidate == invariantCode {
			continue
		}
		if distance := levenshtein.ComputeDistance(key, strings.ToLower(candidate)); distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	if best != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCulture, name, best)
	}
	return fmt.Errorf("%w %q", ErrUnknownCulture, name)
}

func (r *CultureRegistry) invalidateLocked() {
	r.cache = nil
	r.matcher = nil
	r.matcherKeys = nil
}

// cultureKey maps a culture name to its registry key. The invariant culture
// is keyed by the empty string.
func cultureKey(name string) string {
	key := normalizeLocale(name)
	if key == invariantAlias {
		return invariantCode
	}
	return key
}

func appendUnique(chain []string, value string) []string {
	if value == "" {
		return chain
	}
	for _, existing := range chain {
		if existing == value {
			return chain
		}
	}
	return append(chain, value)
}
