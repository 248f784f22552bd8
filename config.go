package momentfmt

import "fmt"

// Config captures converter and culture setup
type Config struct {
	DefaultCulture string
	Mode           Mode
	Cultures       []Culture
	Resolver       FallbackResolver
	Hooks          []ConversionHook

	cultureFiles     []string
	cultureOverrides map[string]string
	cultureData      *CultureData
	registry         *CultureRegistry
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Culture files are loaded and
// the culture registry is built eagerly, so an unknown default culture or an
// unreadable file fails here.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyCultureData(); err != nil {
		return nil, err
	}

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	registry, err := NewCultureRegistry(
		WithCultureRegistryResolver(cfg.Resolver),
		WithCultureRegistryCultures(cfg.registryCultures()...),
		WithCultureRegistryDefault(cfg.DefaultCulture),
	)
	if err != nil {
		return nil, err
	}
	cfg.registry = registry

	return cfg, nil
}

// WithDefaultCulture sets the culture used when a conversion names none
func WithDefaultCulture(name string) Option {
	return func(c *Config) error {
		c.DefaultCulture = name
		return nil
	}
}

// WithDefaultMode sets the mode used when a conversion names none
func WithDefaultMode(mode Mode) Option {
	return func(c *Config) error {
		if mode != Tolerant && mode != Strict {
			return fmt.Errorf("momentfmt: invalid mode %d", int(mode))
		}
		c.Mode = mode
		return nil
	}
}

// WithCultures registers cultures; fields left empty are taken from the
// built-in culture of the same code, if any.
func WithCultures(cultures ...Culture) Option {
	return func(c *Config) error {
		c.Cultures = append(c.Cultures, cultures...)
		return nil
	}
}

// WithCultureFiles loads culture data documents (json, yaml or toml).
func WithCultureFiles(paths ...string) Option {
	return func(c *Config) error {
		c.cultureFiles = append(c.cultureFiles, paths...)
		c.cultureData = nil
		return nil
	}
}

// WithCultureOverride adds a single-culture override file
func WithCultureOverride(culture, path string) Option {
	return func(c *Config) error {
		if culture == "" || path == "" {
			return fmt.Errorf("momentfmt: culture override requires a culture and a path")
		}
		if c.cultureOverrides == nil {
			c.cultureOverrides = make(map[string]string)
		}
		c.cultureOverrides[culture] = path
		c.cultureData = nil
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(culture string, fallbacks ...string) Option {
	return func(c *Config) error {
		if culture == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(culture, fallbacks...)
		return nil
	}
}

func WithConversionHooks(hooks ...ConversionHook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, filterHooks(hooks)...)
		return nil
	}
}

// BuildConverter returns a converter over the configured registry.
func (cfg *Config) BuildConverter() (*Converter, error) {
	if cfg == nil {
		return NewConverter()
	}

	return NewConverter(
		WithConverterRegistry(cfg.registry),
		WithConverterCulture(cfg.DefaultCulture),
		WithConverterMode(cfg.Mode),
		WithConverterHooks(cfg.Hooks...),
	)
}

func (cfg *Config) CultureRegistry() *CultureRegistry {
	if cfg == nil {
		return nil
	}
	return cfg.registry
}

// TemplateHelpers builds a converter and returns its template helpers.
func (cfg *Config) TemplateHelpers(helperCfg HelperConfig) (map[string]any, error) {
	conv, err := cfg.BuildConverter()
	if err != nil {
		return nil, err
	}
	return TemplateHelpers(conv, helperCfg), nil
}

func (cfg *Config) applyCultureData() error {
	if len(cfg.cultureFiles) == 0 && len(cfg.cultureOverrides) == 0 {
		return nil
	}

	data, err := cfg.loadCultureData()
	if err != nil {
		return err
	}

	if cfg.DefaultCulture == "" && data.DefaultCulture != "" {
		cfg.DefaultCulture = data.DefaultCulture
	}

	if len(data.Fallbacks) == 0 {
		return nil
	}

	resolver, ok := cfg.Resolver.(*StaticFallbackResolver)
	if !ok {
		if cfg.Resolver != nil {
			return nil
		}
		resolver = NewStaticFallbackResolver()
		cfg.Resolver = resolver
	}
	for _, culture := range sortedKeys(data.Fallbacks) {
		if chain := resolver.Resolve(culture); len(chain) > 0 {
			continue
		}
		resolver.Set(culture, data.Fallbacks[culture]...)
	}
	return nil
}

func (cfg *Config) loadCultureData() (*CultureData, error) {
	if cfg.cultureData != nil {
		return cfg.cultureData, nil
	}

	loader := NewCultureDataLoader(cfg.cultureFiles...)
	for culture, path := range cfg.cultureOverrides {
		loader.AddOverride(culture, path)
	}
	data, err := loader.Load()
	if err != nil {
		return nil, err
	}
	cfg.cultureData = data
	return data, nil
}

// registryCultures lists option cultures followed by file cultures, each
// overlaid on the built-in culture of the same code.
func (cfg *Config) registryCultures() []Culture {
	overlay := make(map[string]Culture)
	var order []string

	add := func(culture Culture) {
		key := cultureKey(culture.Code)
		culture.Code = key
		base, seen := overlay[key]
		if !seen {
			base = builtinCultures[key]
			order = append(order, key)
		}
		overlay[key] = mergeCulture(base, culture)
	}

	for _, culture := range cfg.Cultures {
		add(culture)
	}
	if cfg.cultureData != nil {
		for _, key := range sortedKeys(cfg.cultureData.Cultures) {
			add(cfg.cultureData.Cultures[key])
		}
	}

	cultures := make([]Culture, 0, len(order))
	for _, key := range order {
		cultures = append(cultures, overlay[key])
	}
	return cultures
}
