package momentfmt

import "sync"

// Converter translates patterns against cultures from a CultureRegistry. Its
// default culture stands in for the caller's current culture.
type Converter struct {
	registry *CultureRegistry
	culture  string
	mode     Mode
	hooks    []ConversionHook
}

type ConverterOption func(*Converter)

func WithConverterRegistry(registry *CultureRegistry) ConverterOption {
	return func(c *Converter) {
		c.registry = registry
	}
}

// WithConverterCulture sets the culture used when a call names none.
func WithConverterCulture(name string) ConverterOption {
	return func(c *Converter) {
		c.culture = name
	}
}

func WithConverterMode(mode Mode) ConverterOption {
	return func(c *Converter) {
		c.mode = mode
	}
}

func WithConverterHooks(hooks ...ConversionHook) ConverterOption {
	return func(c *Converter) {
		c.hooks = append(c.hooks, filterHooks(hooks)...)
	}
}

// NewConverter builds a converter. Without a registry the built-in cultures
// are used. The default culture must resolve.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	conv := &Converter{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(conv)
	}

	if conv.registry == nil {
		registry, err := NewCultureRegistry()
		if err != nil {
			return nil, err
		}
		conv.registry = registry
	}

	if _, err := conv.registry.Culture(conv.culture); err != nil {
		return nil, err
	}
	return conv, nil
}

type convertOptions struct {
	mode        Mode
	cultureName string
	locale      Locale
}

// ConvertOption adjusts a single Convert call
type ConvertOption func(*convertOptions)

func WithMode(mode Mode) ConvertOption {
	return func(o *convertOptions) {
		o.mode = mode
	}
}

// WithCultureName resolves the named culture through the registry. An empty
// name keeps the converter's culture.
func WithCultureName(name string) ConvertOption {
	return func(o *convertOptions) {
		if name != "" {
			o.cultureName = name
		}
	}
}

// WithLocale bypasses the registry and uses locale directly.
func WithLocale(locale Locale) ConvertOption {
	return func(o *convertOptions) {
		o.locale = locale
	}
}

// Convert translates pattern with the converter defaults adjusted by opts.
func (c *Converter) Convert(pattern string, opts ...ConvertOption) (string, error) {
	o := convertOptions{mode: c.mode, cultureName: c.culture}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	ctx := &ConversionContext{
		Pattern: pattern,
		Culture: o.cultureName,
		Mode:    o.mode,
	}
	if o.locale != nil {
		ctx.Culture = o.locale.Name()
	}

	for _, hook := range c.hooks {
		hook.BeforeConvert(ctx)
	}

	locale := o.locale
	var err error
	if locale == nil || ctx.Culture != locale.Name() {
		var culture Culture
		culture, err = c.registry.Culture(ctx.Culture)
		locale = culture
	}

	var result string
	if err == nil {
		ctx.Culture = locale.Name()
		result, err = Translate(ctx.Pattern, ctx.Mode, locale)
	}

	ctx.Result = result
	ctx.Error = err

	for _, hook := range c.hooks {
		hook.AfterConvert(ctx)
	}

	return ctx.Result, ctx.Error
}

// ConvertPtr is Convert for optional input. A nil pattern fails with
// ErrArgumentNull before any culture is resolved.
func (c *Converter) ConvertPtr(pattern *string, opts ...ConvertOption) (string, error) {
	if pattern == nil {
		return "", ErrArgumentNull
	}
	return c.Convert(*pattern, opts...)
}

// Culture resolves name through the converter's registry; an empty name
// returns the converter's default culture.
func (c *Converter) Culture(name string) (Culture, error) {
	if name == "" {
		name = c.culture
	}
	return c.registry.Culture(name)
}

func (c *Converter) Registry() *CultureRegistry {
	return c.registry
}

func (c *Converter) Mode() Mode {
	return c.mode
}

// WithHooks returns a copy of the converter that also runs hooks.
func (c *Converter) WithHooks(hooks ...ConversionHook) *Converter {
	clone := *c
	clone.hooks = append(append([]ConversionHook(nil), c.hooks...), filterHooks(hooks)...)
	return &clone
}

var defaultConverter = sync.OnceValues(func() (*Converter, error) {
	return NewConverter()
})

// Convert translates pattern with the built-in cultures. Without options the
// invariant culture and Tolerant mode apply.
func Convert(pattern string, opts ...ConvertOption) (string, error) {
	conv, err := defaultConverter()
	if err != nil {
		return "", err
	}
	return conv.Convert(pattern, opts...)
}
