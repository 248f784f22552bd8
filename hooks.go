package momentfmt

// ConversionHook observes conversions. BeforeConvert may rewrite Pattern,
// Culture or Mode; AfterConvert may rewrite Result or Error.
type ConversionHook interface {
	BeforeConvert(ctx *ConversionContext)
	AfterConvert(ctx *ConversionContext)
}

type ConversionContext struct {
	Pattern  string
	Culture  string
	Mode     Mode
	Result   string
	Error    error
	Metadata map[string]any
}

func (ctx *ConversionContext) ensureMetadata() {
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
}

func (ctx *ConversionContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	ctx.ensureMetadata()
	ctx.Metadata[key] = value
}

func (ctx *ConversionContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type ConversionHookFuncs struct {
	Before func(ctx *ConversionContext)
	After  func(ctx *ConversionContext)
}

func (h ConversionHookFuncs) BeforeConvert(ctx *ConversionContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h ConversionHookFuncs) AfterConvert(ctx *ConversionContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

func filterHooks(hooks []ConversionHook) []ConversionHook {
	var filtered []ConversionHook
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}
	return filtered
}
