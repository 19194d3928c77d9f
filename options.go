package pathtoregexp

// DefaultDelimiter separates path segments when Options.Delimiter is empty.
const DefaultDelimiter = "/"

// Options configures Parse and Format. The zero value is ready to use.
type Options struct {
	// Delimiter separates path segments and is absorbed as the prefix of the
	// parameter following it. A multi-character delimiter is matched as a whole.
	Delimiter string

	// Encoding, if not nil, is applied to the text of every literal token.
	Encoding EncodingCallback
}

func (o Options) withDefaults() Options {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}

	return o
}
