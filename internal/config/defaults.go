package config

// DefaultOutput returns the default output options.
func DefaultOutput() Output {
	return Output{
		Indent:  "  ",
		Tree:    false,
		NoColor: false,
	}
}

// DefaultParser returns the default parser limits.
func DefaultParser() Parser {
	return Parser{
		MaxDepth: 64,
	}
}

// DefaultWatch returns the default watch options.
func DefaultWatch() Watch {
	return Watch{
		DebounceMillis: 300,
	}
}
