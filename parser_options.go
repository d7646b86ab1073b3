/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package kanjidic

// WarnFunc observes recoverable per-token conditions (unrecognized tokens,
// malformed Morohashi references). line is 1-based within the parsed input,
// 0 when a single line is parsed on its own.
type WarnFunc func(line int, kanji string, err error)

// ParserOption is an interface for functional options that can be passed to the NewParser constructor.
type ParserOption interface {
	apply(*parserOptions)
}

type parserOptions struct {
	strictTokens bool
	warnFunc     WarnFunc
}

type strictTokensParserOption bool

func (o strictTokensParserOption) apply(opts *parserOptions) {
	opts.strictTokens = bool(o)
}

// WithStrictTokens allows specifying whether an unrecognized token fails the
// parse instead of being skipped.
func WithStrictTokens(b bool) ParserOption {
	return strictTokensParserOption(b)
}

type warnFuncParserOption WarnFunc

func (o warnFuncParserOption) apply(opts *parserOptions) {
	opts.warnFunc = WarnFunc(o)
}

// WithWarnFunc allows specifying a callback that observes skipped tokens and
// unset fields during a lenient parse.
func WithWarnFunc(f WarnFunc) ParserOption {
	return warnFuncParserOption(f)
}

func makeParserOptions(opts ...ParserOption) parserOptions {
	var options parserOptions
	for _, opt := range opts {
		opt.apply(&options)
	}
	return options
}
