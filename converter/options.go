package converter

// options.go — per-column option grammar.
//
// A column may start with an option prefix such as "th:ac:w100px: ". The
// tokens between the colons are normalised here into a ColumnOptions record.
// The grammar never rejects input: unknown or malformed tokens are no-ops.

import (
	"strconv"
	"strings"
)

// Cell tag names.
const (
	tagData   = "td"
	tagHeader = "th"
)

// Alignment is a horizontal text alignment. The zero value means unset.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignRight  Alignment = "right"
	AlignCenter Alignment = "center"
)

// ColumnOptions is the normalised option record for one cell.
// Nil pointer fields were not requested.
type ColumnOptions struct {
	Tag     string
	Align   Alignment
	Width   *string
	RowSpan *int
	ColSpan *int
}

func defaultOptions() ColumnOptions {
	return ColumnOptions{Tag: tagData}
}

var alignCodes = map[byte]Alignment{
	'c': AlignCenter,
	'r': AlignRight,
	'l': AlignLeft,
}

// optionRule applies one token family. second is the required second
// character, or 0 when the rule decides for itself.
type optionRule struct {
	lead   byte
	second byte
	apply  func(o *ColumnOptions, tok string)
}

var optionRules = []optionRule{
	{lead: 'a', apply: func(o *ColumnOptions, tok string) {
		if len(tok) < 2 {
			return
		}
		if a, ok := alignCodes[tok[1]]; ok {
			o.Align = a
		}
	}},
	{lead: 'w', apply: func(o *ColumnOptions, tok string) {
		w := tok[1:]
		o.Width = &w
	}},
	{lead: 'r', second: 's', apply: func(o *ColumnOptions, tok string) {
		n := leadingInt(tok[2:])
		o.RowSpan = &n
	}},
	{lead: 'c', second: 's', apply: func(o *ColumnOptions, tok string) {
		n := leadingInt(tok[2:])
		o.ColSpan = &n
	}},
	{lead: 't', second: 'h', apply: func(o *ColumnOptions, _ string) {
		o.Tag = tagHeader
	}},
}

func (r optionRule) matches(tok string) bool {
	if tok[0] != r.lead {
		return false
	}
	if r.second == 0 {
		return true
	}
	return len(tok) >= 2 && tok[1] == r.second
}

// ParseOptions folds option tokens left to right into a ColumnOptions.
// Tokens are case-insensitive; for each field the last token wins.
func ParseOptions(tokens []string) ColumnOptions {
	opts := defaultOptions()
	for _, tok := range tokens {
		tok = strings.ToLower(tok)
		if tok == "" {
			continue
		}
		for _, rule := range optionRules {
			if rule.matches(tok) {
				rule.apply(&opts, tok)
				break
			}
		}
	}
	return opts
}

// leadingInt reads an optionally signed decimal prefix of s, after leading
// whitespace. Anything unparsable is 0; overflow saturates.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	// On ErrRange ParseInt returns the saturated value, which is what we want.
	n, _ := strconv.ParseInt(s[:end], 10, 0)
	return int(n)
}
