package pathtoregexp

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/exp/utf8string"
)

func TestScanGroup(t *testing.T) {
	tests := []struct {
		input string
		open  int
		end   int
		err   error
	}{
		{"(a)", 0, 3, nil},
		{"/(a)b", 1, 4, nil},
		{"((a)(b))", 0, 8, nil},
		{"((a)(b))", 1, 4, nil},
		{`(a\)b)`, 0, 6, nil},
		{`(a\(b)`, 0, 6, nil},
		{`(\\)`, 0, 4, nil},
		{"()", 0, 2, nil},
		{"(é)", 0, 3, nil},
		{"(a", 0, 0, ErrUnterminatedGroup},
		{"((a)", 0, 0, ErrUnterminatedGroup},
		{`(a\)`, 0, 0, ErrUnterminatedGroup},
		{`(a\`, 0, 0, ErrDanglingEscape},
	}

	for _, tt := range tests {
		end, err := scanGroup(utf8string.NewString(tt.input), tt.open)
		if !errors.Is(err, tt.err) {
			t.Errorf("scanGroup(%q, %d): want error %v; got %v", tt.input, tt.open, tt.err, err)

			continue
		}

		if end != tt.end {
			t.Errorf("scanGroup(%q, %d) = %d; want %d", tt.input, tt.open, end, tt.end)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		input  string
		tokens []token
	}{
		{
			"",
			[]token{{tokenEnd, 0, ""}},
		},
		{
			"/:id(\\d+)?",
			[]token{
				{tokenChar, 0, "/"},
				{tokenName, 1, "id"},
				{tokenRegexp, 4, `\d+`},
				{tokenOtherModifier, 9, "?"},
				{tokenEnd, 10, ""},
			},
		},
		{
			"/é/*+",
			[]token{
				{tokenChar, 0, "/"},
				{tokenChar, 1, "é"},
				{tokenChar, 2, "/"},
				{tokenAsterisk, 3, "*"},
				{tokenOtherModifier, 4, "+"},
				{tokenEnd, 5, ""},
			},
		},
		{
			`a\:b)`,
			[]token{
				{tokenChar, 0, "a"},
				{tokenEscapedChar, 1, ":"},
				{tokenChar, 3, "b"},
				{tokenChar, 4, ")"},
				{tokenEnd, 5, ""},
			},
		},
	}

	for _, tt := range tests {
		got, err := tokenize(utf8string.NewString(tt.input))
		if err != nil {
			t.Errorf("tokenize(%q): unexpected error %s", tt.input, err)

			continue
		}

		if !reflect.DeepEqual(tt.tokens, got) {
			t.Errorf("tokenize(%q) = %#v; want %#v", tt.input, got, tt.tokens)
		}
	}
}

func TestGenerateSegmentWildcardRegexp(t *testing.T) {
	tests := map[string]string{
		"/":  "[^/]+?",
		".":  "[^.]+?",
		"-":  `[^\-]+?`,
		"^]": `[^\^\]]+?`,
	}

	for delimiter, want := range tests {
		if got := generateSegmentWildcardRegexp(Options{Delimiter: delimiter}); got != want {
			t.Errorf("generateSegmentWildcardRegexp(%q) = %q; want %q", delimiter, got, want)
		}
	}
}
