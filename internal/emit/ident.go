package emit

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rustKeywords lists strict and reserved Rust keywords. None of them can be
// used as a plain identifier.
var rustKeywords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true, "crate": true,
	"else": true, "enum": true, "extern": true, "false": true, "fn": true,
	"for": true, "if": true, "impl": true, "in": true, "let": true,
	"loop": true, "match": true, "mod": true, "move": true, "mut": true,
	"pub": true, "ref": true, "return": true, "self": true, "Self": true,
	"static": true, "struct": true, "super": true, "trait": true, "true": true,
	"type": true, "unsafe": true, "use": true, "where": true, "while": true,
	"async": true, "await": true, "dyn": true, "abstract": true,
	"become": true, "box": true, "do": true, "final": true, "macro": true,
	"override": true, "priv": true, "typeof": true, "unsized": true,
	"virtual": true, "yield": true, "try": true, "gen": true,
}

// ValidateIdentifier returns ErrInvalidIdentifier unless name matches
// [A-Za-z_][A-Za-z0-9_]*, is not a lone underscore and is not a keyword.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidIdentifier)
	}
	if name == "_" {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	if rustKeywords[name] {
		return fmt.Errorf("%w: %q is a keyword", ErrInvalidIdentifier, name)
	}
	for i, c := range name {
		switch {
		case c == '_', isASCIILetter(c):
		case i > 0 && c >= '0' && c <= '9':
		default:
			return fmt.Errorf("%w: %q has %q at offset %d", ErrInvalidIdentifier, name, c, i)
		}
	}
	return nil
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// TypeNameFromPath derives an UpperCamelCase type name from the base name
// of path, e.g. "maps/boomerang_australia.rs" gives "BoomerangAustralia".
// Characters that cannot appear in an identifier separate words and are
// dropped. The result is checked with ValidateIdentifier.
func TypeNameFromPath(path string) (string, error) {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	words := strings.FieldsFunc(base, func(r rune) bool {
		return !(r < unicode.MaxASCII && (isASCIILetter(r) || unicode.IsDigit(r)))
	})

	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}

	name := b.String()
	if name != "" && name[0] >= '0' && name[0] <= '9' {
		name = "Map" + name
	}
	if err := ValidateIdentifier(name); err != nil {
		return "", fmt.Errorf("emit: type name from %q: %w", path, err)
	}
	return name, nil
}
