package strings

import (
	"strings"
	"unicode"
)

// ToPascalCase converts kebab-case, snake_case, or space-separated names to
// PascalCase, suitable for a JSX component identifier.
// "my-home" -> "MyHome", "hero_banner" -> "HeroBanner".
func ToPascalCase(s string) string {
	var result strings.Builder
	upperNext := true

	for _, r := range s {
		if r == '-' || r == '_' || r == ' ' || r == '.' {
			upperNext = true
			continue
		}
		if upperNext {
			result.WriteRune(unicode.ToUpper(r))
			upperNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// ToKebabCase converts CamelCase to kebab-case, the npm package naming
// convention. Acronym runs stay together (HTTPClient -> http-client).
func ToKebabCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		switch {
		case r == '_' || r == ' ':
			result.WriteRune('-')
			continue
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				if unicode.IsLower(prev) || unicode.IsDigit(prev) {
					result.WriteRune('-')
				} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
					result.WriteRune('-')
				}
			}
			result.WriteRune(unicode.ToLower(r))
		default:
			result.WriteRune(r)
		}
	}
	return strings.Trim(result.String(), "-")
}
