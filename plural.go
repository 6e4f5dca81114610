package lingo

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PluralRule determines which plural form to use for a given count,
// following Unicode CLDR category names.
type PluralRule func(n int) string

// Plural category constants as defined by Unicode CLDR.
const (
	PluralZero  = "zero"
	PluralOne   = "one"
	PluralTwo   = "two"
	PluralFew   = "few"
	PluralMany  = "many"
	PluralOther = "other"
)

// englishPluralRule covers English and similarly simple languages:
// zero (0), one (1), other.
var englishPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// germanicPluralRule: one (1), other (everything else including 0).
var germanicPluralRule PluralRule = func(n int) string {
	if n == 1 || n == -1 {
		return PluralOne
	}
	return PluralOther
}

// romancePluralRule: one (0, 1), many (1,000,000+), other.
var romancePluralRule PluralRule = func(n int) string {
	if n == 0 || n == 1 || n == -1 {
		return PluralOne
	}
	if abs(n) >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// slavicPluralRule: zero, one, few (2-4 except 12-14), many.
var slavicPluralRule PluralRule = func(n int) string {
	if n == 0 {
		return PluralZero
	}
	if n == 1 || n == -1 {
		return PluralOne
	}
	mod10 := abs(n) % 10
	mod100 := abs(n) % 100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// asianPluralRule: languages without grammatical plural.
var asianPluralRule PluralRule = func(_ int) string {
	return PluralOther
}

// arabicPluralRule: the full zero/one/two/few/many/other set.
var arabicPluralRule PluralRule = func(n int) string {
	switch {
	case n == 0:
		return PluralZero
	case n == 1 || n == -1:
		return PluralOne
	case n == 2 || n == -2:
		return PluralTwo
	}
	mod100 := abs(n) % 100
	switch {
	case mod100 >= 3 && mod100 <= 10:
		return PluralFew
	case mod100 >= 11:
		return PluralMany
	default:
		return PluralOther
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// pluralRuleForLocale selects a plural rule by the two-letter base of a
// locale code. Unknown languages get the Germanic one/other rule.
func pluralRuleForLocale(locale string) PluralRule {
	if len(locale) >= 2 {
		locale = strings.ToLower(locale[:2])
	}

	switch locale {
	case "en":
		return englishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return slavicPluralRule
	case "fr", "it", "pt":
		return romancePluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return asianPluralRule
	case "ar":
		return arabicPluralRule
	default:
		return germanicPluralRule
	}
}

// pluralFallbackForms lists the forms to try when a record does not carry
// the selected one. Records are only required to have one and other, so
// every chain ends at other.
func pluralFallbackForms(form string) []string {
	switch form {
	case PluralTwo:
		return []string{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []string{PluralMany, PluralOther}
	case PluralOther:
		return nil
	default:
		return []string{PluralOther}
	}
}

// pluralRecord reports whether a resolved leaf is a pluralization record.
// A record must carry string one and other members; zero (and any further
// CLDR form) is optional. This relaxation is deliberate: records authored
// without a zero variant still pluralize through the other form.
func pluralRecord(v any) (map[string]string, bool) {
	rec := make(map[string]string)

	switch m := v.(type) {
	case map[string]string:
		for k, s := range m {
			rec[k] = s
		}
	case map[string]any:
		for k, raw := range m {
			s, ok := raw.(string)
			if !ok {
				return nil, false
			}
			rec[k] = s
		}
	default:
		return nil, false
	}

	if _, ok := rec[PluralOne]; !ok {
		return nil, false
	}
	if _, ok := rec[PluralOther]; !ok {
		return nil, false
	}

	return rec, true
}

// selectPluralForm picks the template from a record for a count,
// degrading through the fallback chain down to other.
func selectPluralForm(rec map[string]string, rule PluralRule, n int) string {
	form := rule(n)
	if s, ok := rec[form]; ok {
		return s
	}
	for _, fb := range pluralFallbackForms(form) {
		if s, ok := rec[fb]; ok {
			return s
		}
	}
	return rec[PluralOther]
}

// formatCount renders a count with locale-aware digit grouping, for the
// countStr interpolation parameter.
func formatCount(locale string, count any) string {
	p := message.NewPrinter(language.Make(locale))
	switch n := count.(type) {
	case float64:
		return p.Sprint(number.Decimal(n))
	case float32:
		return p.Sprint(number.Decimal(n))
	default:
		return p.Sprint(number.Decimal(count))
	}
}

// asCount extracts a numeric count from a parameter value. JSON-decoded
// params carry float64, static fragments usually int.
func asCount(v any) (int, any, bool) {
	switch n := v.(type) {
	case int:
		return n, n, true
	case int8:
		return int(n), n, true
	case int16:
		return int(n), n, true
	case int32:
		return int(n), n, true
	case int64:
		return int(n), n, true
	case uint:
		return int(n), n, true
	case uint8:
		return int(n), n, true
	case uint16:
		return int(n), n, true
	case uint32:
		return int(n), n, true
	case uint64:
		return int(n), n, true
	case float32:
		return int(n), n, true
	case float64:
		return int(n), n, true
	default:
		return 0, nil, false
	}
}
