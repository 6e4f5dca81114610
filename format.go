package lingo

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format carries locale-specific rendering rules for numbers, currency
// and calendar values. The engine swaps the active Format on every
// locale switch; it is immutable and safe for concurrent use.
type Format struct {
	tag            language.Tag
	currencySymbol string
	currencyAfter  bool
	dateLayout     string
	timeLayout     string
	dateTimeLayout string
}

// formatSpec is the per-language configuration FormatFor draws from.
type formatSpec struct {
	currencySymbol string
	currencyAfter  bool
	dateLayout     string
	timeLayout     string
}

var formatSpecs = map[string]formatSpec{
	"en": {currencySymbol: "$", dateLayout: "01/02/2006", timeLayout: "3:04 PM"},
	"de": {currencySymbol: "€", currencyAfter: true, dateLayout: "02.01.2006", timeLayout: "15:04"},
	"fr": {currencySymbol: "€", currencyAfter: true, dateLayout: "02/01/2006", timeLayout: "15:04"},
	"es": {currencySymbol: "€", currencyAfter: true, dateLayout: "02/01/2006", timeLayout: "15:04"},
	"it": {currencySymbol: "€", currencyAfter: true, dateLayout: "02/01/2006", timeLayout: "15:04"},
	"pt": {currencySymbol: "R$", dateLayout: "02/01/2006", timeLayout: "15:04"},
	"pl": {currencySymbol: "zł", currencyAfter: true, dateLayout: "02.01.2006", timeLayout: "15:04"},
	"ru": {currencySymbol: "₽", currencyAfter: true, dateLayout: "02.01.2006", timeLayout: "15:04"},
	"ja": {currencySymbol: "¥", dateLayout: "2006/01/02", timeLayout: "15:04"},
	"zh": {currencySymbol: "¥", dateLayout: "2006-01-02", timeLayout: "15:04"},
	"ko": {currencySymbol: "₩", dateLayout: "2006.01.02", timeLayout: "15:04"},
	"ar": {currencySymbol: "SAR", currencyAfter: true, dateLayout: "02/01/2006", timeLayout: "3:04 PM"},
}

// FormatFor returns the Format for a locale. Unknown languages fall back
// to the en-US conventions; number grouping always follows the locale's
// CLDR data via x/text.
func FormatFor(locale string) *Format {
	spec, ok := formatSpecs[baseLocale(locale)]
	if !ok {
		spec = formatSpecs["en"]
	}

	return &Format{
		tag:            language.Make(locale),
		currencySymbol: spec.currencySymbol,
		currencyAfter:  spec.currencyAfter,
		dateLayout:     spec.dateLayout,
		timeLayout:     spec.timeLayout,
		dateTimeLayout: spec.dateLayout + " " + spec.timeLayout,
	}
}

// Number formats n with locale-aware grouping and decimal separators.
func (f *Format) Number(n float64) string {
	return message.NewPrinter(f.tag).Sprint(number.Decimal(n))
}

// Currency formats an amount with two fraction digits and the locale's
// currency symbol placement.
func (f *Format) Currency(amount float64) string {
	p := message.NewPrinter(f.tag)
	num := p.Sprint(number.Decimal(amount, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	if f.currencyAfter {
		return num + " " + f.currencySymbol
	}
	return f.currencySymbol + num
}

// Percent formats a decimal fraction (0.5 for 50%) as a percentage.
func (f *Format) Percent(n float64) string {
	return message.NewPrinter(f.tag).Sprint(number.Percent(n))
}

// Date formats t with the locale's date layout.
func (f *Format) Date(t time.Time) string {
	return t.Format(f.dateLayout)
}

// Time formats t with the locale's time layout.
func (f *Format) Time(t time.Time) string {
	return t.Format(f.timeLayout)
}

// DateTime formats t with the locale's combined layout.
func (f *Format) DateTime(t time.Time) string {
	return t.Format(f.dateTimeLayout)
}
