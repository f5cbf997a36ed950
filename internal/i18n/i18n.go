// Package i18n resolves the locale used for node status text and display
// names, and registers the translated messages with x/text/message.
package i18n

import (
	"context"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supported lists the locales with a full message set. The first entry is
// the default.
var supported = []language.Tag{
	language.SimplifiedChinese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// ParseTag matches a free-form locale string ("en-US", "zh", "zh_CN") against
// the supported locales. It reports false when value is blank, unparseable or
// matches nothing with reasonable confidence.
func ParseTag(value string) (language.Tag, bool) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
	if trimmed == "" {
		return Default(), false
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return Default(), false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default(), false
	}
	return supported[idx], true
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

type localeKey struct{}

// WithLocale returns a new context carrying tag.
func WithLocale(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, localeKey{}, tag)
}

// FromContext returns the locale stored in ctx, or Default.
func FromContext(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(localeKey{}).(language.Tag); ok {
		return tag
	}
	return Default()
}

// PrinterFromContext is shorthand for Printer(FromContext(ctx)).
func PrinterFromContext(ctx context.Context) *message.Printer {
	return Printer(FromContext(ctx))
}
