package intl

import (
	"context"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type contextKey int

const (
	localizerKey contextKey = iota
	localeKey
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

var SupportedLanguages = []SupportedLanguage{
	{
		Code:        "en",
		VerboseName: "English",
		Tag:         language.English,
	},
	{
		Code:        "es",
		VerboseName: "Español",
		Tag:         language.Spanish,
	},
}

// Tags returns the language tags of every supported language.
func Tags() []language.Tag {
	tags := make([]language.Tag, len(SupportedLanguages))
	for i, lang := range SupportedLanguages {
		tags[i] = lang.Tag
	}
	return tags
}

func WithLocalizer(ctx context.Context, localizer *i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey, localizer)
}

func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	localizer, ok := ctx.Value(localizerKey).(*i18n.Localizer)
	return localizer, ok
}

func WithLocale(ctx context.Context, locale language.Tag) context.Context {
	return context.WithValue(ctx, localeKey, locale)
}

func UseLocale(ctx context.Context, fallback language.Tag) language.Tag {
	locale, ok := ctx.Value(localeKey).(language.Tag)
	if !ok {
		return fallback
	}
	return locale
}

// MustT translates a message id, panicking when no localizer is attached to
// the context. Returns the id itself when the message is missing so untagged
// keys stay visible in the UI rather than vanishing.
func MustT(ctx context.Context, msgID string) string {
	localizer, ok := UseLocalizer(ctx)
	if !ok {
		panic("localizer not found in context")
	}
	translated, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil {
		return msgID
	}
	return translated
}

// T is the non-panicking variant of MustT: without a localizer the message id
// is returned unchanged.
func T(ctx context.Context, msgID string) string {
	if _, ok := UseLocalizer(ctx); !ok {
		return msgID
	}
	return MustT(ctx, msgID)
}
