package middleware

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

type localeContextKey struct{}

// LocaleKey identifies the resolved locale in a request context.
var LocaleKey = localeContextKey{}

var supportedLocales = []language.Tag{
	language.English, // first entry is the matcher fallback
	language.Hindi,
	language.Marathi,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// Locale resolves the caller's language from X-Locale or Accept-Language and
// stores a base tag ("en", "hi", ...) in the request context. The copywriter
// uses it as a language hint for generated copy.
func Locale(defaultLocale string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := detectLocale(r, defaultLocale)
			ctx := context.WithValue(r.Context(), LocaleKey, locale)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFromContext returns the locale stored by the Locale middleware.
func LocaleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LocaleKey).(string); ok && v != "" {
		return v
	}
	return "en"
}

func detectLocale(r *http.Request, fallback string) string {
	if v := strings.TrimSpace(r.Header.Get("X-Locale")); v != "" {
		if tag, err := language.Parse(v); err == nil {
			if locale, ok := matchLocale(tag); ok {
				return locale
			}
		}
	}
	if v := strings.TrimSpace(r.Header.Get("Accept-Language")); v != "" {
		if tags, _, err := language.ParseAcceptLanguage(v); err == nil {
			for _, tag := range tags {
				if locale, ok := matchLocale(tag); ok {
					return locale
				}
			}
		}
	}
	if fallback != "" {
		return fallback
	}
	return "en"
}

func matchLocale(tag language.Tag) (string, bool) {
	matched, _, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	base, _ := matched.Base()
	return base.String(), true
}
