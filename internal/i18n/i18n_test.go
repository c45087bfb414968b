// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestI18n(t *testing.T) *I18n {
	t.Helper()
	i := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  "en",
	}
	require.NoError(t, i.LoadTranslations("./locales"))
	return i
}

func TestTranslationsLoadForBothLocales(t *testing.T) {
	i := newTestI18n(t)

	assert.NotEmpty(t, i.translations["en"])
	assert.NotEmpty(t, i.translations["ar"])

	// Every English key must have an Arabic counterpart
	for key := range i.translations["en"] {
		_, ok := i.translations["ar"][key]
		assert.True(t, ok, "missing Arabic translation for %q", key)
	}
}

func TestTranslate(t *testing.T) {
	i := newTestI18n(t)

	en := i.T("en", KeyCategoryNotFound)
	ar := i.T("ar", KeyCategoryNotFound)

	assert.NotEqual(t, KeyCategoryNotFound, en)
	assert.NotEqual(t, KeyCategoryNotFound, ar)
	assert.NotEqual(t, en, ar)
}

func TestTranslateFallsBackToEnglish(t *testing.T) {
	i := newTestI18n(t)

	assert.Equal(t, i.T("en", KeyOrderUpdated), i.T("de", KeyOrderUpdated))
}

func TestTranslateUnknownKeyReturnsKey(t *testing.T) {
	i := newTestI18n(t)

	assert.Equal(t, "no.such.key", i.T("en", "no.such.key"))
}
