// Package verify reads generated catalogs back with a gettext
// implementation and checks that they resolve the phrase table.
package verify

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/pojntfx/dash-to-workspaces-l10n/internal/patcher"
	"github.com/pojntfx/dash-to-workspaces-l10n/pkg/translations"
	"github.com/rs/zerolog/log"
)

// pluralProbe is a count that selects a non-singular form in most languages.
const pluralProbe = 5

// MismatchError lists the message IDs that did not resolve to their translation.
type MismatchError struct {
	Source string
	IDs    []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %v messages do not resolve to their translation: %q", e.Source, len(e.IDs), e.IDs)
}

// Contains reports whether template has a msgid line for id.
func Contains(template, id string) bool {
	return regexp.MustCompile(`(?m)^msgid "` + regexp.QuoteMeta(patcher.Escape(id)) + `"$`).MatchString(template)
}

// Po checks the text catalog data.
func Po(data []byte, template string, table *translations.Table) error {
	po := gotext.NewPo()
	po.Parse(data)

	return check("po", po, template, table)
}

// Mo checks the binary catalog at path.
func Mo(path string, template string, table *translations.Table) error {
	// gotext silently ignores unreadable files
	if _, err := os.Stat(path); err != nil {
		return err
	}

	mo := gotext.NewMo()
	mo.ParseFile(path)

	return check(path, mo, template, table)
}

type translator interface {
	Get(str string, vars ...interface{}) string
	GetN(str, plural string, n int, vars ...interface{}) string
}

func check(source string, t translator, template string, table *translations.Table) error {
	mismatched := []string{}
	checked := 0

	for _, m := range table.Messages {
		if !Contains(template, m.ID) {
			continue
		}
		checked++

		if got := t.Get(m.ID); got != m.Translation {
			log.Debug().
				Str("id", m.ID).
				Str("want", m.Translation).
				Str("got", got).
				Msg("Translation mismatch")

			mismatched = append(mismatched, m.ID)
		}
	}

	for _, p := range table.Plurals {
		if !Contains(template, p.ID) {
			continue
		}
		checked++

		for _, n := range []int{1, pluralProbe} {
			if got := t.GetN(p.ID, p.IDPlural, n); got != p.Translation {
				log.Debug().
					Str("id", p.ID).
					Int("n", n).
					Str("want", p.Translation).
					Str("got", got).
					Msg("Plural translation mismatch")

				mismatched = append(mismatched, p.ID)

				break
			}
		}
	}

	log.Debug().
		Str("source", source).
		Int("checked", checked).
		Int("mismatched", len(mismatched)).
		Msg("Verified catalog")

	if len(mismatched) > 0 {
		return &MismatchError{
			Source: source,
			IDs:    mismatched,
		}
	}

	return nil
}

// Header returns the value of a header field such as "Language" in catalog
// text, or "" when it is missing.
func Header(catalog, field string) string {
	prefix := `"` + field + `: `
	for _, line := range strings.Split(catalog, "\n") {
		if strings.HasPrefix(line, prefix) && strings.HasSuffix(line, `\n"`) {
			return strings.TrimSuffix(strings.TrimPrefix(line, prefix), `\n"`)
		}
	}

	return ""
}
