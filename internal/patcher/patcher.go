// Package patcher fills a gettext template with a fixed phrase table.
//
// Patch is pure: it takes the template text and returns the catalog text,
// so it can be tested without touching the filesystem or msgfmt.
package patcher

import (
	"regexp"
	"strings"

	"github.com/pojntfx/dash-to-workspaces-l10n/pkg/translations"
)

const (
	templateLanguage    = `"Language: \n"`
	templatePluralForms = `"Plural-Forms: nplurals=INTEGER; plural=EXPRESSION;\n"`
)

var (
	boilerplate = regexp.MustCompile(`(?s)# SOME DESCRIPTIVE TITLE\..*?#, fuzzy\n`)

	escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)
)

// Escape quotes s for use inside a PO string literal.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Patch returns template with its header set for table's language and every
// table entry filled into the first empty slot following its msgid.
func Patch(template string, table *translations.Table) string {
	content := patchHeader(template, table)

	for _, m := range table.Messages {
		content = fillMessage(content, m)
	}

	for _, p := range table.Plurals {
		content = collapsePlural(content, p)
	}

	return content
}

func patchHeader(content string, table *translations.Table) string {
	content = strings.Replace(content, templateLanguage, `"Language: `+table.Language+`\n"`, 1)
	content = strings.Replace(content, templatePluralForms, `"Plural-Forms: `+table.PluralForms+`\n"`, 1)

	if loc := boilerplate.FindStringIndex(content); loc != nil {
		content = content[:loc[0]] + table.Header + content[loc[1]:]
	}

	return content
}

func fillMessage(content string, m translations.Message) string {
	re := regexp.MustCompile(`(?m)^msgid "` + regexp.QuoteMeta(Escape(m.ID)) + `"\nmsgstr ""$`)

	return replaceFirst(content, re, `msgid "`+Escape(m.ID)+`"`+"\n"+`msgstr "`+Escape(m.Translation)+`"`)
}

// collapsePlural drops msgstr[1] since the target language has a single
// plural form.
func collapsePlural(content string, p translations.PluralMessage) string {
	re := regexp.MustCompile(
		`(?m)^msgid "` + regexp.QuoteMeta(Escape(p.ID)) + `"\n` +
			`msgid_plural "` + regexp.QuoteMeta(Escape(p.IDPlural)) + `"\n` +
			`msgstr\[0\] ""\nmsgstr\[1\] ""$`,
	)

	return replaceFirst(
		content,
		re,
		`msgid "`+Escape(p.ID)+`"`+"\n"+
			`msgid_plural "`+Escape(p.IDPlural)+`"`+"\n"+
			`msgstr[0] "`+Escape(p.Translation)+`"`,
	)
}

// replaceFirst substitutes replacement literally for the first match only.
func replaceFirst(content string, re *regexp.Regexp, replacement string) string {
	loc := re.FindStringIndex(content)
	if loc == nil {
		return content
	}

	return content[:loc[0]] + replacement + content[loc[1]:]
}
