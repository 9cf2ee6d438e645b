package translations

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var (
	ErrEmptyID           = errors.New("could not work with empty message ID")
	ErrDuplicateID       = errors.New("could not work with duplicate message ID")
	ErrEmptyTranslation  = errors.New("could not work with empty translation")
	ErrInvalidLanguage   = errors.New("could not parse language code")
	ErrEmptyPluralForms  = errors.New("could not work with empty plural forms expression")
	ErrMissingPluralForm = errors.New("could not work with plural message without plural ID")
)

//go:embed zh_CN.toml
var zhCN []byte

// Message is a singular entry: the first empty msgstr following its msgid
// gets Translation.
type Message struct {
	ID          string `toml:"id"`
	Translation string `toml:"translation"`
}

// PluralMessage is an entry with msgid_plural whose slots are collapsed into
// a single msgstr[0].
type PluralMessage struct {
	ID          string `toml:"id"`
	IDPlural    string `toml:"id-plural"`
	Translation string `toml:"translation"`
}

// Table is the fixed phrase table for one target language. Entries keep
// their file order.
type Table struct {
	Language    string          `toml:"language"`
	PluralForms string          `toml:"plural-forms"`
	Header      string          `toml:"header"`
	Messages    []Message       `toml:"message"`
	Plurals     []PluralMessage `toml:"plural"`
}

// Parse decodes and validates a TOML phrase table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

var loadZhCN = sync.OnceValues(func() (*Table, error) {
	return Parse(zhCN)
})

// ZhCN returns the embedded Simplified Chinese table.
func ZhCN() (*Table, error) {
	return loadZhCN()
}

func (t *Table) validate() error {
	if _, err := language.Parse(strings.ReplaceAll(t.Language, "_", "-")); err != nil || strings.TrimSpace(t.Language) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, t.Language)
	}

	if strings.TrimSpace(t.PluralForms) == "" {
		return ErrEmptyPluralForms
	}

	seen := map[string]struct{}{}
	check := func(id, translation string) error {
		if id == "" {
			return ErrEmptyID
		}

		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}

		if translation == "" {
			return fmt.Errorf("%w: %q", ErrEmptyTranslation, id)
		}

		return nil
	}

	for _, m := range t.Messages {
		if err := check(m.ID, m.Translation); err != nil {
			return err
		}
	}

	for _, p := range t.Plurals {
		if err := check(p.ID, p.Translation); err != nil {
			return err
		}

		if p.IDPlural == "" {
			return fmt.Errorf("%w: %q", ErrMissingPluralForm, p.ID)
		}
	}

	return nil
}

// Lookup returns the translation for a singular or plural message ID.
func (t *Table) Lookup(id string) (string, bool) {
	for _, m := range t.Messages {
		if m.ID == id {
			return m.Translation, true
		}
	}

	for _, p := range t.Plurals {
		if p.ID == id {
			return p.Translation, true
		}
	}

	return "", false
}

// Len returns the number of singular and plural entries.
func (t *Table) Len() int {
	return len(t.Messages) + len(t.Plurals)
}
