package translations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZhCN(t *testing.T) {
	table, err := ZhCN()
	require.NoError(t, err)

	require.Equal(t, "zh_CN", table.Language)
	require.Equal(t, "nplurals=1; plural=0;", table.PluralForms)
	require.Equal(t, "# Dash to Workspaces - Simplified Chinese\n# Copyright (C) 2026\n#\n", table.Header)
	require.Len(t, table.Plurals, 2)
	require.Equal(t, "Dash to Workspaces has been updated!", table.Messages[0].ID)

	again, err := ZhCN()
	require.NoError(t, err)
	require.Same(t, table, again)
}

func TestLookup(t *testing.T) {
	table, err := ZhCN()
	require.NoError(t, err)

	tests := []struct {
		id          string
		translation string
		found       bool
	}{
		{id: "Top Bar", translation: "顶栏", found: true},
		{id: "Monitor ", translation: "显示器 ", found: true},
		{id: "%d %%", translation: "%d %%", found: true},
		{id: "%d icon", translation: "%d 个图标", found: true},
		{id: "Quit %d Window", translation: "退出 %d 个窗口", found: true},
		{id: "Quit", found: false},
		{id: "Monitor", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			translation, found := table.Lookup(tt.id)

			require.Equal(t, tt.found, found)
			require.Equal(t, tt.translation, translation)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{
			name: "valid",
			data: `
language = "de_DE"
plural-forms = "nplurals=2; plural=(n != 1);"

[[message]]
id = "Left"
translation = "Links"

[[plural]]
id = "%d icon"
id-plural = "%d icons"
translation = "%d Symbole"
`,
		},
		{
			name: "duplicate across sections",
			data: `
language = "zh_CN"
plural-forms = "nplurals=1; plural=0;"

[[message]]
id = "%d icon"
translation = "%d 个图标"

[[plural]]
id = "%d icon"
id-plural = "%d icons"
translation = "%d 个图标"
`,
			err: ErrDuplicateID,
		},
		{
			name: "empty translation",
			data: `
language = "zh_CN"
plural-forms = "nplurals=1; plural=0;"

[[message]]
id = "Left"
translation = ""
`,
			err: ErrEmptyTranslation,
		},
		{
			name: "empty ID",
			data: `
language = "zh_CN"
plural-forms = "nplurals=1; plural=0;"

[[message]]
translation = "左"
`,
			err: ErrEmptyID,
		},
		{
			name: "invalid language",
			data: `
language = "not a language"
plural-forms = "nplurals=1; plural=0;"
`,
			err: ErrInvalidLanguage,
		},
		{
			name: "missing language",
			data: `plural-forms = "nplurals=1; plural=0;"`,
			err:  ErrInvalidLanguage,
		},
		{
			name: "missing plural forms",
			data: `language = "zh_CN"`,
			err:  ErrEmptyPluralForms,
		},
		{
			name: "plural without plural ID",
			data: `
language = "zh_CN"
plural-forms = "nplurals=1; plural=0;"

[[plural]]
id = "%d icon"
translation = "%d 个图标"
`,
			err: ErrMissingPluralForm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Parse([]byte(tt.data))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Nil(t, table)

				return
			}

			require.NoError(t, err)
			require.Equal(t, 2, table.Len())
		})
	}
}

func TestParseRejectsMalformedTOML(t *testing.T) {
	_, err := Parse([]byte(`language = `))
	require.Error(t, err)
}
