package output

import (
	"bytes"
	"strings"
	"testing"

	"vocabwidget/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrintYAML(t *testing.T) {
	var buf bytes.Buffer

	err := PrintYAML(&buf, domain.DefaultWindowState())
	require.NoError(t, err)

	assert.Greater(t, strings.Count(buf.String(), "\n"), 1)
	assert.Contains(t, buf.String(), "alwaysOnTop: true")

	var decoded domain.WindowState
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, domain.DefaultWindowState(), decoded)
}

func TestPrintJSON_DoesNotEscapeHTML(t *testing.T) {
	var buf bytes.Buffer

	err := PrintJSON(&buf, map[string]string{"meaning": "a <b> & c"})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"a <b> & c"`)
}

func TestPrint(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		contains string
		wantErr  bool
	}{
		{name: "yaml", format: FormatYAML, contains: "word: apple"},
		{name: "json", format: FormatJSON, contains: `"word": "apple"`},
		{name: "unknown", format: Format("xml"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			v := map[string]string{"word": "apple"}

			err := Print(&buf, tt.format, v)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.contains)
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{input: "yaml", expected: FormatYAML},
		{input: "json", expected: FormatJSON},
		{input: "", expected: FormatYAML},
		{input: "agent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}
