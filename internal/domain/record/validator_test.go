package record

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		data     Data
		required []string
		expected []string
	}{
		{
			name:     "valid",
			data:     Data{FieldName: "Widget", FieldDescription: "desc"},
			required: []string{FieldName, FieldDescription},
			expected: nil,
		},
		{
			name:     "missing both in order",
			data:     Data{},
			required: []string{FieldName, FieldDescription},
			expected: []string{"Missing required field: name", "Missing required field: description"},
		},
		{
			name:     "empty string counts as missing",
			data:     Data{FieldName: "", FieldDescription: "desc"},
			required: []string{FieldName, FieldDescription},
			expected: []string{"Missing required field: name"},
		},
		{
			name:     "long name without required fields",
			data:     Data{FieldName: strings.Repeat("a", 256)},
			required: nil,
			expected: []string{MsgNameTooLong},
		},
		{
			name:     "name at the limit",
			data:     Data{FieldName: strings.Repeat("a", 255)},
			expected: nil,
		},
		{
			name:     "length measured in characters",
			data:     Data{FieldName: strings.Repeat("я", 255)},
			expected: nil,
		},
		{
			name:     "length check comes last",
			data:     Data{FieldName: strings.Repeat("a", 300)},
			required: []string{FieldDescription},
			expected: []string{"Missing required field: description", MsgNameTooLong},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.data, tt.required))
		})
	}
}

func TestIsMissingField(t *testing.T) {
	assert.True(t, IsMissingField("Missing required field: name"))
	assert.False(t, IsMissingField(MsgNameTooLong))
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "<p>Hello</p>", want: "Hello"},
		{in: "<b>bold</b> <i>and</i> italic", want: "bold and italic"},
		{in: "<!-- note -->text", want: "text"},
		{in: "a < b", want: "a < b"},
		{in: "Tom &amp; Jerry", want: "Tom &amp; Jerry"},
		{in: "<<b>i>x", want: "x"},
		{in: `<a href="http://example.com">link</a>`, want: "link"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.in))
		})
	}
}

func TestSanitize(t *testing.T) {
	t.Run("name stripped and trimmed, description trimmed only", func(t *testing.T) {
		got := Sanitize(Data{
			FieldName:        "  <b>Widget</b>\t",
			FieldDescription: "  <em>kept</em>  ",
		})

		assert.Equal(t, Data{FieldName: "Widget", FieldDescription: "<em>kept</em>"}, got)
	})

	t.Run("absent fields stay absent", func(t *testing.T) {
		got := Sanitize(Data{FieldDescription: " d "})

		_, hasName := got[FieldName]
		assert.False(t, hasName)
		assert.Equal(t, "d", got[FieldDescription])
	})

	t.Run("unknown fields are dropped", func(t *testing.T) {
		got := Sanitize(Data{"extra": "x", FieldName: "n"})

		assert.Equal(t, Data{FieldName: "n"}, got)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := Data{FieldName: " <i>x</i> "}
		_ = Sanitize(in)

		assert.Equal(t, " <i>x</i> ", in[FieldName])
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []Data{
			{FieldName: "  <p> spaced </p>  ", FieldDescription: "\n desc \n"},
			{FieldName: "<<b>i>nested<</b>/i>", FieldDescription: "<b>x</b>"},
			{FieldName: " < b > ", FieldDescription: ""},
			{FieldName: "<script>alert(1)</script> hi"},
		}
		for _, in := range inputs {
			once := Sanitize(in)
			assert.Equal(t, once, Sanitize(once), "input %q", in)
		}
	})
}
