package record

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/html"
)

const (
	MaxNameLen = 255

	missingFieldPrefix = "Missing required field: "
	MsgNameTooLong     = "Name field cannot exceed 255 characters"
)

var (
	validate = validator.New()
	nameRule = "max=" + strconv.Itoa(MaxNameLen)
)

// Validate checks data against the required fields and the name length
// limit. Messages come in required-field order, the length check last.
// An empty result means data is valid.
func Validate(data Data, requiredFields []string) []string {
	var violations []string

	for _, field := range requiredFields {
		if err := validate.Var(data[field], "required"); err != nil {
			violations = append(violations, missingFieldPrefix+field)
		}
	}

	if name, ok := data[FieldName]; ok && name != "" {
		if err := validate.Var(name, nameRule); err != nil {
			violations = append(violations, MsgNameTooLong)
		}
	}

	return violations
}

// IsMissingField reports whether a Validate message is a missing-field one.
func IsMissingField(violation string) bool {
	return strings.HasPrefix(violation, missingFieldPrefix)
}

// Sanitize returns a new Data holding only name and description: name with
// markup stripped and whitespace trimmed, description trimmed. Absent
// fields stay absent.
func Sanitize(data Data) Data {
	sanitized := Data{}

	if name, ok := data[FieldName]; ok {
		sanitized[FieldName] = strings.TrimSpace(StripTags(name))
	}

	if description, ok := data[FieldDescription]; ok {
		sanitized[FieldDescription] = strings.TrimSpace(description)
	}

	return sanitized
}

// StripTags removes tags, comments and doctypes from s and keeps the text
// between them byte for byte. Removing a tag can glue fragments into a new
// one ("<<b>i>"), so passes repeat until nothing changes.
func StripTags(s string) string {
	for {
		stripped := stripOnce(s)
		if stripped == s {
			return stripped
		}
		s = stripped
	}
}

func stripOnce(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	z := html.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	b.Grow(len(s))

	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF; strings.Reader has no other failure mode
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		}
	}
}
