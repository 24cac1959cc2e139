package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// Field identifies one input of the contact form
type Field int

const (
	FieldFirstName Field = iota
	FieldLastName
	FieldEmail
	FieldMessage
)

// Fields lists every form field in display order
var Fields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}

var fieldKeys = [...]string{"firstName", "lastName", "email", "message"}

var fieldLabels = [...]string{"First Name", "Last Name", "Email", "Message"}

// Key returns the field's name as used in validation messages
func (f Field) Key() string {
	if f < 0 || int(f) >= len(fieldKeys) {
		return "unknown"
	}
	return fieldKeys[f]
}

// Label returns the human readable label shown next to the input
func (f Field) Label() string {
	if f < 0 || int(f) >= len(fieldLabels) {
		return "Unknown"
	}
	return fieldLabels[f]
}

func (f Field) String() string {
	return f.Key()
}

// ParseField resolves a field from its key ("firstName") or label ("First Name")
func ParseField(name string) (Field, error) {
	name = strings.TrimSpace(name)
	for _, f := range Fields {
		if strings.EqualFold(name, f.Key()) || strings.EqualFold(name, f.Label()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown form field: %q", name)
}

// FormFields holds the current value of every input
type FormFields struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message,omitempty"`
}

// Get returns the value stored for field
func (f FormFields) Get(field Field) string {
	switch field {
	case FieldFirstName:
		return f.FirstName
	case FieldLastName:
		return f.LastName
	case FieldEmail:
		return f.Email
	case FieldMessage:
		return f.Message
	}
	return ""
}

// Set stores value for field. Values are NFC normalised so composed and
// decomposed input count the same number of characters.
func (f *FormFields) Set(field Field, value string) {
	value = norm.NFC.String(value)

	switch field {
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldEmail:
		f.Email = value
	case FieldMessage:
		f.Message = value
	}
}

// SubmissionSnapshot is the copy of the form captured by a valid submit
type SubmissionSnapshot struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewSubmissionSnapshot captures fields. The message is only kept when it is
// non-empty.
func NewSubmissionSnapshot(fields FormFields) *SubmissionSnapshot {
	snapshot := &SubmissionSnapshot{
		ID:          uuid.NewString(),
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Email:       fields.Email,
		SubmittedAt: time.Now(),
	}

	if fields.Message != "" {
		snapshot.Message = fields.Message
	}

	return snapshot
}

// HasMessage reports whether a message was part of the submission
func (s *SubmissionSnapshot) HasMessage() bool {
	return s != nil && s.Message != ""
}

// Fields returns the submitted values as form fields
func (s *SubmissionSnapshot) Fields() FormFields {
	if s == nil {
		return FormFields{}
	}
	return FormFields{
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Email:     s.Email,
		Message:   s.Message,
	}
}
