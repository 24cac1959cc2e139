package views

import (
	"strings"

	"rhystmorgan/contactform/internal/models"
)

// Role describes what kind of element a render node is
type Role string

const (
	RoleHeading Role = "heading"
	RoleTextbox Role = "textbox"
	RoleButton  Role = "button"
	RoleAlert   Role = "alert"
	RoleStatus  Role = "status"
	RoleText    Role = "text"
)

// Test identifiers of the elements queried by tests and headless callers
const (
	TestIDError            = "error"
	TestIDFeedback         = "feedback"
	TestIDFirstNameDisplay = "firstnameDisplay"
	TestIDLastNameDisplay  = "lastnameDisplay"
	TestIDEmailDisplay     = "emailDisplay"
	TestIDMessageDisplay   = "messageDisplay"
)

var displayTestIDs = map[models.Field]string{
	models.FieldFirstName: TestIDFirstNameDisplay,
	models.FieldLastName:  TestIDLastNameDisplay,
	models.FieldEmail:     TestIDEmailDisplay,
	models.FieldMessage:   TestIDMessageDisplay,
}

// Element is one node of the rendered form
type Element struct {
	Role    Role
	TestID  string
	Label   string
	Text    string
	Field   models.Field
	Focused bool
}

// Screen is the semantic render tree of the form. View draws it; tests and
// the headless CLI query it.
type Screen struct {
	Elements []Element
}

func (s Screen) ByTestID(id string) []Element {
	return s.filter(func(e Element) bool { return e.TestID == id })
}

func (s Screen) ByRole(role Role) []Element {
	return s.filter(func(e Element) bool { return e.Role == role })
}

// ByText returns elements whose text equals text exactly
func (s Screen) ByText(text string) []Element {
	return s.filter(func(e Element) bool { return e.Text == text })
}

// ByLabel finds the input whose label contains label, ignoring case
func (s Screen) ByLabel(label string) (Element, bool) {
	label = strings.ToLower(label)
	for _, e := range s.Elements {
		if e.Role == RoleTextbox && strings.Contains(strings.ToLower(e.Label), label) {
			return e, true
		}
	}
	return Element{}, false
}

// ContainsText reports whether any element's text contains text
func (s Screen) ContainsText(text string) bool {
	for _, e := range s.Elements {
		if strings.Contains(e.Text, text) {
			return true
		}
	}
	return false
}

func (s Screen) filter(keep func(Element) bool) []Element {
	var out []Element
	for _, e := range s.Elements {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
