package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/norm"

	"rhystmorgan/contactform/internal/config"
	"rhystmorgan/contactform/internal/logging"
	"rhystmorgan/contactform/internal/models"
	"rhystmorgan/contactform/internal/utils"
	"rhystmorgan/contactform/internal/validation"
)

// focusSubmit is the focus index of the submit button, after every field
var focusSubmit = len(models.Fields)

const feedbackDuration = 3 * time.Second

type ContactFormModel struct {
	title     string
	validator *validation.FormValidator
	logger    *logging.Logger
	styles    utils.FormStyles

	// Inputs for first name, last name and email, indexed by models.Field
	inputs  [3]textinput.Model
	message textarea.Model

	// Form state
	fields   models.FormFields
	errors     map[models.Field]validation.ValidationError
	lastResult validation.ValidationResult
	snapshot   *models.SubmissionSnapshot
	focus      int

	// UI state
	width           int
	height          int
	feedbackMessage *FeedbackMessage

	onSubmitted func(snapshot *models.SubmissionSnapshot) tea.Cmd
}

// FormSubmittedMsg is emitted after a valid submission
type FormSubmittedMsg struct {
	Snapshot *models.SubmissionSnapshot
}

// NewContactFormModel builds the form from cfg. A nil logger discards.
func NewContactFormModel(cfg *config.FormConfig, logger *logging.Logger) (*ContactFormModel, error) {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	v, err := validation.NewFormValidatorWithMinLength(cfg.FirstNameMinLength)
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}

	m := &ContactFormModel{
		title:     cfg.Title,
		validator: v,
		logger:    logger,
		styles:    utils.NewFormStyles(utils.Colours),
		errors:    make(map[models.Field]validation.ValidationError),
	}

	placeholders := [3]string{"Edd", "Burke", "bluebill1049@hotmail.com"}
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 100
		input.Prompt = ""
		input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
		m.inputs[i] = input
	}

	message := textarea.New()
	message.Placeholder = "Optional message"
	message.CharLimit = 1000
	message.ShowLineNumbers = false
	message.SetWidth(44)
	message.SetHeight(3)
	m.message = message

	m.setFocus(int(models.FieldFirstName))

	return m, nil
}

func (m *ContactFormModel) SetCallbacks(onSubmitted func(snapshot *models.SubmissionSnapshot) tea.Cmd) {
	m.onSubmitted = onSubmitted
}

func (m *ContactFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ContactFormModel) Update(msg tea.Msg) (*ContactFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FeedbackTimeoutMsg:
		if m.feedbackMessage != nil && m.feedbackMessage.ShowTime.Equal(msg.ShowTime) {
			m.feedbackMessage = nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.setFocus((m.focus + 1) % (focusSubmit + 1))
			return m, nil

		case "shift+tab":
			m.setFocus((m.focus + focusSubmit) % (focusSubmit + 1))
			return m, nil

		case "ctrl+s":
			return m, m.Submit()

		case "enter":
			if m.focus == focusSubmit {
				return m, m.Submit()
			}
			if models.Field(m.focus) != models.FieldMessage {
				m.setFocus(m.focus + 1)
				return m, nil
			}
		}
	}

	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused input and records any value
// change as a field change
func (m *ContactFormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if m.focus == focusSubmit {
		return nil
	}

	field := models.Field(m.focus)
	var cmd tea.Cmd
	var value string

	if field == models.FieldMessage {
		m.message, cmd = m.message.Update(msg)
		value = m.message.Value()
	} else {
		m.inputs[field], cmd = m.inputs[field].Update(msg)
		value = m.inputs[field].Value()
	}

	// Stored values are NFC, so cursor moves over decomposed text are not edits
	if norm.NFC.String(value) != m.fields.Get(field) {
		m.changeField(field, value)
	}

	return cmd
}

// SetField replaces a field's value as if the user had typed it and
// re-validates that field. The stored value is what the input accepted, so
// text past the input's character limit is dropped.
func (m *ContactFormModel) SetField(field models.Field, value string) {
	if field == models.FieldMessage {
		m.message.SetValue(value)
		value = m.message.Value()
	} else if field >= 0 && int(field) < len(m.inputs) {
		m.inputs[field].SetValue(value)
		value = m.inputs[field].Value()
	} else {
		return
	}

	m.changeField(field, value)
}

func (m *ContactFormModel) changeField(field models.Field, value string) {
	m.fields.Set(field, value)

	err := m.validator.ValidateField(field, m.fields.Get(field))
	if err != nil {
		m.errors[field] = *err
	} else {
		delete(m.errors, field)
	}

	m.logger.Debug("field validated", "field", field.Key(), "valid", err == nil)
}

// Submit validates every rule. Failing rules replace the error set and leave
// any earlier snapshot alone; a clean form captures a new snapshot.
func (m *ContactFormModel) Submit() tea.Cmd {
	result := m.validator.ValidateForm(m.fields)
	m.lastResult = result

	m.errors = make(map[models.Field]validation.ValidationError, len(result.Errors))
	for _, e := range result.Errors {
		m.errors[e.Field] = e
	}

	if !result.IsValid {
		m.logger.Info("submit rejected", "errors", len(result.Errors))
		return m.showFeedback(FeedbackError, "Please fix validation errors")
	}

	m.snapshot = models.NewSubmissionSnapshot(m.fields)
	m.logger.Info("submit accepted",
		"snapshot_id", m.snapshot.ID,
		"has_message", m.snapshot.HasMessage(),
	)

	cmds := []tea.Cmd{m.showFeedback(FeedbackSuccess, "Form submitted")}
	if m.onSubmitted != nil {
		cmds = append(cmds, m.onSubmitted(m.snapshot))
	}
	return tea.Batch(cmds...)
}

// LastResult returns the outcome of the most recent Submit. It is the zero
// result until the form has been submitted.
func (m *ContactFormModel) LastResult() validation.ValidationResult {
	return m.lastResult
}

// FocusField moves keyboard focus to field
func (m *ContactFormModel) FocusField(field models.Field) tea.Cmd {
	return m.setFocus(int(field))
}

// FocusSubmit moves keyboard focus to the submit button
func (m *ContactFormModel) FocusSubmit() {
	m.setFocus(focusSubmit)
}

func (m *ContactFormModel) setFocus(index int) tea.Cmd {
	if index < 0 || index > focusSubmit {
		return nil
	}
	m.focus = index

	var cmd tea.Cmd
	for i := range m.inputs {
		if i == index {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if index == int(models.FieldMessage) {
		cmd = m.message.Focus()
	} else {
		m.message.Blur()
	}
	return cmd
}

// Errors returns the current validation errors in field order
func (m *ContactFormModel) Errors() []validation.ValidationError {
	var errs []validation.ValidationError
	for _, field := range models.Fields {
		if e, ok := m.errors[field]; ok {
			errs = append(errs, e)
		}
	}
	return errs
}

func (m *ContactFormModel) Fields() models.FormFields {
	return m.fields
}

// Snapshot returns the most recent valid submission, or nil
func (m *ContactFormModel) Snapshot() *models.SubmissionSnapshot {
	return m.snapshot
}

func (m *ContactFormModel) showFeedback(feedbackType FeedbackType, message string) tea.Cmd {
	m.feedbackMessage = &FeedbackMessage{
		Type:     feedbackType,
		Message:  message,
		Duration: feedbackDuration,
		ShowTime: time.Now(),
	}
	return feedbackTimeout(m.feedbackMessage)
}

// Screen builds the render tree for the current state
func (m *ContactFormModel) Screen() Screen {
	var elements []Element

	elements = append(elements, Element{Role: RoleHeading, Text: m.title})

	for _, field := range models.Fields {
		elements = append(elements, Element{
			Role:    RoleTextbox,
			Label:   fieldLabel(field, m.validator.HasRule(field)),
			Text:    m.fields.Get(field),
			Field:   field,
			Focused: m.focus == int(field),
		})
		if e, ok := m.errors[field]; ok {
			elements = append(elements, Element{
				Role:   RoleAlert,
				TestID: TestIDError,
				Text:   e.Message,
				Field:  field,
			})
		}
	}

	elements = append(elements, Element{
		Role:    RoleButton,
		Text:    "Submit",
		Focused: m.focus == focusSubmit,
	})

	if m.feedbackMessage != nil {
		elements = append(elements, Element{
			Role:   RoleStatus,
			TestID: TestIDFeedback,
			Text:   m.feedbackMessage.Message,
		})
	}

	if m.snapshot != nil {
		submitted := m.snapshot.Fields()
		for _, field := range models.Fields {
			if field == models.FieldMessage && !m.snapshot.HasMessage() {
				continue
			}
			elements = append(elements, Element{
				Role:   RoleText,
				TestID: displayTestIDs[field],
				Label:  field.Label(),
				Text:   submitted.Get(field),
				Field:  field,
			})
		}
	}

	return Screen{Elements: elements}
}

func fieldLabel(field models.Field, required bool) string {
	if required {
		return field.Label() + "*"
	}
	return field.Label()
}

func (m *ContactFormModel) View() string {
	screen := m.Screen()

	var content strings.Builder
	var display []Element

	for _, e := range screen.Elements {
		switch e.Role {
		case RoleHeading:
			content.WriteString(m.styles.Title.Render(e.Text))
			content.WriteString("\n\n")

		case RoleTextbox:
			content.WriteString(m.styles.Label.Render(e.Label))
			content.WriteString("\n")
			content.WriteString(m.renderInput(e))
			content.WriteString("\n")

		case RoleAlert:
			content.WriteString(m.styles.Error.Render("✗ Error: " + e.Text))
			content.WriteString("\n")

		case RoleButton:
			style := m.styles.Button
			if e.Focused {
				style = m.styles.FocusedButton
			}
			content.WriteString("\n")
			content.WriteString(style.Render(e.Text))
			content.WriteString("\n")

		case RoleStatus:
			content.WriteString("\n")
			content.WriteString(m.renderFeedbackMessage())
			content.WriteString("\n")

		case RoleText:
			display = append(display, e)
		}
	}

	if len(display) > 0 {
		content.WriteString("\n")
		content.WriteString(m.renderSubmission(display))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(m.styles.Help.Render("Tab: next • Shift+Tab: back • Ctrl+S: submit • Esc: quit"))

	return m.styles.Container.Render(content.String())
}

func (m *ContactFormModel) renderInput(e Element) string {
	style := m.styles.Input
	if e.Focused {
		style = m.styles.FocusedInput
	}

	if e.Field == models.FieldMessage {
		return style.Render(m.message.View())
	}
	return style.Render(m.inputs[e.Field].View())
}

func (m *ContactFormModel) renderSubmission(display []Element) string {
	var details strings.Builder
	details.WriteString(m.styles.Label.Render("You Submitted:"))
	details.WriteString("\n\n")

	for i, e := range display {
		details.WriteString(fmt.Sprintf("%-11s %s", e.Label+":", e.Text))
		if i < len(display)-1 {
			details.WriteString("\n")
		}
	}

	return m.styles.Card.Render(details.String())
}

func (m *ContactFormModel) renderFeedbackMessage() string {
	if m.feedbackMessage == nil {
		return ""
	}

	color := utils.Colours.Green
	if m.feedbackMessage.Type == FeedbackError {
		color = utils.Colours.Red
	}

	feedbackStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	return feedbackStyle.Render(m.feedbackMessage.Message)
}
