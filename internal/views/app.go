package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rhystmorgan/contactform/internal/config"
	"rhystmorgan/contactform/internal/logging"
	"rhystmorgan/contactform/internal/models"
)

type AppModel struct {
	width  int
	height int
	config *config.FormConfig
	logger *logging.Logger

	contactForm *ContactFormModel
	submissions int
}

func NewAppModel(cfg *config.FormConfig, logger *logging.Logger) (*AppModel, error) {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	form, err := NewContactFormModel(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize contact form: %w", err)
	}

	app := &AppModel{
		config:      cfg,
		logger:      logger,
		contactForm: form,
	}

	form.SetCallbacks(func(snapshot *models.SubmissionSnapshot) tea.Cmd {
		return func() tea.Msg {
			return FormSubmittedMsg{Snapshot: snapshot}
		}
	})

	return app, nil
}

func (m *AppModel) Init() tea.Cmd {
	m.logger.Info("contact form started", "title", m.config.Title)
	return m.contactForm.Init()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.logger.Info("contact form closed", "submissions", m.submissions)
			return m, tea.Quit
		}

	case FormSubmittedMsg:
		m.submissions++
		m.logger.Debug("submission displayed", "snapshot_id", msg.Snapshot.ID, "count", m.submissions)
		return m, nil
	}

	var cmd tea.Cmd
	m.contactForm, cmd = m.contactForm.Update(msg)
	return m, cmd
}

func (m *AppModel) View() string {
	view := m.contactForm.View()
	if m.width == 0 || m.height == 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

// Form exposes the hosted contact form
func (m *AppModel) Form() *ContactFormModel {
	return m.contactForm
}

// Submissions returns how many valid submissions the app has seen
func (m *AppModel) Submissions() int {
	return m.submissions
}
