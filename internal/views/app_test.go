package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rhystmorgan/contactform/internal/models"
)

func TestAppQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		app, err := NewAppModel(nil, nil)
		require.NoError(t, err)

		_, cmd := app.Update(tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, "expected tea.QuitMsg for %v", key)
	}
}

func TestAppTypingQDoesNotQuit(t *testing.T) {
	app, err := NewAppModel(nil, nil)
	require.NoError(t, err)

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, "q", app.Form().Fields().FirstName)
}

func TestAppCountsSubmissions(t *testing.T) {
	app, err := NewAppModel(nil, nil)
	require.NoError(t, err)

	form := app.Form()
	form.SetField(models.FieldFirstName, "adfdd")
	form.SetField(models.FieldLastName, "Berlin")
	form.SetField(models.FieldEmail, "asdf@gmail.com")

	snapshot := models.NewSubmissionSnapshot(form.Fields())
	model, cmd := app.Update(FormSubmittedMsg{Snapshot: snapshot})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, model.(*AppModel).Submissions())
}

func TestAppSubmitCallbackEmitsSubmittedMsg(t *testing.T) {
	app, err := NewAppModel(nil, nil)
	require.NoError(t, err)

	form := app.Form()
	form.SetField(models.FieldFirstName, "adfdd")
	form.SetField(models.FieldLastName, "Berlin")
	form.SetField(models.FieldEmail, "asdf@gmail.com")

	require.NotNil(t, form.onSubmitted)
	msg := form.onSubmitted(models.NewSubmissionSnapshot(form.Fields()))()
	submitted, ok := msg.(FormSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "Berlin", submitted.Snapshot.LastName)
}

func TestAppWindowSizeCentersView(t *testing.T) {
	app, err := NewAppModel(nil, nil)
	require.NoError(t, err)

	unsized := app.View()
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 60})
	assert.Contains(t, app.View(), "Contact Form")
	assert.NotEqual(t, unsized, app.View())
}
