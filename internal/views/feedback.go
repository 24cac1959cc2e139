package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type FeedbackMessage struct {
	Type     FeedbackType
	Message  string
	Duration time.Duration
	ShowTime time.Time
}

type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
)

// FeedbackTimeoutMsg clears the feedback shown at ShowTime. Older timeouts
// are ignored so a fresh message is not cut short.
type FeedbackTimeoutMsg struct {
	ShowTime time.Time
}

func feedbackTimeout(f *FeedbackMessage) tea.Cmd {
	showTime := f.ShowTime
	return tea.Tick(f.Duration, func(time.Time) tea.Msg {
		return FeedbackTimeoutMsg{ShowTime: showTime}
	})
}
