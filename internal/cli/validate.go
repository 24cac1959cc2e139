package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"rhystmorgan/contactform/internal/logging"
	"rhystmorgan/contactform/internal/models"
	"rhystmorgan/contactform/internal/views"
)

// ValidateOptions holds the field values passed on the command line.
type ValidateOptions struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// FieldErrorJSON is one failing rule in JSON output.
type FieldErrorJSON struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidateResponse is the JSON document printed by validate --format json.
type ValidateResponse struct {
	Valid      bool                       `json:"valid"`
	Errors     []FieldErrorJSON           `json:"errors,omitempty"`
	Submission *models.SubmissionSnapshot `json:"submission,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Submit field values through the form without opening it",
		Long: `Fill in the contact form from flags and press submit.

Prints the submitted values when the form is valid, or one error line per
failing rule and exits with status 1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&opts.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.Message, "message", "", "optional message")

	return cmd
}

func runValidate(rootOpts *RootOptions, opts *ValidateOptions, cmd *cobra.Command) error {
	out := newOutput(rootOpts.Format, cmd.OutOrStdout())

	cfg, err := loadConfig(rootOpts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return exitErrorf(ExitUsage, "failed to open log: %w", err)
	}
	defer logger.Close()

	form, err := views.NewContactFormModel(cfg, logger)
	if err != nil {
		return exitErrorf(ExitUsage, "failed to initialize contact form: %w", err)
	}

	values := map[string]string{
		"first-name": opts.FirstName,
		"last-name":  opts.LastName,
		"email":      opts.Email,
		"message":    opts.Message,
	}
	// Only flags the user gave count as typed input
	for flag, value := range values {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		field, err := models.ParseField(strings.ReplaceAll(flag, "-", " "))
		if err != nil {
			return exitErrorf(ExitUsage, "flag --%s: %w", flag, err)
		}
		form.SetField(field, value)
	}

	form.Submit()
	screen := form.Screen()

	errs := screen.ByTestID(views.TestIDError)
	if len(errs) > 0 {
		if err := outputErrors(out, form); err != nil {
			return err
		}
		return exitErrorf(ExitRejected, "submission rejected: %d validation error(s): %w",
			len(errs), form.LastResult().Err())
	}

	return outputSubmission(out, form, screen)
}

func outputErrors(out *output, form *views.ContactFormModel) error {
	if out.json {
		resp := ValidateResponse{Valid: false}
		for _, e := range form.Errors() {
			resp.Errors = append(resp.Errors, FieldErrorJSON{
				Field:   e.Field.Key(),
				Code:    e.Code.String(),
				Message: e.Message,
			})
		}
		return out.writeJSON(resp)
	}

	for _, e := range form.Screen().ByTestID(views.TestIDError) {
		out.printf("Error: %s\n", e.Text)
	}
	return nil
}

func outputSubmission(out *output, form *views.ContactFormModel, screen views.Screen) error {
	if out.json {
		return out.writeJSON(ValidateResponse{
			Valid:      true,
			Submission: form.Snapshot(),
		})
	}

	out.printf("You Submitted:\n")
	for _, e := range screen.ByRole(views.RoleText) {
		out.printf("%-11s %s\n", e.Label+":", e.Text)
	}
	return nil
}
