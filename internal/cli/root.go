package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"rhystmorgan/contactform/internal/config"
	"rhystmorgan/contactform/internal/logging"
	"rhystmorgan/contactform/internal/views"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	LogFile    string
	Debug      bool
	Format     string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command. Run without a subcommand it
// opens the contact form in the terminal.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "contactform",
		Short:         "Fill in and submit a contact form in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return exitErrorf(ExitUsage, "invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "append logs to this file")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format for headless commands (json|text)")

	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// loadConfig applies flag overrides on top of the file and environment
func loadConfig(opts *RootOptions) (*config.FormConfig, error) {
	cfg, err := config.LoadFormConfig(opts.ConfigPath)
	if err != nil {
		return nil, exitErrorf(ExitUsage, "failed to load config: %w", err)
	}

	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.Debug {
		cfg.Debug = true
	}

	return cfg, nil
}

func runForm(opts *RootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return exitErrorf(ExitUsage, "failed to open log: %w", err)
	}
	defer logger.Close()

	app, err := views.NewAppModel(cfg, logger)
	if err != nil {
		return exitErrorf(ExitUsage, "failed to initialize application: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return exitErrorf(ExitUsage, "failed to run application: %w", err)
	}

	return nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
