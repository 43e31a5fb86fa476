package commands

import (
	"fmt"
	"strings"

	"github.com/de-tools/macro-report/pkg/models/domain"
	"github.com/de-tools/macro-report/pkg/runtime/terminal/export"
	"github.com/de-tools/macro-report/pkg/services/config"
	"github.com/de-tools/macro-report/pkg/services/ingest"
	"github.com/de-tools/macro-report/pkg/services/report"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	msgNoFiles       = "Введите пути к файлам: --files example.file"
	msgMissingFile   = "Такого файла нет: %s\n"
	msgUnknownReport = "Ошибка: Аргумент --report '%s' не распознан.\n"
)

// ArgumentError is a command line misuse; it is printed argparse style by the caller
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

type ReportCmd struct {
	files      []string
	reportType string
	configPath string
	registry   report.Registry
	reporter   *export.Reporter
	fs         afero.Fs
}

func NewReportCmd(registry report.Registry, reporter *export.Reporter, fs afero.Fs) *cobra.Command {
	rc := &ReportCmd{registry: registry, reporter: reporter, fs: fs}
	cmd := &cobra.Command{
		Use:           "macro-report --files FILE [FILE ...] --report REPORT",
		Short:         "Build country reports from macroeconomic CSV files",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          rc.run,
	}

	// Define flags
	cmd.Flags().StringArrayVar(&rc.files, "files", nil, "Paths to one or more CSV files")
	cmd.Flags().StringVar(&rc.reportType, "report", "",
		fmt.Sprintf("Report type (available: %s)", strings.Join(registry.ListReports(), ", ")))
	cmd.Flags().StringVar(&rc.configPath, "config", "", "Path to the configuration file")
	cmd.Flags().String("data-dir", "", "Folder relative file names are resolved against")
	cmd.Flags().String("delimiter", "", "Field delimiter of the input files")
	cmd.Flags().String("log-level", "", "Log level written to stderr")

	cmd.SetFlagErrorFunc(flagError)

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("report") {
		return &ArgumentError{Msg: "the following arguments are required: --report"}
	}
	if len(args) > 0 {
		return &ArgumentError{Msg: "unrecognized arguments: " + strings.Join(args, " ")}
	}

	cfg, err := config.Load(rc.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logger := zerolog.New(cmd.ErrOrStderr()).Level(level).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	ctx := logger.WithContext(cmd.Context())

	out := cmd.OutOrStdout()
	files := rc.files
	if len(files) == 0 {
		_, err := fmt.Fprintln(out, msgNoFiles)
		return err
	}

	paths := ingest.ResolvePaths(files, cfg.DataDir)
	for _, path := range paths {
		exists, err := afero.Exists(rc.fs, path)
		if err != nil {
			return &domain.FileAccessError{Path: path, Err: err}
		}
		if !exists {
			_, err := fmt.Fprintf(out, msgMissingFile, path)
			return err
		}
	}

	rep, err := rc.registry.Create(rc.reportType)
	if err != nil {
		logger.Debug().Err(err).Strs("available", rc.registry.ListReports()).Msg("report lookup failed")
		_, err := fmt.Fprintf(out, msgUnknownReport, rc.reportType)
		return err
	}

	group := domain.NewCountryGroup()
	ingestor := ingest.NewIngestor(ingest.Settings{
		Fs:        rc.fs,
		Delimiter: cfg.DelimiterRune(),
	})
	if err := ingestor.IngestAll(ctx, paths, group); err != nil {
		return err
	}

	table := report.Build(rep, group)
	logger.Info().
		Str("report", rc.reportType).
		Int("files", len(paths)).
		Int("rows", len(table.Rows)).
		Msg("report built")

	return rc.reporter.Handle(table)
}

// flagError rewords pflag parse failures the way the CLI reports them
func flagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "flag needs an argument: "):
		name := strings.TrimPrefix(msg, "flag needs an argument: ")
		return &ArgumentError{Msg: fmt.Sprintf("argument %s: expected one argument", name)}
	case strings.HasPrefix(msg, "unknown flag: "):
		return &ArgumentError{Msg: "unrecognized arguments: " + strings.TrimPrefix(msg, "unknown flag: ")}
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		return &ArgumentError{Msg: "unrecognized arguments: " + strings.TrimPrefix(msg, "unknown shorthand flag: ")}
	default:
		return &ArgumentError{Msg: msg}
	}
}
