package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	envjson "github.com/MKhiriev/go-env-json"
	"github.com/MKhiriev/go-env-json/internal/config"
	"github.com/MKhiriev/go-env-json/internal/logger"
	"github.com/MKhiriev/go-env-json/internal/output"
	"github.com/MKhiriev/go-env-json/models"
)

const role = "envjson"

// cli holds the state shared by the commands of one invocation.
type cli struct {
	info   models.AppBuildInfo
	stdout io.Writer
	stderr io.Writer

	// quiet is set once options are parsed and suppresses the warning line.
	quiet bool

	warningStyle lipgloss.Style
}

// run executes the command line in args and returns the process exit code.
func run(args []string, info models.AppBuildInfo, stdout, stderr io.Writer) int {
	c := &cli{
		info:   info,
		stdout: stdout,
		stderr: stderr,
		warningStyle: lipgloss.NewRenderer(stderr).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B")),
	}

	cmd := c.rootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !c.quiet {
			c.warn(err)
		}
		return 1
	}

	return 0
}

func (c *cli) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envjson",
		Short: "Print environment variables validated by env.schema.json",
		Long: `envjson reads env.schema.json from a directory and prints the variables it
declares, taken from the process environment when they already satisfy the
schema and from env.json and env.dist.json otherwise.

Every flag can also be set through an ENVJSON_* environment variable, e.g.
ENVJSON_OUTPUT=fpm.`,
		Version:       c.info.String(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          c.load,
	}
	cmd.SetOut(c.stdout)
	cmd.SetErr(c.stderr)
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(c.convertCmd())

	return cmd
}

func (c *cli) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <file.ini>",
		Short: "Convert an INI file into env.schema.json and env.json",
		Long: `convert writes env.schema.json and env.json next to the INI file, or into
--dir when given. Every INI key becomes a required string property.`,
		Args: cobra.ExactArgs(1),
		RunE: c.convert,
	}
}

func (c *cli) load(cmd *cobra.Command, _ []string) error {
	opts, log, err := c.setup(cmd)
	if err != nil {
		return err
	}

	env, err := envjson.Load(opts.Dir,
		envjson.WithFile(opts.File),
		envjson.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	if err = output.Render(c.stdout, env, opts.Format()); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	log.Info().
		Str("dir", opts.Dir).
		Str("file", opts.File).
		Int("vars", env.Len()).
		Msg("Successfully loaded environment")
	return nil
}

func (c *cli) convert(cmd *cobra.Command, args []string) error {
	opts, log, err := c.setup(cmd)
	if err != nil {
		return err
	}

	l := log.GetChildLogger()
	l.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str("command", "convert")
	})

	dir := ""
	if cmd.Flags().Changed("dir") {
		dir = opts.Dir
	}

	keys, err := envjson.ConvertINI(args[0], dir)
	if err != nil {
		return err
	}

	l.Info().
		Str("ini", args[0]).
		Strs("keys", keys).
		Msg("Successfully converted INI file")
	return nil
}

// setup parses the options and builds the diagnostics logger.
func (c *cli) setup(cmd *cobra.Command) (*config.Options, *logger.Logger, error) {
	opts, err := config.GetOptions(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	c.quiet = opts.Quiet

	level := zerolog.WarnLevel
	switch {
	case opts.Quiet:
		level = zerolog.Disabled
	case opts.Verbose:
		level = zerolog.DebugLevel
	}

	return opts, logger.NewConsoleLogger(role, c.stderr, level), nil
}

func (c *cli) warn(err error) {
	fmt.Fprintf(c.stderr, "%s %s\n", c.warningStyle.Render("Warning:"), err)
}
