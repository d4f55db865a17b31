package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/coursedir-api/internal/catalog"
	"github.com/phrazzld/coursedir-api/internal/config"
	"github.com/phrazzld/coursedir-api/internal/platform/logger"
	"github.com/phrazzld/coursedir-api/internal/service"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	catalogPath string
	newsPath    string
	logLevel    string
	jsonOutput  bool
}

// session is everything a subcommand needs to answer a query.
type session struct {
	svc    service.CatalogService
	log    *slog.Logger
	out    io.Writer
	styles styles
	json   bool
}

// NewRootCommand builds the coursedir command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "coursedir",
		Short:         "Browse courses, colleges and careers",
		Long:          "coursedir queries the course directory: courses by level and field, the colleges offering them, and the careers they lead to.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "path to a catalog YAML file (default: embedded catalog)")
	root.PersistentFlags().StringVar(&opts.newsPath, "news", "", "path to an RSS news feed (default: embedded feed)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		newCoursesCmd(opts),
		newCourseCmd(opts),
		newSuggestCmd(opts),
		newCollegesCmd(opts),
		newCareersCmd(opts),
		newCareerCmd(opts),
		newNewsCmd(opts),
		newOptionsCmd(opts),
	)

	return root
}

// Execute runs the command tree against os.Args and reports failures on
// stderr.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

// newSession loads configuration and the catalog. Flags take precedence over
// the config file and environment.
func (o *globalOptions) newSession(cmd *cobra.Command) (*session, error) {
	level, err := logger.ParseLevel(o.logLevel)
	if err != nil {
		return nil, err
	}
	log := logger.NewText(cmd.ErrOrStderr(), level).With("component", "cli")

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	catalogPath := cfg.Catalog.Path
	if o.catalogPath != "" {
		catalogPath = o.catalogPath
	}
	newsPath := cfg.Catalog.NewsPath
	if o.newsPath != "" {
		newsPath = o.newsPath
	}

	c, err := catalog.Load(catalogPath, newsPath)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog loaded", "courses", c.Stats().Courses)

	svc, err := service.NewCatalogService(c, log)
	if err != nil {
		return nil, err
	}

	return &session{
		svc:    svc,
		log:    log,
		out:    cmd.OutOrStdout(),
		styles: newStyles(cmd.OutOrStdout()),
		json:   o.jsonOutput,
	}, nil
}
