package commands

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"admin_backend/internal/config"
	"admin_backend/internal/repositories"
)

// NewApp builds the artisan CLI reading answers from in and writing to out.
func NewApp(in io.Reader, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "artisan",
		Usage:     "Scaffold API resources from live database tables",
		Reader:    in,
		Writer:    out,
		ErrWriter: out,
		// exit codes are left to the caller
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "directory holding config.yaml",
				EnvVars: []string{"ARTISAN_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			MakeAPICommand(),
			SchemaPreviewCommand(),
			MigrateCommand(),
			AuthTokenCommand(),
		},
	}
}

// isInteractive reports whether prompts can be shown on r.
var isInteractive = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if dir := c.String("config"); dir != "" {
		return config.Load(dir)
	}
	return config.Load()
}

// resolveConnection accepts a configured connection name or a database URL.
func resolveConnection(cfg *config.Config, name string) (string, error) {
	if strings.Contains(name, ":") {
		return name, nil
	}
	return cfg.Connection(name)
}

func openSchema(c *cli.Context, connection string) (repositories.SchemaRepository, *config.Config, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	dsn, err := resolveConnection(cfg, connection)
	if err != nil {
		return nil, nil, err
	}
	repo, err := repositories.OpenSchemaRepository(contextOf(c), dsn)
	if err != nil {
		return nil, nil, err
	}
	return repo, cfg, nil
}

func contextOf(c *cli.Context) context.Context {
	if c.Context != nil {
		return c.Context
	}
	return context.Background()
}
