package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"admin_backend/internal/generator"
)

const softDeletesQuestion = "Require SoftDeletes?"

func MakeAPICommand() *cli.Command {
	return &cli.Command{
		Name:      "make:api",
		Usage:     "Generate model, controller, requests, seeder and route for a table",
		ArgsUsage: "<table> <model> [connection]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "soft-deletes",
				Usage: "add soft deletes to the model without asking",
			},
			&cli.BoolFlag{
				Name:    "no-interaction",
				Aliases: []string{"n"},
				Usage:   "never prompt, take defaults",
			},
			&cli.StringFlag{
				Name:  "base-path",
				Usage: "project root the files are written under (default from config)",
			},
			&cli.StringFlag{
				Name:  "stubs",
				Usage: "directory with custom .stub templates",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return cli.Exit("usage: make:api <table> <model> [connection]", 2)
			}
			table, model := c.Args().Get(0), c.Args().Get(1)

			repo, cfg, err := openSchema(c, c.Args().Get(2))
			if err != nil {
				return err
			}
			defer repo.Close()

			out := c.App.Writer
			ctx := contextOf(c)

			exists, err := repo.TableExists(ctx, table)
			if err != nil {
				return err
			}
			if !exists {
				return cli.Exit(fmt.Sprintf("Table '%s' does not exist.", table), 1)
			}

			softDeletes, err := decideSoftDeletes(c)
			if err != nil {
				return err
			}

			basePath := c.String("base-path")
			if basePath == "" {
				basePath = cfg.Generator.BasePath
			}
			opts := generator.Options{
				Table:       table,
				Model:       model,
				BasePath:    basePath,
				SoftDeletes: softDeletes,
			}
			if dir := firstNonEmpty(c.String("stubs"), cfg.Generator.StubsPath); dir != "" {
				opts.Stubs = generator.DirStubs(dir)
			}

			report, err := generator.New(repo).Generate(ctx, opts)
			if report == nil {
				return err
			}

			printReport(out, report)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Fprintln(out, "API generation completed.")
			return nil
		},
	}
}

// decideSoftDeletes takes the flag when given and otherwise asks, unless
// prompting is disabled or impossible.
func decideSoftDeletes(c *cli.Context) (bool, error) {
	if c.IsSet("soft-deletes") {
		return c.Bool("soft-deletes"), nil
	}
	if c.Bool("no-interaction") || !isInteractive(c.App.Reader) {
		return false, nil
	}
	return confirm(c.App.Reader, c.App.Writer, softDeletesQuestion, false)
}

func confirm(in io.Reader, out io.Writer, question string, def bool) (bool, error) {
	hint := "no"
	if def {
		hint = "yes"
	}
	fmt.Fprintf(out, "%s (yes/no) [%s]:\n> ", question, hint)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return parseConfirm(line, def), nil
}

// parseConfirm treats any answer starting with "y" as yes and an empty
// answer as the default.
func parseConfirm(answer string, def bool) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return def
	}
	return strings.HasPrefix(answer, "y")
}

func printReport(out io.Writer, report *generator.Report) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Artifact", "Path", "Status"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, a := range report.Artifacts {
		status := string(a.Status)
		if a.Err != nil {
			status += ": " + a.Err.Error()
		}
		table.Append([]string{a.Name, a.Path, status})
	}
	table.Append([]string{"route", generator.RouteFile, string(report.RouteStatus)})
	table.Render()

	switch report.RouteStatus {
	case generator.StatusAppended:
		fmt.Fprintf(out, "Route added: %s\n", report.Route)
	case generator.StatusDuplicate:
		fmt.Fprintln(out, "Route already exists.")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
