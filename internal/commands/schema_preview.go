package commands

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"admin_backend/internal/generator"
)

type preview struct {
	Names     generator.Names     `json:"names" yaml:"names"`
	Fragments generator.Fragments `json:"fragments" yaml:"fragments"`
	Route     string              `json:"route" yaml:"route"`
}

func SchemaPreviewCommand() *cli.Command {
	return &cli.Command{
		Name:      "schema:preview",
		Usage:     "Print what make:api would derive for a table without writing files",
		ArgsUsage: "<table> [connection]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "model", Usage: "model name (default: singular of the table)"},
			&cli.StringFlag{Name: "format", Value: "yaml", Usage: "yaml or json"},
			&cli.BoolFlag{Name: "soft-deletes"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("usage: schema:preview <table> [connection]", 2)
			}
			table := c.Args().Get(0)
			model := c.String("model")
			if model == "" {
				model = generator.Studly(generator.Singular(table))
			}

			repo, _, err := openSchema(c, c.Args().Get(1))
			if err != nil {
				return err
			}
			defer repo.Close()

			gc, fragments, err := generator.New(repo).Preview(contextOf(c), table, model, c.Bool("soft-deletes"))
			if err != nil {
				return err
			}
			p := preview{Names: gc.Names, Fragments: fragments, Route: generator.RouteLine(gc.Names)}

			var data []byte
			switch c.String("format") {
			case "json":
				data, err = json.MarshalIndent(p, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(p)
			default:
				return cli.Exit(fmt.Sprintf("unknown format %q", c.String("format")), 2)
			}
			if err != nil {
				return err
			}
			_, err = c.App.Writer.Write(data)
			return err
		},
	}
}
