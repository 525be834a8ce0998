package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"admin_backend/internal/commands"
)

func main() {
	app := commands.NewApp(os.Stdin, os.Stdout)
	if err := app.Run(os.Args); err != nil {
		var exit cli.ExitCoder
		if errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exit.ExitCode())
		}
		log.Fatal(err)
	}
}
