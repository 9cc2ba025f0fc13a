package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"zsoltcs1123/your_package/cmd/shared"
	"zsoltcs1123/your_package/cmd/version"
	"zsoltcs1123/your_package/pkg/config"
	"zsoltcs1123/your_package/pkg/greet"
	"zsoltcs1123/your_package/pkg/log"

	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(execute(context.Background(), os.Args, os.Stdout))
}

// execute runs the app and returns the process exit status.
func execute(ctx context.Context, args []string, stdout io.Writer) int {
	if err := newApp(stdout).Run(ctx, args); err != nil {
		log.ErrorMsg("%s\n", err)
		return 1
	}

	return 0
}

func newApp(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:   config.PackageName,
		Usage:  "print a line identifying " + config.PackageName,
		Writer: stdout,
		Flags:  shared.GetCommonFlags(),
		Action: run,
		Commands: []*cli.Command{
			version.GetCommand(),
		},
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	out := config.Output{
		Verbose: cmd.Bool(shared.VerboseFlag),
		NoColor: cmd.Bool(shared.NoColorFlag),
	}
	log.Setup(out.NoColor)

	if cmd.Args().Present() {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(cmd.Args().Slice(), " "))
	}

	greeting := config.Default()
	if errs := config.Validate(greeting); len(errs) > 0 {
		return errors.Join(errs...)
	}

	if out.Verbose {
		log.InfoMsg("Printing greeting for %s\n", greeting.Name)
	}

	return greet.Write(cmd.Root().Writer, greeting)
}
