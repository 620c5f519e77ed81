package main

import (
	"context"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/cssat/atrules/internal/atparser"
)

func run(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("usage: atlint [--css-modules] FILE.css")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read %q: %w", path, err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("unable to build logger: %w", err)
	}
	defer logger.Sync()

	sess := atparser.NewSession(atparser.Config{CSSModules: cmd.Bool("css-modules")}, logger)
	rules := sess.Parse(string(data))

	msgs := sess.Log.Msgs()
	for _, m := range msgs {
		fmt.Fprintf(os.Stderr, "%s:%d: %s: %s\n", path, m.Range.Loc.Start, m.Kind, m.Text)
	}
	fmt.Printf("%s: %d top-level rule(s), %d diagnostic(s)\n", path, len(rules), len(msgs))
	if len(msgs) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func main() {
	app := &cli.Command{
		Name:  "atlint",
		Usage: "parse a stylesheet's at-rules and report diagnostics",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "css-modules", Usage: "enable CSS-Modules :local()/:global() keyframes-name spellings"},
		},
		ArgsUsage: "FILE.css",
		Action:    run,
	}
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "atlint: %v\n", err)
		os.Exit(1)
	}
}
