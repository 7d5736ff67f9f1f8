package main

import (
	"context"
	"fmt"
	"go/format"
	"log"
	"os"
	"time"

	"github.com/delaneyj/slotsignals/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outputKey     = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the SignalN arity variants",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest callback arity to generate",
				Value: 2,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "File to write",
				Value: "signals/signals_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for signals started !")
	defer func() {
		log.Printf("Codegen for signals finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	out := cmd.String(outputKey)
	log.Printf("Arities: 0..%d", count)

	contents, err := format.Source([]byte(templates.SignalsGen(count)))
	if err != nil {
		return fmt.Errorf("formatting generated signals: %w", err)
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		return err
	}

	return nil
}
