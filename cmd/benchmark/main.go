package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/slotsignals/signals"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
)

var (
	subscriberCounts = []int{1, 10, 100, 1_000, 10_000}
	churnFractions   = []int{1, 10, 50}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure Invoke and Connect/Disconnect latency",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Samples per benchmark row",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))

	log.Printf("warming up")
	benchmarkInvoke(iters, false)

	benchmarkInvoke(iters, true)
	benchmarkChurn(iters, true)
	return nil
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendResult(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

func benchmarkInvoke(iters int, shouldRender bool) {
	tbl := newTable("Invoke")

	for _, n := range subscriberCounts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		s := signals.NewSignal1[int]()
		sum := 0
		for i := 0; i < n; i++ {
			s.Connect(func(v int) {
				sum += v
			})
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			s.Invoke(1)
			tach.AddTime(time.Since(start))
		}

		if sum != n*iters {
			log.Panicf("invoke %d: expected sum %d, got %d", n, n*iters, sum)
		}
		appendResult(tbl, fmt.Sprintf("invoke: %d subscribers", n), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkChurn disconnects pct% of the subscribers, reconnects them through
// the free list and invokes once per sample.
func benchmarkChurn(iters int, shouldRender bool) {
	tbl := newTable("Connect / Disconnect churn")

	for _, n := range subscriberCounts {
		for _, pct := range churnFractions {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			s := signals.NewSignal0(signals.WithStalePolicy(signals.StaleError))
			conns := make([]signals.Connection, n)
			for i := range conns {
				conns[i] = s.Connect(func() {})
			}
			churn := max(1, n*pct/100)

			for i := 0; i < iters; i++ {
				start := time.Now()
				for j := 0; j < churn; j++ {
					idx := (i*churn + j) % n
					if err := conns[idx].Disconnect(); err != nil {
						log.Panic(err)
					}
					if j%2 == 0 {
						conns[idx] = s.ConnectOneTime(func() {})
					} else {
						conns[idx] = s.Connect(func() {})
					}
				}
				s.Invoke()
				tach.AddTime(time.Since(start))

				// one-time bindings are gone after Invoke, give their slots new owners
				for j := 0; j < churn; j += 2 {
					idx := (i*churn + j) % n
					conns[idx] = s.Connect(func() {})
				}
			}

			if s.Len() != n {
				log.Panicf("churn %d/%d%%: expected %d live bindings, got %d", n, pct, n, s.Len())
			}
			appendResult(tbl, fmt.Sprintf("churn: %d subscribers, %d%%", n, pct), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
