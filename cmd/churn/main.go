package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/slotsignals/signals"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	stepsKey = "steps"
	seedKey  = "seed"
)

func main() {
	log.Print("Starting signal churn check, please wait...")
	defer log.Print("Finished signal churn check")

	cmd := &cli.Command{
		Name:  "churn",
		Usage: "Run randomized connect/disconnect/invoke sequences against a model",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  stepsKey,
				Usage: "Operations per scenario",
				Value: 200_000,
			},
			&cli.StringFlag{
				Name:  seedKey,
				Usage: "Extra text mixed into every scenario seed",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

type scenario struct {
	name          string
	connect       float64 // share of steps that Connect
	connectOnce   float64 // share of steps that ConnectOneTime
	disconnect    float64 // share of steps that Disconnect a random live handle
	stale         float64 // share of steps that Disconnect an already dead handle
	disconnectAll float64 // share of steps that DisconnectAll; the rest Invoke
}

var scenarios = []scenario{
	{name: "steady subscribers", connect: 0.30, connectOnce: 0.05, disconnect: 0.25, stale: 0.05, disconnectAll: 0.0001},
	{name: "one-time heavy", connect: 0.05, connectOnce: 0.45, disconnect: 0.10, stale: 0.10, disconnectAll: 0.0001},
	{name: "disconnect storm", connect: 0.35, connectOnce: 0.05, disconnect: 0.45, stale: 0.10, disconnectAll: 0.001},
	{name: "invoke heavy", connect: 0.10, connectOnce: 0.10, disconnect: 0.10, stale: 0.01, disconnectAll: 0},
}

type result struct {
	steps       int64
	invokes     int64
	calls       int64
	staleErrors int64
	maxLive     int
	duration    time.Duration
}

func run(ctx context.Context, cmd *cli.Command) error {
	steps := int64(cmd.Uint(stepsKey))
	salt := cmd.String(seedKey)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "seed", "steps", "invokes", "callbacks", "stale rejects", "max live", "time", "ops/ms",
	})

	for _, sc := range scenarios {
		seed := int64(xxhash.Sum64String(sc.name+salt) & 0x7fffffffffffffff)
		log.Printf("Running '%s' scenario, seed %d", sc.name, seed)

		res, err := runScenario(sc, seed, steps)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.name, err)
		}

		opsPerMs := float64(res.steps) / (float64(res.duration) / float64(time.Millisecond))
		table.Append([]string{
			sc.name,
			fmt.Sprint(seed),
			humanize.Comma(res.steps),
			humanize.Comma(res.invokes),
			humanize.Comma(res.calls),
			humanize.Comma(res.staleErrors),
			humanize.Comma(int64(res.maxLive)),
			fmt.Sprint(res.duration),
			humanize.Comma(int64(opsPerMs)),
		})
	}
	table.Render()
	return nil
}

// runScenario drives a Signal1 and a model of its live connections side by
// side and fails as soon as they disagree. The model keeps connections in
// insertion order so a seed replays the same run.
func runScenario(sc scenario, seed, steps int64) (*result, error) {
	rng := rand.New(rand.NewSource(seed))
	s := signals.NewSignal1[int64](signals.WithStalePolicy(signals.StaleError))

	var order []signals.Connection
	live := mapset.NewThreadUnsafeSet[signals.Connection]()
	oneTime := mapset.NewThreadUnsafeSet[signals.Connection]()
	var dead []signals.Connection

	res := &result{}
	onCall := func(int64) { res.calls++ }

	start := time.Now()
	for step := int64(0); step < steps; step++ {
		roll := rng.Float64()
		switch {
		case roll < sc.connect:
			c := s.Connect(onCall)
			order = append(order, c)
			live.Add(c)

		case roll < sc.connect+sc.connectOnce:
			c := s.ConnectOneTime(onCall)
			order = append(order, c)
			live.Add(c)
			oneTime.Add(c)

		case roll < sc.connect+sc.connectOnce+sc.disconnect:
			if len(order) == 0 {
				break
			}
			var c signals.Connection
			order, c = swapRemove(order, rng.Intn(len(order)))
			live.Remove(c)
			oneTime.Remove(c)
			if err := c.Disconnect(); err != nil {
				return nil, fmt.Errorf("step %d: disconnecting live connection: %w", step, err)
			}
			dead = append(dead, c)

		case roll < sc.connect+sc.connectOnce+sc.disconnect+sc.stale:
			if len(dead) == 0 {
				break
			}
			c := dead[rng.Intn(len(dead))]
			if err := c.Disconnect(); err == nil {
				return nil, fmt.Errorf("step %d: dead connection %+v disconnected again", step, c)
			}
			res.staleErrors++

		case roll < sc.connect+sc.connectOnce+sc.disconnect+sc.stale+sc.disconnectAll:
			s.DisconnectAll()
			dead = append(dead, order...)
			order = order[:0]
			live.Clear()
			oneTime.Clear()

		default:
			before := res.calls
			s.Invoke(step)
			res.invokes++
			if fired := res.calls - before; fired != int64(live.Cardinality()) {
				return nil, fmt.Errorf("step %d: invoke reached %d callbacks, model has %d", step, fired, live.Cardinality())
			}
			var spent []signals.Connection
			order, spent = partition(order, oneTime)
			dead = append(dead, spent...)
			live = live.Difference(oneTime)
			oneTime.Clear()
		}

		if s.Len() != live.Cardinality() || len(order) != live.Cardinality() {
			return nil, fmt.Errorf("step %d: signal has %d live bindings, model has %d", step, s.Len(), live.Cardinality())
		}
		if live.Cardinality() > res.maxLive {
			res.maxLive = live.Cardinality()
		}
		// keep the graveyard bounded on long runs
		if len(dead) > 4096 {
			dead = dead[len(dead)-1024:]
		}
	}
	res.steps = steps
	res.duration = time.Since(start)

	return res, nil
}

func swapRemove(conns []signals.Connection, i int) ([]signals.Connection, signals.Connection) {
	c := conns[i]
	last := len(conns) - 1
	conns[i] = conns[last]
	return conns[:last], c
}

// partition splits conns into those not in drop and those in it, keeping the
// original order in both.
func partition(conns []signals.Connection, drop mapset.Set[signals.Connection]) (kept, dropped []signals.Connection) {
	kept = conns[:0]
	for _, c := range conns {
		if drop.Contains(c) {
			dropped = append(dropped, c)
			continue
		}
		kept = append(kept, c)
	}
	return kept, dropped
}
