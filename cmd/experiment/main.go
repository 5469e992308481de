package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-agent/internal/sim"
)

var (
	log = logrus.New()

	rows    = flag.Int("rows", 8, "board rows")
	cols    = flag.Int("cols", 8, "board columns")
	mines   = flag.Int("mines", 10, "mine count")
	games   = flag.Int("games", 200, "games per run")
	agent   = flag.String("agent", string(sim.AgentCSP), "agent kind (single-point or csp)")
	seed    = flag.Uint64("seed", 1, "master seed")
	compare = flag.Bool("compare", false, "run both agents and print a comparison")
	verbose = flag.Bool("v", false, "debug logging")

	dbURL = flag.String("db", "", "postgres URL to store results (optional)")
	label = flag.String("label", "", "unique run label (required with -db)")
	list  = flag.Bool("list", false, "list stored runs instead of playing")
)

func main() {
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()

	var pg *postgres
	if *dbURL != "" {
		var err error
		if pg, err = NewPostgres(ctx, *dbURL); err != nil {
			log.Fatal("unable to connect to database: ", err)
		}
		defer pg.Close()
	}

	if *list {
		if pg == nil {
			log.Fatal("-list requires -db")
		}
		runs, err := pg.ListRuns(ctx)
		if err != nil {
			log.Fatal("unable to list runs: ", err)
		}
		printRuns(runs)
		return
	}

	base := sim.Config{
		Rows: *rows, Cols: *cols, Mines: *mines,
		Games: *games, Seed: *seed,
	}

	if *compare {
		kinds := []sim.AgentKind{sim.AgentSinglePoint, sim.AgentCSP}
		all := make([]sim.Results, 0, len(kinds))
		for _, kind := range kinds {
			cfg := base
			cfg.Agent = kind
			res, err := sim.Run(cfg)
			if err != nil {
				log.Fatal(err)
			}
			all = append(all, res)
			storeRun(ctx, pg, cfg, res)
		}
		printComparison(kinds, all, base)
		return
	}

	cfg := base
	cfg.Agent = sim.AgentKind(*agent)
	res, err := sim.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}
	storeRun(ctx, pg, cfg, res)

	fmt.Printf("Agent: %s\n", cfg.Agent)
	fmt.Printf("Board: %dx%d, mines=%d, games=%d\n",
		cfg.Rows, cfg.Cols, cfg.Mines, cfg.Games)
	fmt.Printf("Win rate:     %.3f\n", res.WinRate)
	fmt.Printf("Logic ratio:  %.3f\n", res.LogicRatio)
	fmt.Printf("Avg guesses:  %.2f\n", res.AvgGuessMoves)
	fmt.Printf("Avg flags:    %.2f\n", res.AvgFlags)
}

func storeRun(ctx context.Context, pg *postgres, cfg sim.Config, res sim.Results) {
	if pg == nil {
		return
	}
	if *label == "" {
		log.Fatal("-db requires -label")
	}
	name := *label
	if *compare {
		name = fmt.Sprintf("%s/%s", *label, cfg.Agent)
	}
	if err := pg.StoreRun(ctx, name, cfg, res); err != nil {
		log.Fatal("unable to store run: ", err)
	}
	log.Info("stored run ", name)
}

func printComparison(kinds []sim.AgentKind, all []sim.Results, cfg sim.Config) {
	fmt.Printf("Board: %dx%d, mines=%d, games=%d\n\n",
		cfg.Rows, cfg.Cols, cfg.Mines, cfg.Games)
	fmt.Printf("%-14s %9s %12s %13s %10s\n",
		"agent", "win rate", "logic ratio", "avg guesses", "avg flags")
	for i, kind := range kinds {
		fmt.Printf("%-14s %9.3f %12.3f %13.2f %10.2f\n",
			kind, all[i].WinRate, all[i].LogicRatio,
			all[i].AvgGuessMoves, all[i].AvgFlags)
	}
}

func printRuns(runs []ExperimentRun) {
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return
	}
	fmt.Printf("%-24s %-14s %12s %6s %9s %12s\n",
		"label", "agent", "board", "games", "win rate", "logic ratio")
	for _, run := range runs {
		fmt.Printf("%-24s %-14s %8dx%d(%d) %6d %9.3f %12.3f\n",
			run.Label, run.Agent, run.Rows, run.Cols, run.Mines,
			run.Games, run.WinRate, run.LogicRatio)
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
}
