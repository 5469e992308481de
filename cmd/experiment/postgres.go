package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vancomm/minesweeper-agent/internal/sim"
)

type postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbUrl string) (*postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dbUrl)
	if err != nil {
		return nil, err
	}
	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, err
	}
	pg := &postgres{db}
	if err := pg.ensureSchema(ctx); err != nil {
		pg.Close()
		return nil, err
	}
	return pg, nil
}

func (pg *postgres) Ping(ctx context.Context) error {
	return pg.db.Ping(ctx)
}

func (pg *postgres) Close() {
	pg.db.Close()
}

func (pg *postgres) ensureSchema(ctx context.Context) error {
	_, err := pg.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS experiment_run (
			experiment_run_id serial PRIMARY KEY,
			label             text NOT NULL UNIQUE,
			agent             text NOT NULL,
			rows              int NOT NULL,
			cols              int NOT NULL,
			mines             int NOT NULL,
			games             int NOT NULL,
			seed              bigint NOT NULL,
			wins              int NOT NULL,
			win_rate          double precision NOT NULL,
			logic_ratio       double precision NOT NULL,
			avg_guess_moves   double precision NOT NULL,
			avg_flags         double precision NOT NULL,
			created_at        timestamptz NOT NULL DEFAULT now()
		);`)
	return err
}

// ExperimentRun is a stored batch result row.
type ExperimentRun struct {
	RunId         int       `json:"run_id" db:"experiment_run_id"`
	Label         string    `json:"label" db:"label"`
	Agent         string    `json:"agent" db:"agent"`
	Rows          int       `json:"rows" db:"rows"`
	Cols          int       `json:"cols" db:"cols"`
	Mines         int       `json:"mines" db:"mines"`
	Games         int       `json:"games" db:"games"`
	Seed          int64     `json:"seed" db:"seed"`
	Wins          int       `json:"wins" db:"wins"`
	WinRate       float64   `json:"win_rate" db:"win_rate"`
	LogicRatio    float64   `json:"logic_ratio" db:"logic_ratio"`
	AvgGuessMoves float64   `json:"avg_guess_moves" db:"avg_guess_moves"`
	AvgFlags      float64   `json:"avg_flags" db:"avg_flags"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

func (pg *postgres) StoreRun(
	ctx context.Context, label string, cfg sim.Config, res sim.Results,
) error {
	_, err := pg.db.Exec(ctx, `
		INSERT INTO experiment_run (
			label, agent, rows, cols, mines, games, seed,
			wins, win_rate, logic_ratio, avg_guess_moves, avg_flags
		)
		VALUES (
			@label, @agent, @rows, @cols, @mines, @games, @seed,
			@wins, @win_rate, @logic_ratio, @avg_guess_moves, @avg_flags
		);`,
		pgx.NamedArgs{
			"label":           label,
			"agent":           string(cfg.Agent),
			"rows":            cfg.Rows,
			"cols":            cfg.Cols,
			"mines":           cfg.Mines,
			"games":           cfg.Games,
			"seed":            int64(cfg.Seed),
			"wins":            res.Wins,
			"win_rate":        res.WinRate,
			"logic_ratio":     res.LogicRatio,
			"avg_guess_moves": res.AvgGuessMoves,
			"avg_flags":       res.AvgFlags,
		})
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("run label %q already stored", label)
	}
	return err
}

func (pg *postgres) ListRuns(ctx context.Context) ([]ExperimentRun, error) {
	rows, err := pg.db.Query(ctx, `
		SELECT
			experiment_run_id, label, agent, rows, cols, mines, games,
			seed, wins, win_rate, logic_ratio, avg_guess_moves, avg_flags,
			created_at
		FROM experiment_run
		ORDER BY created_at;`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ExperimentRun])
}
