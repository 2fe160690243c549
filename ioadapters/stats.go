package ioadapters

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/routeforge/vrpgo/driver"
)

// statsHeader names each column WriteStatsCSV emits, in order (SPEC_FULL
// §12's "Statistics stream" supplemented feature).
var statsHeader = []string{
	"iteration",
	"current_cost",
	"best_cost",
	"feasible_pop_size",
	"infeasible_pop_size",
	"load_multiplier",
	"time_warp_multiplier",
	"distance_multiplier",
	"duration_multiplier",
	"load_feasible_fraction",
	"time_warp_feasible_fraction",
	"distance_feasible_fraction",
	"duration_feasible_fraction",
}

// WriteStatsCSV renders stats as CSV, one row per driver.IterationStat, a
// header row first. It flushes before returning.
func WriteStatsCSV(w io.Writer, stats []driver.IterationStat) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(statsHeader); err != nil {
		return errors.Wrap(err, "ioadapters: write stats header")
	}
	for _, s := range stats {
		row := []string{
			strconv.Itoa(s.Iteration),
			formatFloat(s.CurrentCost),
			formatFloat(s.BestCost),
			strconv.Itoa(s.FeasiblePopSize),
			strconv.Itoa(s.InfeasiblePopSize),
			formatFloat(s.LoadMultiplier),
			formatFloat(s.TimeWarpMultiplier),
			formatFloat(s.DistanceMultiplier),
			formatFloat(s.DurationMultiplier),
			formatFloat(s.LoadFeasibleFraction),
			formatFloat(s.TimeWarpFeasibleFraction),
			formatFloat(s.DistanceFeasibleFraction),
			formatFloat(s.DurationFeasibleFraction),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "ioadapters: write stats row %d", s.Iteration)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "ioadapters: flush stats")
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
