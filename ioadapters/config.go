package ioadapters

import (
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/routeforge/vrpgo/construct"
	"github.com/routeforge/vrpgo/crossover"
	"github.com/routeforge/vrpgo/destroy"
	"github.com/routeforge/vrpgo/driver"
	"github.com/routeforge/vrpgo/neighbourhood"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/repair"
)

// LoadConfigFile decodes path into a driver.Options, strict: any key not
// recognised by Config rejects with ErrUnknownKeys (§7).
func LoadConfigFile(path string) (driver.Options, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return driver.Options{}, errors.Wrapf(err, "ioadapters: decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return driver.Options{}, errors.Wrapf(ErrUnknownKeys, "keys: %v", undecoded)
	}
	return cfg.ToOptions()
}

// LoadConfig decodes r into a driver.Options under the same strict rules
// as LoadConfigFile.
func LoadConfig(r io.Reader) (driver.Options, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return driver.Options{}, errors.Wrap(err, "ioadapters: decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return driver.Options{}, errors.Wrapf(ErrUnknownKeys, "keys: %v", undecoded)
	}
	return cfg.ToOptions()
}

// ToOptions converts a decoded Config into an engine-ready driver.Options,
// seeded from driver.DefaultOptions() and overridden field-by-field — the
// teacher's Options/DefaultOptions idiom, extended across a config-file
// boundary (SPEC_FULL §10).
func (c Config) ToOptions() (driver.Options, error) {
	opts := driver.DefaultOptions()
	opts.Seed = c.Seed
	if c.MaxRuntimeSec > 0 {
		opts.MaxRuntime = time.Duration(c.MaxRuntimeSec * float64(time.Second))
	}
	if c.MaxIterations > 0 {
		opts.MaxIterations = c.MaxIterations
	}

	switch c.Strategy {
	case "", "ils":
		opts.Strategy = driver.IteratedLocalSearch
	case "genetic":
		opts.Strategy = driver.Genetic
	default:
		return driver.Options{}, errors.Wrapf(ErrUnknownStrategy, "%q", c.Strategy)
	}

	if err := applyILS(&opts, c.ILS); err != nil {
		return driver.Options{}, err
	}
	if err := applyGenetic(&opts, c.Genetic); err != nil {
		return driver.Options{}, err
	}
	applyPenalty(&opts.Penalty, c.Penalty)
	applyNeighbourhood(&opts.Neighbourhood, c.Neighbourhood)
	applyPopulation(&opts, c.Population)
	if err := applyDestroy(&opts.Destroy, c.Destroy); err != nil {
		return driver.Options{}, err
	}
	if err := applyRepair(&opts.Repair, c.Repair); err != nil {
		return driver.Options{}, err
	}
	if err := applyConstruct(&opts.Construct, c.Construct); err != nil {
		return driver.Options{}, err
	}

	if err := opts.Validate(); err != nil {
		return driver.Options{}, err
	}
	return opts, nil
}

func applyILS(opts *driver.Options, c ilsConfig) error {
	if c.RepairProbability > 0 {
		opts.RepairProbability = c.RepairProbability
	}
	start, end := 0.05, 0.0
	if c.AcceptanceStartPct > 0 {
		start = c.AcceptanceStartPct
	}
	if c.AcceptanceEndPct > 0 {
		end = c.AcceptanceEndPct
	}
	switch c.Acceptance {
	case "", "record_to_record":
		opts.Acceptance = driver.RecordToRecordTravel(start, end)
	case "greedy":
		opts.Acceptance = driver.GreedyAccept()
	default:
		return errors.Wrapf(ErrUnknownAcceptance, "%q", c.Acceptance)
	}
	return nil
}

func applyGenetic(opts *driver.Options, c geneticConfig) error {
	switch c.CrossoverVariant {
	case "":
		// leave opts.Crossover at its DefaultOptions() value
	case "homogeneous":
		opts.Crossover.Variant = crossover.Homogeneous
	case "heterogeneous":
		opts.Crossover.Variant = crossover.Heterogeneous
	default:
		return errors.Wrapf(ErrUnknownCrossoverVariant, "%q", c.CrossoverVariant)
	}
	return nil
}

func applyPenalty(opts *penalty.Options, c penaltyConfig) {
	if c.WindowSize > 0 {
		opts.WindowSize = c.WindowSize
	}
	if c.UpdateInterval > 0 {
		opts.UpdateInterval = c.UpdateInterval
	}
	if c.TargetFeasible > 0 {
		opts.TargetFeasible = c.TargetFeasible
	}
	if c.DecreaseFactor > 0 {
		opts.DecreaseFactor = c.DecreaseFactor
	}
	if c.IncreaseFactor > 0 {
		opts.IncreaseFactor = c.IncreaseFactor
	}
	if c.BoostFactor > 0 {
		opts.BoostFactor = c.BoostFactor
	}
}

func applyNeighbourhood(opts *neighbourhood.Options, c neighbourhoodConfig) {
	if c.NBGranular > 0 {
		opts.NBGranular = c.NBGranular
	}
	if c.WeightTimeWindow > 0 {
		opts.WeightTimeWindow = c.WeightTimeWindow
	}
	if c.WeightWait > 0 {
		opts.WeightWait = c.WeightWait
	}
}

func applyPopulation(opts *driver.Options, c populationConfig) {
	if c.MinSize > 0 {
		opts.Population.MinSize = c.MinSize
	}
	if c.GenerationSize > 0 {
		opts.Population.GenerationSize = c.GenerationSize
	}
	if c.LbDiversity > 0 {
		opts.Population.LbDiversity = c.LbDiversity
	}
	if c.UbDiversity > 0 {
		opts.Population.UbDiversity = c.UbDiversity
	}
	if c.NbClose > 0 {
		opts.Diversity.NbClose = c.NbClose
	}
	if c.NbElite > 0 {
		opts.Diversity.NbElite = c.NbElite
	}
}

func applyDestroy(opts *destroy.Options, c destroyConfig) error {
	switch c.Op {
	case "":
	case "random":
		opts.Variant = destroy.RandomRemoval
	case "concentric":
		opts.Variant = destroy.ConcentricRemoval
	case "string":
		opts.Variant = destroy.StringRemoval
	default:
		return errors.Wrapf(ErrUnknownDestroyOp, "%q", c.Op)
	}
	if c.Strength > 0 {
		opts.Strength = c.Strength
	}
	if c.MaxStringSize > 0 {
		opts.MaxStringSize = c.MaxStringSize
	}
	if c.KeepProbability > 0 {
		opts.KeepProbability = c.KeepProbability
	}
	return nil
}

func applyRepair(opts *repair.Options, c repairConfig) error {
	switch c.Op {
	case "":
	case "greedy":
		opts.Variant = repair.GreedyInsertion
	case "nearest_route":
		opts.Variant = repair.NearestRouteInsertion
	default:
		return errors.Wrapf(ErrUnknownRepairOp, "%q", c.Op)
	}
	if c.CandidateRoutes > 0 {
		opts.CandidateRoutes = c.CandidateRoutes
	}
	return nil
}

func applyConstruct(opts *construct.Options, c constructConfig) error {
	switch c.Op {
	case "":
	case "sweep":
		opts.Variant = construct.RandomisedSweep
	case "nearest_neighbour":
		opts.Variant = construct.NearestNeighbour
	default:
		return errors.Wrapf(ErrUnknownConstructOp, "%q", c.Op)
	}
	return nil
}
