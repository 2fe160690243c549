package ioadapters

import "errors"

// Sentinel errors for the ioadapters package.
var (
	// ErrUnknownKeys indicates a TOML document contained keys this
	// package does not recognise (§7: "reject unknown configuration
	// keys").
	ErrUnknownKeys = errors.New("ioadapters: configuration contains unrecognised keys")

	// ErrUnknownConstructOp indicates Config.Construct.Op named a
	// construction variant construct.Options does not implement.
	ErrUnknownConstructOp = errors.New("ioadapters: unrecognised construct op")

	// ErrUnknownDestroyOp indicates Config.Destroy.Op named a destroy
	// variant destroy.Options does not implement.
	ErrUnknownDestroyOp = errors.New("ioadapters: unrecognised destroy op")

	// ErrUnknownRepairOp indicates Config.Repair.Op named a repair
	// variant repair.Options does not implement.
	ErrUnknownRepairOp = errors.New("ioadapters: unrecognised repair op")

	// ErrUnknownCrossoverVariant indicates Config.Genetic.CrossoverVariant
	// named a crossover variant crossover.Options does not implement.
	ErrUnknownCrossoverVariant = errors.New("ioadapters: unrecognised crossover variant")

	// ErrUnknownAcceptance indicates Config.ILS.Acceptance named an
	// acceptance criterion this package does not implement.
	ErrUnknownAcceptance = errors.New("ioadapters: unrecognised acceptance criterion")

	// ErrUnknownStrategy indicates Config.Strategy named a strategy
	// driver.Options does not implement.
	ErrUnknownStrategy = errors.New("ioadapters: unrecognised strategy")
)

// ilsConfig is the `[ils]` TOML section: the iterated-local-search
// strategy's perturbation/acceptance knobs (§6, §12's additive
// GreedyAccept criterion).
type ilsConfig struct {
	RepairProbability  float64 `toml:"repair_probability"`
	Acceptance         string  `toml:"acceptance"` // "record_to_record" | "greedy"
	AcceptanceStartPct float64 `toml:"acceptance_start_pct"`
	AcceptanceEndPct   float64 `toml:"acceptance_end_pct"`
}

// geneticConfig is the `[genetic]` TOML section.
type geneticConfig struct {
	CrossoverVariant string `toml:"crossover_variant"` // "homogeneous" | "heterogeneous"
}

// penaltyConfig is the `[penalty]` TOML section (C5, §4.3).
type penaltyConfig struct {
	WindowSize     int     `toml:"window_size"`
	UpdateInterval int     `toml:"update_interval"`
	TargetFeasible float64 `toml:"target_feasible"`
	DecreaseFactor float64 `toml:"decrease_factor"`
	IncreaseFactor float64 `toml:"increase_factor"`
	BoostFactor    float64 `toml:"boost_factor"`
}

// neighbourhoodConfig is the `[neighbourhood]` TOML section (C6, §4.4).
type neighbourhoodConfig struct {
	NBGranular       int     `toml:"nb_granular"`
	WeightTimeWindow float64 `toml:"weight_time_window"`
	WeightWait       float64 `toml:"weight_wait"`
}

// populationConfig is the `[population]` TOML section (C10/C11, §4.8-§4.9).
type populationConfig struct {
	MinSize        int     `toml:"min_size"`
	GenerationSize int     `toml:"generation_size"`
	LbDiversity    float64 `toml:"lb_diversity"`
	UbDiversity    float64 `toml:"ub_diversity"`
	NbClose        int     `toml:"nb_close"`
	NbElite        int     `toml:"nb_elite"`
}

// destroyConfig is the `[destroy]` TOML section (C9, §4.7).
type destroyConfig struct {
	Op              string  `toml:"op"` // "random" | "concentric" | "string"
	Strength        int     `toml:"strength"`
	MaxStringSize   int     `toml:"max_string_size"`
	KeepProbability float64 `toml:"keep_probability"`
}

// repairConfig is the `[repair]` TOML section (C9, §4.7).
type repairConfig struct {
	Op              string `toml:"op"` // "greedy" | "nearest_route"
	CandidateRoutes int    `toml:"candidate_routes"`
}

// constructConfig is the `[construct]` TOML section (C9, §4.2).
type constructConfig struct {
	Op string `toml:"op"` // "sweep" | "nearest_neighbour"
}

// Config is the root TOML document decoded by LoadConfig, one struct
// field per section named in §6's "Configuration" interface and SPEC_FULL
// §10's ambient-stack entry. Every field is optional; zero values fall
// back to driver.DefaultOptions() in ToOptions.
type Config struct {
	Strategy      string              `toml:"strategy"` // "ils" | "genetic"
	Seed          int64               `toml:"seed"`
	MaxRuntimeSec float64             `toml:"max_runtime_seconds"`
	MaxIterations int                 `toml:"max_iterations"`
	ILS           ilsConfig           `toml:"ils"`
	Genetic       geneticConfig       `toml:"genetic"`
	Penalty       penaltyConfig       `toml:"penalty"`
	Neighbourhood neighbourhoodConfig `toml:"neighbourhood"`
	Population    populationConfig    `toml:"population"`
	Destroy       destroyConfig       `toml:"destroy"`
	Repair        repairConfig        `toml:"repair"`
	Construct     constructConfig     `toml:"construct"`
}
