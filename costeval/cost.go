package costeval

import (
	"math"

	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/penalty"
)

// FixedVehicleCost is charged once per non-empty route. The teacher's
// tsp package has no notion of a per-vehicle fixed cost (TSP has exactly
// one vehicle); vrpgo's fleet is heterogeneous, so Evaluate must separate
// "distance" from "cost of using a vehicle at all" the way §4.2 specifies.
type FixedVehicleCost func(vehicleType int) int64

// ZeroFixedCost is the FixedVehicleCost used when the problem does not
// distinguish vehicle activation cost.
func ZeroFixedCost(int) int64 { return 0 }

// unvisitedRequiredPenalty is charged once per required-but-unvisited client; §4.2
// folds "prize_penalty for unvisited required clients" into cost, which in
// vrpgo's data model is simply the sum of each missing client's Prize plus
// a large constant so the optimizer always prefers visiting a required
// client over skipping it.
const unvisitedRequiredPenalty = 1_000_000

// Evaluate computes the penalised cost of s under m, per §4.2:
//
//	cost = distance
//	     + m.Load     * excess_load
//	     + m.TimeWarp * total_time_warp
//	     + m.Distance * excess_distance
//	     + m.Duration * excess_duration
//	     + fixed_vehicle_costs
//	     + prize_penalty_for_unvisited_required
//
// Evaluate is pure: the same (s, m, fixedCost) always yields the same
// result, and it touches no shared state, satisfying §4.2's thread-safety
// requirement trivially. Once a running sum reaches model.MaxValue the
// result is +Inf (§7) rather than an overflowed value.
func Evaluate(s *model.Solution, m penalty.Multipliers, fixedCost FixedVehicleCost) float64 {
	if fixedCost == nil {
		fixedCost = ZeroFixedCost
	}
	cost := float64(s.TotalDistance())
	cost = saturatingAdd(cost, m.Load*float64(s.ExcessLoad()))
	cost = saturatingAdd(cost, m.TimeWarp*float64(s.TotalTimeWarp()))
	cost = saturatingAdd(cost, m.Distance*float64(s.ExcessDistance()))
	cost = saturatingAdd(cost, m.Duration*float64(s.ExcessDuration()))

	for _, r := range s.Routes {
		if !r.Empty() {
			cost = saturatingAdd(cost, float64(fixedCost(r.VehicleType)))
		}
	}

	missing := requiredUnvisited(s)
	for _, c := range missing {
		cost = saturatingAdd(cost, float64(unvisitedRequiredPenalty+c.Prize))
	}
	return cost
}

// FeasibleOnly returns Evaluate's result when s is feasible, or +Inf
// otherwise (§4.2's "feasible-only variant").
func FeasibleOnly(s *model.Solution, m penalty.Multipliers, fixedCost FixedVehicleCost) float64 {
	if !s.Feasible() {
		return math.Inf(1)
	}
	return Evaluate(s, m, fixedCost)
}

func requiredUnvisited(s *model.Solution) []model.Client {
	if s.NumMissingRequired() == 0 {
		return nil
	}
	visited := make(map[int]bool, s.Problem.NumClients())
	for _, r := range s.Routes {
		for _, c := range r.Clients() {
			visited[c] = true
		}
	}
	for _, u := range s.Unassigned {
		visited[u] = false
	}
	out := make([]model.Client, 0, s.NumMissingRequired())
	for i, c := range s.Problem.Clients {
		if c.Required && !visited[i] {
			out = append(out, c)
		}
	}
	return out
}

// saturatingAdd returns +Inf once the running sum reaches model.MaxValue, §7's numeric
// overflow policy: "each running sum is saturated at the integer maximum;
// if reached during evaluation, the solution is treated as strictly worse
// than any finite-cost solution and not inserted into the population" — we
// implement that by returning +Inf once the saturation boundary is crossed,
// which Evaluate's caller always compares with "lower is better" and so
// will never prefer it.
func saturatingAdd(a, b float64) float64 {
	sum := a + b
	if sum >= float64(model.MaxValue) || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return math.Inf(1)
	}
	return sum
}
