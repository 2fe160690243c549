package localsearch

import (
	"github.com/routeforge/vrpgo/costeval"
	"github.com/routeforge/vrpgo/model"
	"github.com/routeforge/vrpgo/neighbourhood"
	"github.com/routeforge/vrpgo/penalty"
	"github.com/routeforge/vrpgo/rng"
)

// Run drives sol to a local optimum under the fixed multipliers mult,
// per §4.5's main loop: alternating node-operator passes (scanning a
// random permutation of clients against their granular neighbours) and
// route-operator passes (scanning every pair of routes), until neither
// finds an improvement. sol is mutated in
// place.
func Run(sol *model.Solution, tbl *neighbourhood.Table, src *rng.Source, mult penalty.Multipliers, fixedCost costeval.FixedVehicleCost, opts Options) error {
	if tbl == nil {
		return ErrNoNeighbourhood
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if fixedCost == nil {
		fixedCost = costeval.ZeroFixedCost
	}
	ctx := evalCtx{multipliers: mult, fixedCost: fixedCost, eps: opts.Eps}

	for pass := 0; opts.MaxPasses == 0 || pass < opts.MaxPasses; pass++ {
		nodeImproved := runNodePass(sol, tbl, src, ctx, opts)
		routeImproved := false
		if !nodeImproved {
			routeImproved = runRoutePass(sol, ctx)
		}
		if !nodeImproved && !routeImproved {
			break
		}
	}
	return nil
}

// runNodePass repeats single scans until one completes without applying a
// move, returning whether any move was ever applied during the pass.
func runNodePass(sol *model.Solution, tbl *neighbourhood.Table, src *rng.Source, ctx evalCtx, opts Options) bool {
	improvedAny := false
	for scanOnce(sol, tbl, src, ctx, opts) {
		improvedAny = true
	}
	return improvedAny
}

// scanOnce draws one fresh random permutation of currently routed clients
// and applies at most one improving move, restarting the caller's loop;
// it returns false once a full permutation yields no applicable move,
// signalling the node pass has converged (§4.5 step 4).
func scanOnce(sol *model.Solution, tbl *neighbourhood.Table, src *rng.Source, ctx evalCtx, opts Options) bool {
	clients := assignedClients(sol)
	if len(clients) == 0 {
		return false
	}
	loc := locateClients(sol)
	perm := src.PermRange(len(clients))

	for _, idx := range perm {
		u := clients[idx]
		ru, ok := loc[u]
		if !ok {
			continue
		}
		if m, ok := bestMoveFor(sol, tbl, ctx, loc, ru, u, opts.Policy == FirstImprovement); ok {
			applyMove(sol, m)
			return true
		}
	}
	return false
}

// assignedClients lists every client index currently visited by some route.
func assignedClients(sol *model.Solution) []int {
	out := make([]int, 0, sol.Problem.NumClients())
	for _, r := range sol.Routes {
		out = append(out, r.Clients()...)
	}
	return out
}

// locateClients maps each routed client to its owning route index.
func locateClients(sol *model.Solution) map[int]int {
	loc := make(map[int]int, sol.Problem.NumClients())
	for ri, r := range sol.Routes {
		for _, c := range r.Clients() {
			loc[c] = ri
		}
	}
	return loc
}

// bestMoveFor evaluates every registered node operator for client U against
// every V in U's granular neighbourhood plus both depots of U's own route,
// per §4.5 step 2. When firstImprovement is true it returns as soon as any
// strictly-improving move is found; otherwise it scans exhaustively and
// returns the best one.
func bestMoveFor(sol *model.Solution, tbl *neighbourhood.Table, ctx evalCtx, loc map[int]int, ru, u int, firstImprovement bool) (nodeMove, bool) {
	profile := sol.Problem.VehicleTypes[sol.Routes[ru].VehicleType].Profile
	neighbours := tbl.Neighbours(profile, u)

	type target struct{ rv, v int }
	targets := make([]target, 0, len(neighbours)+2)
	for _, v := range neighbours {
		if rv, ok := loc[v]; ok {
			targets = append(targets, target{rv, v})
		}
	}
	targets = append(targets, target{ru, startDepotMarker}, target{ru, endDepotMarker})

	var best nodeMove
	for _, t := range targets {
		for _, op := range nodeOperators {
			m := op.eval(sol, ctx, ru, u, t.rv, t.v)
			if !m.applicable() || m.delta >= -ctx.eps {
				continue
			}
			if firstImprovement {
				return m, true
			}
			if !best.applicable() || m.delta < best.delta {
				best = m
			}
		}
	}
	return best, best.applicable()
}

// runRoutePass evaluates every registered route operator over every pair
// of distinct routes and applies the single best improving move found,
// reporting whether it applied anything (§4.5 step 3). A full
// route-operator convergence loop mirrors runNodePass: it keeps finding
// and applying the best pairwise move until none improves.
func runRoutePass(sol *model.Solution, ctx evalCtx) bool {
	improvedAny := false
	for {
		var best nodeMove
		for ru := 0; ru < len(sol.Routes); ru++ {
			for rv := ru + 1; rv < len(sol.Routes); rv++ {
				for _, op := range routeOperators {
					m := op.eval(sol, ctx, ru, rv)
					if !m.applicable() || m.delta >= -ctx.eps {
						continue
					}
					if !best.applicable() || m.delta < best.delta {
						best = m
					}
				}
			}
		}
		if !best.applicable() {
			return improvedAny
		}
		applyMove(sol, best)
		improvedAny = true
	}
}

// applyMove commits a priced move's replacement route(s) into sol and
// refreshes the solution's cached aggregates.
func applyMove(sol *model.Solution, m nodeMove) {
	for i, idx := range m.routeIdx {
		sol.Routes[idx] = m.routes[i]
	}
	sol.Recompute()
}
