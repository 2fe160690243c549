package localsearch

import "github.com/routeforge/vrpgo/model"

// routeOperator evaluates moves defined on a pair of whole routes, per
// §4.5's "route operators ... evaluate moves defined on full routes (e.g.
// SWAP* exchange, 2-opt* between two routes)". Unlike node operators it
// searches internally for the best candidate within the pair and returns
// a single priced move (or one with applicable() == false).
type routeOperator struct {
	name string
	eval func(sol *model.Solution, ctx evalCtx, ru, rv int) nodeMove
}

// routeOperators runs after node operators converge, per §4.5 step 3.
var routeOperators = []routeOperator{
	{name: "swap-star", eval: routeSwapStar},
	{name: "two-opt-star", eval: routeTwoOptStar},
}

// routeSwapStar is a simplified SWAP*: it searches every pair of clients
// (one from each route) for the best single-for-single exchange between
// the two routes, the generalisation of the node-level swap-one-one move
// to a full route-pair scan rather than a granular-neighbourhood scan.
func routeSwapStar(sol *model.Solution, ctx evalCtx, ru, rv int) nodeMove {
	if ru == rv {
		return nodeMove{}
	}
	clientsA := sol.Routes[ru].Clients()
	clientsB := sol.Routes[rv].Clients()
	if len(clientsA) == 0 || len(clientsB) == 0 {
		return nodeMove{}
	}

	best := nodeMove{}
	for _, a := range clientsA {
		for _, b := range clientsB {
			m := swapOneOne(sol, ctx, ru, a, rv, b)
			if !m.applicable() {
				continue
			}
			if !best.applicable() || m.delta < best.delta {
				best = m
			}
		}
	}
	return best
}

// routeTwoOptStar searches every split-point pair (i in route ru, j in
// route rv) for the best tail exchange between the two routes, the
// route-pair generalisation of the node-level two-opt "between routes"
// case.
func routeTwoOptStar(sol *model.Solution, ctx evalCtx, ru, rv int) nodeMove {
	if ru == rv {
		return nodeMove{}
	}
	clientsA := sol.Routes[ru].Clients()
	clientsB := sol.Routes[rv].Clients()
	if len(clientsA) == 0 || len(clientsB) == 0 {
		return nodeMove{}
	}

	best := nodeMove{}
	for _, a := range clientsA {
		for _, b := range clientsB {
			m := twoOpt(sol, ctx, ru, a, rv, b)
			if !m.applicable() {
				continue
			}
			if !best.applicable() || m.delta < best.delta {
				best = m
			}
		}
	}
	return best
}
