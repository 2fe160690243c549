package localsearch

import "github.com/routeforge/vrpgo/model"

// nodeMove is a priced candidate mutation touching one or two routes. A
// negative delta means applying it lowers penalised cost.
type nodeMove struct {
	routeIdx []int
	routes   []*model.Route
	delta    float64
}

func (m nodeMove) applicable() bool { return m.routes != nil }

// nodeOperator evaluates a candidate move between client U (in route ru)
// and endpoint V (a client index, or startDepotMarker/endDepotMarker
// meaning "route rv's own depot"), in route rv. ru may equal rv.
type nodeOperator struct {
	name string
	eval func(sol *model.Solution, ctx evalCtx, ru, u, rv, v int) nodeMove
}

// nodeOperators is the registry evaluated for every scanned (U, V) pair,
// per §4.5's "evaluate each registered node operator for (U, V)".
var nodeOperators = []nodeOperator{
	{name: "relocate-one", eval: relocateOne},
	{name: "relocate-two", eval: relocateTwo},
	{name: "swap-one-one", eval: swapOneOne},
	{name: "swap-two-one", eval: swapTwoOne},
	{name: "swap-two-two", eval: swapTwoTwo},
	{name: "two-opt", eval: twoOpt},
}

// priceOneRoute rebuilds ru's candidate arrangement and prices it against
// the original.
func priceOneRoute(sol *model.Solution, ctx evalCtx, ru int, candidate []int) nodeMove {
	orig := sol.Routes[ru]
	clone, err := rebuildRoute(orig.Problem(), orig.VehicleType, len(candidate), candidate)
	if err != nil {
		return nodeMove{}
	}
	delta := routeContribution(clone, ctx.multipliers, ctx.fixedCost) - routeContribution(orig, ctx.multipliers, ctx.fixedCost)
	return nodeMove{routeIdx: []int{ru}, routes: []*model.Route{clone}, delta: delta}
}

// priceTwoRoutes is priceOneRoute's two-route analogue.
func priceTwoRoutes(sol *model.Solution, ctx evalCtx, ru, rv int, candA, candB []int) nodeMove {
	origA, origB := sol.Routes[ru], sol.Routes[rv]
	cloneA, err := rebuildRoute(origA.Problem(), origA.VehicleType, len(candA), candA)
	if err != nil {
		return nodeMove{}
	}
	cloneB, err := rebuildRoute(origB.Problem(), origB.VehicleType, len(candB), candB)
	if err != nil {
		return nodeMove{}
	}
	before := routeContribution(origA, ctx.multipliers, ctx.fixedCost) + routeContribution(origB, ctx.multipliers, ctx.fixedCost)
	after := routeContribution(cloneA, ctx.multipliers, ctx.fixedCost) + routeContribution(cloneB, ctx.multipliers, ctx.fixedCost)
	return nodeMove{routeIdx: []int{ru, rv}, routes: []*model.Route{cloneA, cloneB}, delta: after - before}
}

// relocateOne moves a single client U to sit immediately after V (or a
// depot of V's route).
func relocateOne(sol *model.Solution, ctx evalCtx, ru, u, rv, v int) nodeMove {
	clientsA := sol.Routes[ru].Clients()
	pu := indexOfClient(clientsA, u)
	if pu < 0 {
		return nodeMove{}
	}
	newA := removeAt(clientsA, pu)

	if ru == rv {
		pos, ok := anchorPosition(newA, v)
		if !ok {
			return nodeMove{}
		}
		return priceOneRoute(sol, ctx, ru, insertAt(newA, pos, u))
	}

	clientsB := sol.Routes[rv].Clients()
	pos, ok := anchorPosition(clientsB, v)
	if !ok {
		return nodeMove{}
	}
	newB := insertAt(clientsB, pos, u)
	return priceTwoRoutes(sol, ctx, ru, rv, newA, newB)
}

// relocateTwo moves U together with its immediate route successor.
func relocateTwo(sol *model.Solution, ctx evalCtx, ru, u, rv, v int) nodeMove {
	clientsA := sol.Routes[ru].Clients()
	pu := indexOfClient(clientsA, u)
	if pu < 0 || pu+1 >= len(clientsA) {
		return nodeMove{}
	}
	u2 := clientsA[pu+1]
	if u2 == v {
		return nodeMove{}
	}
	newA := removeAt(removeAt(clientsA, pu+1), pu)

	if ru == rv {
		pos, ok := anchorPosition(newA, v)
		if !ok {
			return nodeMove{}
		}
		return priceOneRoute(sol, ctx, ru, insertAt(insertAt(newA, pos, u2), pos, u))
	}

	clientsB := sol.Routes[rv].Clients()
	pos, ok := anchorPosition(clientsB, v)
	if !ok {
		return nodeMove{}
	}
	newB := insertAt(insertAt(clientsB, pos, u2), pos, u)
	return priceTwoRoutes(sol, ctx, ru, rv, newA, newB)
}

// swapOneOne exchanges the positions of two single clients U and V; V must
// be a genuine client (swaps have no meaning against a bare depot).
func swapOneOne(sol *model.Solution, ctx evalCtx, ru, u, rv, v int) nodeMove {
	if v < 0 {
		return nodeMove{}
	}
	clientsA := sol.Routes[ru].Clients()
	pu := indexOfClient(clientsA, u)
	if pu < 0 {
		return nodeMove{}
	}

	if ru == rv {
		pv := indexOfClient(clientsA, v)
		if pv < 0 {
			return nodeMove{}
		}
		newA := make([]int, len(clientsA))
		copy(newA, clientsA)
		newA[pu], newA[pv] = newA[pv], newA[pu]
		return priceOneRoute(sol, ctx, ru, newA)
	}

	clientsB := sol.Routes[rv].Clients()
	pv := indexOfClient(clientsB, v)
	if pv < 0 {
		return nodeMove{}
	}
	newA := make([]int, len(clientsA))
	copy(newA, clientsA)
	newA[pu] = v
	newB := make([]int, len(clientsB))
	copy(newB, clientsB)
	newB[pv] = u
	return priceTwoRoutes(sol, ctx, ru, rv, newA, newB)
}

// swapTwoOne exchanges the 2-client segment (U, successor-of-U) for the
// single client V.
func swapTwoOne(sol *model.Solution, ctx evalCtx, ru, u, rv, v int) nodeMove {
	if v < 0 {
		return nodeMove{}
	}
	clientsA := sol.Routes[ru].Clients()
	pu := indexOfClient(clientsA, u)
	if pu < 0 || pu+1 >= len(clientsA) {
		return nodeMove{}
	}
	u2 := clientsA[pu+1]
	if u2 == v || u == v {
		return nodeMove{}
	}

	if ru == rv {
		pv := indexOfClient(clientsA, v)
		if pv < 0 || (pv >= pu && pv <= pu+1) {
			return nodeMove{}
		}
		trimmed := removeAt(clientsA, pv)
		// pu may have shifted down by one if v preceded the segment.
		if pv < pu {
			pu--
		}
		newA := removeAt(removeAt(trimmed, pu+1), pu)
		// Re-anchor the removed pair where v used to sit: find v's
		// neighbour (the client now at position pv in trimmed, or the
		// depot if pv is out of range) and insert after it.
		var anchor int
		if pv == 0 {
			anchor = startDepotMarker
		} else {
			anchor = trimmed[pv-1]
		}
		insertPos, ok2 := anchorPosition(newA, anchor)
		if !ok2 {
			return nodeMove{}
		}
		return priceOneRoute(sol, ctx, ru, insertAt(insertAt(newA, insertPos, u2), insertPos, u))
	}

	clientsB := sol.Routes[rv].Clients()
	pv := indexOfClient(clientsB, v)
	if pv < 0 {
		return nodeMove{}
	}
	newA := removeAt(removeAt(clientsA, pu+1), pu)
	trimmedB := removeAt(clientsB, pv)
	var anchor int
	if pv == 0 {
		anchor = startDepotMarker
	} else {
		anchor = trimmedB[pv-1]
	}
	insertPos, ok := anchorPosition(trimmedB, anchor)
	if !ok {
		return nodeMove{}
	}
	newB := insertAt(insertAt(trimmedB, insertPos, u2), insertPos, u)
	return priceTwoRoutes(sol, ctx, ru, rv, newA, newB)
}

// swapTwoTwo exchanges the 2-client segment at U with the 2-client segment
// starting at V.
func swapTwoTwo(sol *model.Solution, ctx evalCtx, ru, u, rv, v int) nodeMove {
	if v < 0 {
		return nodeMove{}
	}
	clientsA := sol.Routes[ru].Clients()
	pu := indexOfClient(clientsA, u)
	if pu < 0 || pu+1 >= len(clientsA) {
		return nodeMove{}
	}
	u2 := clientsA[pu+1]

	clientsB := sol.Routes[rv].Clients()
	pv := indexOfClient(clientsB, v)
	if pv < 0 || pv+1 >= len(clientsB) {
		return nodeMove{}
	}
	v2 := clientsB[pv+1]
	if ru == rv && pv >= pu && pv <= pu+1 {
		return nodeMove{}
	}

	if ru == rv {
		// Disjoint 2-segments within one route: swap the two pairs in place.
		newA := make([]int, len(clientsA))
		copy(newA, clientsA)
		newA[pu], newA[pu+1] = v, v2
		newA[pv], newA[pv+1] = u, u2
		return priceOneRoute(sol, ctx, ru, newA)
	}

	newA := make([]int, len(clientsA))
	copy(newA, clientsA)
	newA[pu], newA[pu+1] = v, v2
	newB := make([]int, len(clientsB))
	copy(newB, clientsB)
	newB[pv], newB[pv+1] = u, u2
	return priceTwoRoutes(sol, ctx, ru, rv, newA, newB)
}

// twoOpt reverses the segment strictly between U and V when both lie on
// the same route (the classic 2-opt move), or exchanges the route tails
// after U and after V when they lie on different routes (the teacher's
// 2-opt* "tail swap", generalised to heterogeneous routes).
func twoOpt(sol *model.Solution, ctx evalCtx, ru, u, rv, v int) nodeMove {
	if v < 0 {
		return nodeMove{}
	}
	clientsA := sol.Routes[ru].Clients()
	pu := indexOfClient(clientsA, u)
	if pu < 0 {
		return nodeMove{}
	}

	if ru == rv {
		pv := indexOfClient(clientsA, v)
		if pv < 0 || pv == pu {
			return nodeMove{}
		}
		lo, hi := pu, pv
		if lo > hi {
			lo, hi = hi, lo
		}
		newA := make([]int, len(clientsA))
		copy(newA, clientsA)
		for i, j := lo, hi; i < j; i, j = i+1, j-1 {
			newA[i], newA[j] = newA[j], newA[i]
		}
		return priceOneRoute(sol, ctx, ru, newA)
	}

	clientsB := sol.Routes[rv].Clients()
	pv := indexOfClient(clientsB, v)
	if pv < 0 {
		return nodeMove{}
	}
	// Exchange the tails after u and after v between the two routes.
	newA := append(append([]int{}, clientsA[:pu+1]...), clientsB[pv+1:]...)
	newB := append(append([]int{}, clientsB[:pv+1]...), clientsA[pu+1:]...)
	return priceTwoRoutes(sol, ctx, ru, rv, newA, newB)
}
