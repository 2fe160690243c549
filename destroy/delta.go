package destroy

import "github.com/routeforge/vrpgo/model"

// rebuildRoute reconstructs a route of the given vehicle type from a plain
// ordered client slice — the same materialize-once discipline
// localsearch/delta.go and repair/delta.go use for candidate orderings.
func rebuildRoute(pd *model.ProblemData, vehicleType int, capacity int, clients []int) (*model.Route, error) {
	r := model.NewRoute(pd, vehicleType, capacity)
	for i, c := range clients {
		if err := r.InsertAt(i, c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// centroidOf returns the unweighted (x, y) average of the given clients'
// coordinates, or (0, 0) for an empty slice — the plain-slice equivalent
// of model.Route.Centroid, needed here because StringRemoval tracks
// candidate route contents as []int until the final rebuild.
func centroidOf(pd *model.ProblemData, clients []int) (float64, float64) {
	if len(clients) == 0 {
		return 0, 0
	}
	var x, y float64
	for _, c := range clients {
		cl := pd.Clients[c]
		x += cl.X
		y += cl.Y
	}
	n := float64(len(clients))
	return x / n, y / n
}
