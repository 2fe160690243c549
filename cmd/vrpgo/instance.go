package main

import (
	"encoding/json"
	"math"
	"os"

	"github.com/pkg/errors"

	"github.com/routeforge/vrpgo/matrix"
	"github.com/routeforge/vrpgo/model"
)

// instanceDoc is the minimal JSON instance format this CLI reads. The
// VRPLIB/Solomon parser is an explicit non-goal (spec.md §1); this format
// exists only so `solve` has something to point at, the same role the
// teacher's examples/ hand-rolled Euclidean matrices play for tsp.TSPApprox.
type instanceDoc struct {
	RoundingPolicy string          `json:"rounding_policy"` // "nearest"|"trunc"|"dimacs"|"exact"|"none", default "nearest"
	Depots         []instanceDepot `json:"depots"`
	Clients        []instanceClient `json:"clients"`
	VehicleTypes   []instanceVehicleType `json:"vehicle_types"`
}

type instanceDepot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type instanceClient struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	DeliveryDemand  int64   `json:"delivery_demand"`
	PickupDemand    int64   `json:"pickup_demand"`
	ServiceDuration int64   `json:"service_duration"`
	TWEarly         int64   `json:"tw_early"`
	TWLate          int64   `json:"tw_late"`
	ReleaseTime     int64   `json:"release_time"`
	Prize           int64   `json:"prize"`
	Required        bool    `json:"required"`
	GroupID         int     `json:"group_id"`
}

type instanceVehicleType struct {
	Name         string `json:"name"`
	NumAvailable int    `json:"num_available"`
	Capacity     int64  `json:"capacity"`
	StartDepot   int    `json:"start_depot"`
	EndDepot     int    `json:"end_depot"`
	TWEarly      int64  `json:"tw_early"`
	TWLate       int64  `json:"tw_late"`
	MaxDuration  int64  `json:"max_duration"`
	MaxDistance  int64  `json:"max_distance"`
}

func roundingPolicyNamed(name string) (matrix.RoundingPolicy, error) {
	switch name {
	case "", "nearest":
		return matrix.RoundNearest, nil
	case "trunc":
		return matrix.RoundTrunc, nil
	case "dimacs":
		return matrix.RoundDimacs, nil
	case "exact":
		return matrix.RoundExact, nil
	case "none":
		return matrix.RoundNone, nil
	default:
		return 0, errors.Errorf("cmd/vrpgo: unrecognised rounding policy %q", name)
	}
}

// loadInstance reads path as instanceDoc JSON and builds a ProblemData. A
// single distance/duration profile is derived: Euclidean distance over
// every depot+client coordinate, rounded per RoundingPolicy, reused for
// both distance and duration (duration == distance, i.e. unit speed) since
// the minimal format carries no separate travel-time matrix.
func loadInstance(path string) (*model.ProblemData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cmd/vrpgo: read instance %s", path)
	}
	var doc instanceDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "cmd/vrpgo: parse instance %s", path)
	}
	if len(doc.Depots) == 0 {
		return nil, errors.New("cmd/vrpgo: instance declares no depots")
	}

	policy, err := roundingPolicyNamed(doc.RoundingPolicy)
	if err != nil {
		return nil, err
	}

	n := len(doc.Depots) + len(doc.Clients)
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for _, d := range doc.Depots {
		xs = append(xs, d.X)
		ys = append(ys, d.Y)
	}
	for _, c := range doc.Clients {
		xs = append(xs, c.X)
		ys = append(ys, c.Y)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
		}
	}
	dense, err := matrix.NewFromFloats(rows, policy)
	if err != nil {
		return nil, errors.Wrap(err, "cmd/vrpgo: build distance matrix")
	}

	depots := make([]model.Depot, len(doc.Depots))
	for i, d := range doc.Depots {
		depots[i] = model.Depot{X: d.X, Y: d.Y}
	}
	clients := make([]model.Client, len(doc.Clients))
	for i, c := range doc.Clients {
		clients[i] = model.Client{
			X: c.X, Y: c.Y,
			DeliveryDemand:  c.DeliveryDemand,
			PickupDemand:    c.PickupDemand,
			ServiceDuration: c.ServiceDuration,
			TWEarly:         c.TWEarly,
			TWLate:          c.TWLate,
			ReleaseTime:     c.ReleaseTime,
			Prize:           c.Prize,
			Required:        c.Required,
			GroupID:         c.GroupID,
		}
	}
	vehicleTypes := make([]model.VehicleType, len(doc.VehicleTypes))
	for i, vt := range doc.VehicleTypes {
		vehicleTypes[i] = model.VehicleType{
			Name:         vt.Name,
			NumAvailable: vt.NumAvailable,
			Capacity:     vt.Capacity,
			StartDepot:   vt.StartDepot,
			EndDepot:     vt.EndDepot,
			TWEarly:      vt.TWEarly,
			TWLate:       vt.TWLate,
			MaxDuration:  vt.MaxDuration,
			MaxDistance:  vt.MaxDistance,
		}
	}

	return &model.ProblemData{
		Depots:       depots,
		Clients:      clients,
		VehicleTypes: vehicleTypes,
		Distances:    []matrix.DistanceMatrix{matrix.NewDistanceMatrix(dense)},
		Durations:    []matrix.DurationMatrix{matrix.NewDurationMatrix(dense)},
	}, nil
}
