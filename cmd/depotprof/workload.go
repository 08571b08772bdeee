package main

import (
	"github.com/rs/zerolog"

	"github.com/TheBitDrifter/depot"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type stats struct {
	matched  int
	checksum float64
}

// run builds one world per round. Every entity gets a position and every fourth one a
// velocity; the movers are then stepped once through a query.
func run(logger zerolog.Logger, rounds, entities int) stats {
	var s stats
	for range rounds {
		world := depot.Factory.NewWorld(depot.WithCapacity(entities), depot.WithLogger(logger))
		for i := range entities {
			b := depot.Insert(world.Spawn(), position{X: float64(i)})
			if i%4 == 0 {
				depot.Insert(b, velocity{X: 1, Y: 2})
			}
		}

		query := depot.With[velocity](depot.With[position](world.Query()))
		s.matched += len(query.Matches())
		positions, _ := depot.Get[position](query)
		for e, pos := range positions {
			vel, _ := depot.ComponentMut[velocity](world, e)
			pos.X += vel.X
			pos.Y += vel.Y
			s.checksum += pos.X + pos.Y
		}
		world.Log(zerolog.DebugLevel)
	}
	return s
}
