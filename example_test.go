package depot_test

import (
	"fmt"

	"github.com/TheBitDrifter/depot"
	"github.com/TheBitDrifter/depot/storage"
)

// Player names an entity
type Player string

// Age is a player's age in years
type Age int

// Footballer and Cricketer are marker components
type (
	Footballer struct{}
	Cricketer  struct{}
)

func spawnPlayer(world *depot.World[int], name string, age int, roles ...func(*depot.EntityBuilder[int])) {
	b := world.Spawn()
	depot.Insert(b, Player(name))
	depot.Insert(b, Age(age))
	for _, role := range roles {
		role(b)
	}
}

func cricketer(b *depot.EntityBuilder[int])  { depot.Insert(b, Cricketer{}) }
func footballer(b *depot.EntityBuilder[int]) { depot.Insert(b, Footballer{}) }

// Example_sports filters players by role and age
func Example_sports() {
	world := depot.Factory.NewWorld()
	spawnPlayer(world, "Mike", 15, cricketer, footballer)
	spawnPlayer(world, "Rahul", 18, cricketer, footballer)
	spawnPlayer(world, "Sam", 22, cricketer)

	// Footballers old enough for the senior squad
	ages, _ := depot.Get[Age](depot.With[Footballer](world.Query()))
	for entity, age := range ages {
		if *age < 16 {
			continue
		}
		name, _ := depot.Component[Player](world, entity)
		fmt.Println("senior footballer:", name)
	}

	// Every cricketer qualifies from 15
	ages, _ = depot.Get[Age](depot.With[Cricketer](world.Query()))
	for entity, age := range ages {
		if *age >= 15 {
			name, _ := depot.Component[Player](world, entity)
			fmt.Println("cricketer:", name)
		}
	}

	// Output:
	// senior footballer: Rahul
	// cricketer: Mike
	// cricketer: Rahul
	// cricketer: Sam
}

// Example_registerStorage stores one component type in an unboxed slab
func Example_registerStorage() {
	world := depot.Factory.NewWorld()
	if err := depot.RegisterStorage(world, storage.SlabFactory[Age]()); err != nil {
		fmt.Println(err)
		return
	}

	spawnPlayer(world, "Mike", 15)
	spawnPlayer(world, "Sam", 22)

	// Birthdays
	ages, _ := depot.Get[Age](depot.With[Player](world.Query()))
	for _, age := range ages {
		*age++
	}

	for entity := range world.Entities() {
		name, _ := depot.Component[Player](world, entity)
		age, _ := depot.Component[Age](world, entity)
		fmt.Printf("%s is %d\n", name, age)
	}

	err := depot.RegisterStorage(world, storage.SlabFactory[Age]())
	fmt.Println(err)

	// Output:
	// Mike is 16
	// Sam is 23
	// component table already created: depot_test.Age
}
