/*
Package depot provides an entity–component store with ad hoc intersection queries.

Components of any Go type are attached to opaque entity keys without declaring a schema
first. Entities and components are addressed through keys into pluggable slot storages
(see package storage), never through references held by the world.

Core Concepts:

  - Entity: a key issued by the world's entity table. It owns at most one component per type.
  - Component: any Go value. All components of one type live in that type's table.
  - Handle: the slot key of an entity's component inside its type's table.
  - Query: a sequence of With clauses (logical AND) resolved by Get.

Basic Usage:

	world := depot.Factory.NewWorld()

	mike := world.Spawn()
	depot.Insert(mike, Player{Name: "Mike"})
	depot.Insert(mike, Age(15))
	depot.Insert(mike, Footballer{})

	query := world.Query()
	depot.With[Footballer](query)
	ages, _ := depot.Get[Age](query)
	for entity, age := range ages {
		player, _ := depot.ComponentMut[Player](world, entity)
		fmt.Println(player.Name, *age)
	}

Custom keys and storages plug in through Backend and FactoryNewWorld, or per component type
through RegisterStorage.

A World is not safe for concurrent use.
*/
package depot
