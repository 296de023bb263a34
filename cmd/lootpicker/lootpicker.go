// Command lootpicker is a small demo of the shufflebag package. It fills a
// bag with loot drops of different rarities (rarity is just duplicate
// tickets), then prints a few full cycles of grants, each one stamped with
// its own grant ID.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Parkreiner/shufflebag"
	"github.com/google/uuid"
)

type lootDrop struct {
	name    string
	tickets int
}

// Ticket counts per drop. More tickets means the drop shows up more often,
// but every drop still appears exactly its ticket count per cycle. Kept as
// an ordered slice so that a fixed seed reproduces the same draw sequence.
var lootTable = []lootDrop{
	{name: "gold pile", tickets: 4},
	{name: "health potion", tickets: 3},
	{name: "iron sword", tickets: 2},
	{name: "enchanted amulet", tickets: 1},
}

func main() {
	seed := flag.Int64("seed", 0, "RNG seed for reproducible draws (0 uses the current time)")
	cycles := flag.Int("cycles", 3, "number of full bag cycles to draw")
	flag.Parse()

	var bag *shufflebag.Bag[string]
	if *seed == 0 {
		bag = shufflebag.New[string]()
	} else {
		bag = shufflebag.NewSeeded[string](*seed)
	}

	bagSize := 0
	for _, drop := range lootTable {
		for range drop.tickets {
			bag.Add(drop.name)
		}
		bagSize += drop.tickets
	}

	for c := 1; c <= *cycles; c++ {
		fmt.Printf("--- cycle %d ---\n", c)
		for range bagSize {
			drop, err := bag.NextItem()
			if err != nil {
				fmt.Fprintf(os.Stderr, "draw failed: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("grant %s: %s\n", uuid.NewString(), drop)
		}
	}
}
