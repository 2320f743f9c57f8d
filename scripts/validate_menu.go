package main

import (
	"fmt"
	"log"
	"os"

	"github.com/your-org/catering-storefront/internal/domain/catalog"
	"github.com/your-org/catering-storefront/internal/domain/pricing"
)

func main() {
	path := "menu.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	store := catalog.NewStore()
	if err := store.LoadFile(path); err != nil {
		log.Fatal("Menu validation failed:", err)
	}

	fmt.Printf("Menu: %s (%s)\n", path, store.Currency())
	fmt.Printf("Categories: %d, Products: %d, Sets: %d\n",
		len(store.Categories()), len(store.Products()), len(store.Sets()))

	// Flag set rows that point at products missing from the document
	calc := pricing.NewCalculator(store)
	broken := 0
	for _, def := range store.Sets() {
		for _, b := range def.Base {
			if _, ok := store.Product(b.ProductID); !ok {
				fmt.Printf("WARNING: set %q references unknown product %q\n", def.ID, b.ProductID)
				broken++
			}
		}
		fmt.Printf("  %s: %d persons, default total %s\n",
			def.ID, def.DefaultPersons, calc.SetDefaultTotal(&def).StringFixed(2))
	}

	if broken > 0 {
		log.Fatalf("Menu has %d broken set references", broken)
	}
	fmt.Println("Menu is valid")
}
