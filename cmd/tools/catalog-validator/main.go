// cmd/tools/catalog-validator/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vaibhavisingh876/SwarSaathi/internal/catalog"
)

func main() {
	path := flag.String("path", "", "Path to a scheme catalog JSON file (default: embedded seed)")
	list := flag.Bool("list", false, "List scheme IDs after validation")
	flag.Parse()

	var (
		cat *catalog.Catalog
		err error
	)
	if *path == "" {
		cat, err = catalog.LoadEmbedded()
	} else {
		cat, err = catalog.LoadFile(*path)
	}
	if err != nil {
		fmt.Printf("Catalog validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Catalog validation passed. Found %d schemes.\n", cat.Len())

	if *list {
		for _, s := range cat.All() {
			ceiling := "no income ceiling"
			if s.Ceiling != nil {
				ceiling = fmt.Sprintf("ceiling ₹%.0f", s.Ceiling.AbsoluteAmount())
			}
			fmt.Printf("  %-30s %-8s %-10s %s\n", s.ID, s.Scope, s.Gender, ceiling)
		}
	}
}
