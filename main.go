package main

import (
	"log"
	"os"

	"github.com/TFMV/findr/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("findr: ")

	// Set up a deferred function to recover from panics.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v", r)
			os.Exit(1)
		}
	}()

	// Configuration errors and an inaccessible root exit non-zero before any
	// output; diagnostics during the walk never change the exit status.
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
