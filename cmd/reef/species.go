package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/species"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List the playable species",
	Long:  `Shows every playable species with its movement stats.`,
	Run:   runSpecies,
}

func runSpecies(_ *cobra.Command, _ []string) {
	all := species.All()

	maxIDLen := 2 // "ID" header
	for _, sp := range all {
		maxIDLen = max(maxIDLen, len(sp.ID()))
	}

	fmt.Println("Playable species:")
	fmt.Println()
	fmt.Printf("  %-*s  %-11s  %5s  %7s  %5s  %5s\n", maxIDLen, "ID", "Name", "Speed", "Agility", "Boost", "Scale")
	fmt.Printf("  %-*s  %-11s  %5s  %7s  %5s  %5s\n", maxIDLen, "--", "----", "-----", "-------", "-----", "-----")
	for _, sp := range all {
		st := sp.Stats()
		fmt.Printf("  %-*s  %-11s  %5.1f  %7.1f  %5.1f  %5.2f\n",
			maxIDLen, sp.ID(), sp.String(), st.Speed, st.Agility, st.BoostPower, sp.Palette().Scale)
	}

	fmt.Println()
	fmt.Println("Run 'reef play <id>' to swim as a species.")
}
