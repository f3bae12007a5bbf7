package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/discovery"
)

var universitiesCmd = &cobra.Command{
	Use:   "universities",
	Short: "Find universities for a major",
	RunE: func(cmd *cobra.Command, args []string) error {
		major, _ := cmd.Flags().GetString("major")
		location, _ := cmd.Flags().GetString("location")
		maxTuition, _ := cmd.Flags().GetInt("max-tuition")
		partTime, _ := cmd.Flags().GetBool("part-time-jobs")
		boarding, _ := cmd.Flags().GetBool("boarding")

		svc, closeStore, err := discoveryService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Println("Searching universities...")
		unis, err := svc.Universities(cmd.Context(), discovery.UniversityFilters{
			Major:        major,
			Location:     location,
			MaxTuition:   maxTuition,
			PartTimeJobs: partTime,
			Boarding:     boarding,
		})
		if err != nil {
			return err
		}
		if len(unis) == 0 {
			fmt.Println("No universities found. Try broader filters.")
			return nil
		}

		for _, u := range unis {
			fmt.Printf("\n%s — %s\n", u.Name, u.Location)
			if u.Description != "" {
				fmt.Printf("  %s\n", u.Description)
			}
			if u.ProgramHighlights != "" {
				fmt.Printf("  Programs: %s\n", u.ProgramHighlights)
			}
			if u.TuitionCost != "" {
				fmt.Printf("  Tuition: %s\n", u.TuitionCost)
			}
			if u.Website != "" {
				fmt.Printf("  %s\n", u.Website)
			}
		}
		return nil
	},
}

func init() {
	universitiesCmd.Flags().StringP("major", "m", "", "Intended major or program")
	universitiesCmd.Flags().StringP("location", "l", "", "Country or region")
	universitiesCmd.Flags().Int("max-tuition", 0, "Maximum yearly tuition in USD (0 = any)")
	universitiesCmd.Flags().Bool("part-time-jobs", false, "Prefer campuses with part-time job options")
	universitiesCmd.Flags().Bool("boarding", false, "Prefer on-campus housing")
}
