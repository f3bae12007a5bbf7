package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/discovery"
)

var mentorsCmd = &cobra.Command{
	Use:   "mentors",
	Short: "Find mentors in a career field",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, _ := cmd.Flags().GetString("field")
		experience, _ := cmd.Flags().GetString("experience")
		location, _ := cmd.Flags().GetString("location")

		svc, closeStore, err := discoveryService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Println("Searching for mentors...")
		mentors, err := svc.Mentors(cmd.Context(), discovery.MentorFilters{
			Field:      field,
			Experience: experience,
			Location:   location,
		})
		if err != nil {
			return err
		}
		if len(mentors) == 0 {
			fmt.Println("No mentors found. Try broader filters.")
			return nil
		}

		for _, m := range mentors {
			fmt.Printf("\n%s — %s at %s\n", m.Name, m.Title, m.Company)
			if m.Specialization != "" {
				fmt.Printf("  Specializes in %s (%s experience)\n", m.Specialization, m.ExperienceYears)
			}
			if m.Bio != "" {
				fmt.Printf("  %s\n", m.Bio)
			}
			if len(m.Skills) > 0 {
				fmt.Printf("  Skills: %s\n", strings.Join(m.Skills, ", "))
			}
			if m.MentoringFocus != "" {
				fmt.Printf("  Focus: %s\n", m.MentoringFocus)
			}
			if m.Availability != "" || m.Cost != "" {
				fmt.Printf("  Availability: %s  Cost: %s\n", m.Availability, m.Cost)
			}
			if m.ProfileURL != "" {
				fmt.Printf("  %s (%s)\n", m.ProfileURL, m.Platform)
			}
		}
		return nil
	},
}

func init() {
	mentorsCmd.Flags().StringP("field", "f", "", "Career field to search in")
	mentorsCmd.Flags().StringP("experience", "e", "", "Desired experience level")
	mentorsCmd.Flags().StringP("location", "l", "", "Preferred location")
}
