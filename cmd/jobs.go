package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/discovery"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search current job listings",
	RunE: func(cmd *cobra.Command, args []string) error {
		field, _ := cmd.Flags().GetString("field")
		location, _ := cmd.Flags().GetString("location")
		experience, _ := cmd.Flags().GetString("experience")
		salary, _ := cmd.Flags().GetString("salary")

		svc, closeStore, err := discoveryService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Println("Searching job listings...")
		jobs, err := svc.Jobs(cmd.Context(), discovery.JobFilters{
			Field:      field,
			Location:   location,
			Experience: experience,
			Salary:     salary,
		})
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Println("No jobs found. Try broader filters.")
			return nil
		}

		for _, j := range jobs {
			fmt.Printf("\n%s — %s (%s)\n", j.Title, j.Company, j.Location)
			if j.Summary != "" {
				fmt.Printf("  %s\n", j.Summary)
			}
			if j.SalaryRange != "" {
				fmt.Printf("  Salary: %s\n", j.SalaryRange)
			}
			if j.ExperienceRequired != "" {
				fmt.Printf("  Experience: %s\n", j.ExperienceRequired)
			}
			if j.Link != "" {
				fmt.Printf("  %s\n", j.Link)
			}
		}
		return nil
	},
}

func init() {
	jobsCmd.Flags().StringP("field", "f", "", "Career field or role")
	jobsCmd.Flags().StringP("location", "l", "", "Location or 'remote'")
	jobsCmd.Flags().StringP("experience", "e", "", "Experience level")
	jobsCmd.Flags().StringP("salary", "s", "", "Desired salary range")
}
