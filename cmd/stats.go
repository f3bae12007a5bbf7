package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/goals"
	"github.com/adit/pathwise/internal/profile"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show assessment and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
		p, err := profiles.Me(ctx)
		if err != nil {
			return onboardingHint(err)
		}

		total, err := st.AssessmentRepo().Count(ctx)
		if err != nil {
			return fmt.Errorf("count assessments: %w", err)
		}

		fmt.Printf("%s <%s>\n", p.FullName, p.Email)
		if p.SelectedCareerPath != nil && p.SelectedCareerPath.Field != "" {
			fmt.Printf("Career path: %s\n", p.SelectedCareerPath.Field)
		}
		fmt.Println()

		completed := len(p.AssessmentProgress.CompletedAssessments)
		fmt.Printf("Assessments: %d/%d completed (%d%%)\n",
			completed, total, p.AssessmentProgress.CompletionPercentage)

		results, err := st.ResultRepo().ListByUser(ctx, p.Email)
		if err != nil {
			return fmt.Errorf("list results: %w", err)
		}
		if len(results) > 0 {
			titles := map[string]string{}
			if entries, err := st.AssessmentRepo().List(ctx); err == nil {
				for _, e := range entries {
					titles[e.AssessmentID] = e.Title
				}
			}
			fmt.Println()
			fmt.Printf("%-34s  %-12s  %s\n", "Assessment", "Completed", "Time")
			fmt.Println(strings.Repeat("─", 60))
			for _, r := range results {
				title := titles[r.AssessmentID]
				if title == "" {
					title = r.AssessmentID
				}
				fmt.Printf("%-34s  %-12s  %d min\n",
					title, r.CreatedAt.Local().Format("2006-01-02"), r.CompletionTimeMinutes)
			}
		}

		items, err := goals.NewService(nil, st.GoalRepo(), profiles).List(ctx)
		if err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		var done int
		for _, g := range items {
			if g.Status == goals.StatusCompleted {
				done++
			}
		}
		fmt.Printf("\nGoals: %d/%d completed\n", done, len(items))
		return nil
	},
}
