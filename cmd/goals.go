package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/goals"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Track career goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return goalsListCmd.RunE(cmd, args)
	},
}

var goalsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := goalsService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		items, err := svc.List(cmd.Context())
		if err != nil {
			return onboardingHint(err)
		}
		if len(items) == 0 {
			fmt.Println("No goals yet. Add one with `pathwise goals add <title>`.")
			return nil
		}
		for _, g := range items {
			printGoal(g)
		}
		return nil
	},
}

var goalsAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a goal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		due, _ := cmd.Flags().GetString("due")

		svc, st, err := goalsService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		g, err := svc.Add(cmd.Context(), strings.Join(args, " "), desc, category, due)
		if err != nil {
			return onboardingHint(err)
		}
		fmt.Printf("Added goal #%d.\n", g.ID)
		return nil
	},
}

var goalsDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a goal completed",
	Args:  cobra.ExactArgs(1),
	RunE:  goalStatusRunE("completed", func(svc *goals.Service, cmd *cobra.Command, id int) error { return svc.Complete(cmd.Context(), id) }),
}

var goalsReopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Reopen a completed goal",
	Args:  cobra.ExactArgs(1),
	RunE:  goalStatusRunE("reopened", func(svc *goals.Service, cmd *cobra.Command, id int) error { return svc.Reopen(cmd.Context(), id) }),
}

var goalsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  goalStatusRunE("deleted", func(svc *goals.Service, cmd *cobra.Command, id int) error { return svc.Delete(cmd.Context(), id) }),
}

var goalsSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Get AI-suggested goals based on your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		adopt, _ := cmd.Flags().GetInt("adopt")
		due, _ := cmd.Flags().GetString("due")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := requireProvider(cmd.Context(), st)
		if err != nil {
			return err
		}
		profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
		svc := goals.NewService(provider, st.GoalRepo(), profiles)

		fmt.Println("Thinking about goals that fit your profile...")
		sugs, err := svc.Suggest(cmd.Context())
		if err != nil {
			return onboardingHint(err)
		}

		for i, s := range sugs {
			fmt.Printf("%d. [%s] %s\n   %s\n", i+1, s.Category, s.Title, s.Description)
		}

		if adopt > 0 {
			if adopt > len(sugs) {
				return fmt.Errorf("suggestion %d does not exist (got %d)", adopt, len(sugs))
			}
			g, err := svc.Adopt(cmd.Context(), sugs[adopt-1], due)
			if err != nil {
				return err
			}
			fmt.Printf("\nAdopted as goal #%d.\n", g.ID)
		} else {
			fmt.Println("\nAdopt one with `pathwise goals suggest --adopt <n>` or add your own.")
		}
		return nil
	},
}

// goalStatusRunE builds the RunE for the id-taking status commands.
func goalStatusRunE(verb string, apply func(*goals.Service, *cobra.Command, int) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal ID %q", args[0])
		}
		svc, st, err := goalsService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := apply(svc, cmd, id); err != nil {
			return err
		}
		fmt.Printf("Goal #%d %s.\n", id, verb)
		return nil
	}
}

// goalsService wires a goals.Service without an LLM provider. Suggest builds
// its own with the provider attached.
func goalsService(cmd *cobra.Command) (*goals.Service, *store.Store, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
	return goals.NewService(nil, st.GoalRepo(), profiles), st, nil
}

func printGoal(g *store.Goal) {
	status := "○"
	if g.Status == goals.StatusCompleted {
		status = "✓"
	}
	fmt.Printf("%s #%-3d [%s] %s", status, g.ID, g.Category, g.Title)
	if g.DueDate != "" {
		fmt.Printf("  (due %s)", g.DueDate)
	}
	fmt.Println()
	if g.Description != "" {
		fmt.Printf("        %s\n", g.Description)
	}
}

func init() {
	goalsAddCmd.Flags().StringP("description", "d", "", "Goal description")
	goalsAddCmd.Flags().StringP("category", "c", "personal_growth", "Category: "+strings.Join(goals.Categories, ", "))
	goalsAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	goalsSuggestCmd.Flags().Int("adopt", 0, "Adopt the nth suggestion as a goal")
	goalsSuggestCmd.Flags().String("due", "", "Due date for the adopted goal (YYYY-MM-DD)")

	goalsCmd.AddCommand(goalsListCmd)
	goalsCmd.AddCommand(goalsAddCmd)
	goalsCmd.AddCommand(goalsDoneCmd)
	goalsCmd.AddCommand(goalsReopenCmd)
	goalsCmd.AddCommand(goalsDeleteCmd)
	goalsCmd.AddCommand(goalsSuggestCmd)
}
