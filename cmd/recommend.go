package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/ent/schema"
	"github.com/adit/pathwise/internal/advisor"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Career recommendations from your assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
		p, err := profiles.Me(cmd.Context())
		if err != nil {
			return onboardingHint(err)
		}

		if len(p.CareerRecommendations) == 0 {
			fmt.Println("No recommendations yet. Run `pathwise recommend generate` after completing at least two assessments.")
			return nil
		}
		printRecommendations(p.CareerRecommendations, p.SelectedCareerPath)
		return nil
	},
}

var recommendGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate fresh recommendations from your results",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := requireProvider(ctx, st)
		if err != nil {
			return err
		}

		profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
		svc := advisor.NewService(provider, st.ResultRepo(), st.CareerFieldRepo(), profiles)

		fmt.Println("Analyzing your assessment results...")
		recs, err := svc.Recommend(ctx)
		if errors.Is(err, advisor.ErrNotEnoughResults) {
			fmt.Println(err.Error())
			return nil
		}
		if err != nil {
			return onboardingHint(err)
		}

		printRecommendations(recs, nil)
		fmt.Println("Pick one with `pathwise recommend select <field>`.")
		return nil
	},
}

var recommendSelectCmd = &cobra.Command{
	Use:   "select <field>",
	Short: "Set a recommended field as your career path",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		field := strings.Join(args, " ")
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
		if _, err := profiles.SelectCareerPath(cmd.Context(), field); err != nil {
			return onboardingHint(err)
		}
		fmt.Printf("Career path set to %s.\n", field)
		return nil
	},
}

var recommendRoadmapCmd = &cobra.Command{
	Use:   "roadmap [field]",
	Short: "Skill roadmap for a career field (defaults to your selected path)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
		field := strings.Join(args, " ")
		if field == "" {
			p, err := profiles.Me(ctx)
			if err != nil {
				return onboardingHint(err)
			}
			if p.SelectedCareerPath == nil || p.SelectedCareerPath.Field == "" {
				return fmt.Errorf("no career path selected; pass a field or run `pathwise recommend select <field>` first")
			}
			field = p.SelectedCareerPath.Field
		}

		provider, err := requireProvider(ctx, st)
		if err != nil {
			return err
		}
		svc := advisor.NewService(provider, st.ResultRepo(), st.CareerFieldRepo(), profiles)

		fmt.Printf("Building a roadmap for %s...\n\n", field)
		rm, err := svc.SkillRoadmap(ctx, field)
		if err != nil {
			return err
		}

		printList("Technical skills", rm.TechnicalSkills)
		printList("Soft skills", rm.SoftSkills)
		printList("Key experiences", rm.KeyExperiences)
		return nil
	},
}

func printRecommendations(recs []schema.CareerRecommendation, selected *schema.CareerPath) {
	for i, r := range recs {
		marker := " "
		if selected != nil && selected.Field == r.Field {
			marker = "➤"
		}
		fmt.Printf("%s %d. %s (%.0f%% match)\n", marker, i+1, r.Field, r.MatchPercentage)
		if r.Reasoning != "" {
			fmt.Printf("     %s\n", r.Reasoning)
		}
		if len(r.KeyAlignments) > 0 {
			fmt.Printf("     Aligns with: %s\n", strings.Join(r.KeyAlignments, ", "))
		}
		if r.GrowthPotential != "" {
			fmt.Printf("     Growth: %s\n", r.GrowthPotential)
		}
		if r.NextSteps != "" {
			fmt.Printf("     Next steps: %s\n", r.NextSteps)
		}
		fmt.Println()
	}
}

func printList(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println(heading)
	for _, it := range items {
		fmt.Println("  •", it)
	}
	fmt.Println()
}

// onboardingHint swaps the raw no-profile error for a pointer at the TUI,
// where onboarding lives.
func onboardingHint(err error) error {
	if errors.Is(err, profile.ErrNoProfile) || errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("no profile yet; run `pathwise` first to complete onboarding")
	}
	return err
}

func init() {
	recommendCmd.AddCommand(recommendGenerateCmd)
	recommendCmd.AddCommand(recommendSelectCmd)
	recommendCmd.AddCommand(recommendRoadmapCmd)
}
