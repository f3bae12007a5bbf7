package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/app"
	"github.com/adit/pathwise/internal/assessment"
	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/profile"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
	opts := app.Options{
		Profiles: profiles,
		Catalog:  st.AssessmentRepo(),
		Results:  st.ResultRepo(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Assessments will be unavailable until an API key is set.")
	} else {
		opts.Generator = assessment.NewLLMGenerator(provider)
		opts.Completer = assessment.NewCompleter(assessment.NewAnalyzer(provider), st.ResultRepo(), profiles)
	}

	return app.Run(opts)
}
