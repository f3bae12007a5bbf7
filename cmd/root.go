package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "AI career guidance in your terminal",
	Long:  "Pathwise — AI-native terminal app for career assessments, recommendations, goals, portfolio building and mentor discovery.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory can hold API keys during development.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(mentorsCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(universitiesCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// requireProvider builds the configured LLM provider, adding setup guidance
// when no API key is present.
func requireProvider(ctx context.Context, st *store.Store) (llm.Provider, error) {
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return nil, fmt.Errorf("%w\n\nSet an API key (e.g. GEMINI_API_KEY) or configure PATHWISE_LLM_PROVIDER to enable AI features", err)
	}
	return provider, nil
}
