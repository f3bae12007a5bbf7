package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/discovery"
	"github.com/adit/pathwise/internal/store"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show current job market trends",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := discoveryService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Println("Reading the job market...")
		trends, err := svc.MarketTrends(cmd.Context())
		if err != nil {
			return err
		}

		if len(trends.GrowingFields) > 0 {
			fmt.Println("\nGrowing fields")
			for _, t := range trends.GrowingFields {
				fmt.Printf("  ▲ %s — %s\n", t.Field, t.Reason)
			}
		}
		if len(trends.DecliningFields) > 0 {
			fmt.Println("\nDeclining fields")
			for _, t := range trends.DecliningFields {
				fmt.Printf("  ▼ %s — %s\n", t.Field, t.Reason)
			}
		}
		return nil
	},
}

// discoveryService opens the store and wires a discovery.Service. The
// returned func closes the store.
func discoveryService(cmd *cobra.Command) (*discovery.Service, func(), error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}
	provider, err := requireProvider(cmd.Context(), st)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return discovery.NewService(provider), func() { closeQuietly(st) }, nil
}

func closeQuietly(st *store.Store) {
	_ = st.Close()
}
