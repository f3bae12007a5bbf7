package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/llm"
	"github.com/adit/pathwise/internal/portfolio"
	"github.com/adit/pathwise/internal/profile"
	"github.com/adit/pathwise/internal/store"
	"github.com/adit/pathwise/internal/upload"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Build a portfolio of projects and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return portfolioListCmd.RunE(cmd, args)
	},
}

var portfolioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List portfolio items",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := portfolioService(st, nil, nil)
		items, err := svc.List(cmd.Context())
		if err != nil {
			return onboardingHint(err)
		}
		if len(items) == 0 {
			fmt.Println("Your portfolio is empty. Add an item with `pathwise portfolio add <title>`.")
			return nil
		}
		for _, item := range items {
			fmt.Printf("#%-3d [%s] %s", item.ID, item.Category, item.Title)
			if item.Date != "" {
				fmt.Printf("  (%s)", item.Date)
			}
			fmt.Println()
			if item.Description != "" {
				fmt.Printf("      %s\n", item.Description)
			}
			if item.Link != "" {
				fmt.Printf("      %s\n", item.Link)
			}
			if item.FileURL != "" {
				fmt.Printf("      attachment: %s\n", item.FileURL)
			}
		}
		return nil
	},
}

var portfolioAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a portfolio item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		desc, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		date, _ := cmd.Flags().GetString("date")
		link, _ := cmd.Flags().GetString("link")
		attach, _ := cmd.Flags().GetString("attach")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		item := portfolio.NewItem{
			Title:       strings.Join(args, " "),
			Description: desc,
			Category:    category,
			Date:        date,
			Link:        link,
		}

		var uploader upload.Uploader
		if attach != "" {
			f, err := os.Open(attach)
			if err != nil {
				return fmt.Errorf("open attachment: %w", err)
			}
			defer f.Close()
			item.Attachment = f
			item.AttachmentName = filepath.Base(attach)

			uploader, err = upload.FromEnv(ctx, filepath.Dir(dbPath))
			if err != nil {
				return fmt.Errorf("configure upload backend: %w", err)
			}
		}

		svc := portfolioService(st, nil, uploader)
		saved, err := svc.Add(ctx, item)
		if err != nil {
			return onboardingHint(err)
		}
		fmt.Printf("Added portfolio item #%d.\n", saved.ID)
		if saved.FileURL != "" {
			fmt.Println("Attachment stored at:", saved.FileURL)
		}
		return nil
	},
}

var portfolioDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a portfolio item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item ID %q", args[0])
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := portfolioService(st, nil, nil)
		if err := svc.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Portfolio item #%d deleted.\n", id)
		return nil
	},
}

var portfolioChecklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "AI checklist of what your portfolio still needs",
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

		svc := portfolioService(st, provider, nil)
		fmt.Println("Reviewing your portfolio...")
		items, err := svc.Checklist(ctx)
		if err != nil {
			return onboardingHint(err)
		}
		for _, it := range items {
			fmt.Printf("☐ %s\n  %s\n", it.Item, it.Description)
		}
		return nil
	},
}

func portfolioService(st *store.Store, provider llm.Provider, uploader upload.Uploader) *portfolio.Service {
	profiles := profile.NewService(st.ProfileRepo(), st.AssessmentRepo())
	return portfolio.NewService(provider, st.PortfolioRepo(), uploader, profiles)
}

func init() {
	portfolioAddCmd.Flags().StringP("description", "d", "", "Item description")
	portfolioAddCmd.Flags().StringP("category", "c", "project", "Category: "+strings.Join(portfolio.Categories, ", "))
	portfolioAddCmd.Flags().String("date", "", "Date of the work (YYYY-MM-DD)")
	portfolioAddCmd.Flags().String("link", "", "Link to the work")
	portfolioAddCmd.Flags().String("attach", "", "File to attach (uploaded to the configured backend)")

	portfolioCmd.AddCommand(portfolioListCmd)
	portfolioCmd.AddCommand(portfolioAddCmd)
	portfolioCmd.AddCommand(portfolioDeleteCmd)
	portfolioCmd.AddCommand(portfolioChecklistCmd)
}
