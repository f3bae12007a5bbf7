package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adit/pathwise/internal/discovery"
)

var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Convert salaries between currencies at current rates",
	Long:  "Convert an amount between currencies using web-grounded exchange rates.\nUse --list to see supported currencies.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			for _, c := range discovery.Currencies {
				fmt.Println(" ", c.Label)
			}
			return nil
		}
		if len(args) != 3 {
			return fmt.Errorf("usage: pathwise convert <amount> <from> <to>")
		}

		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil || amount <= 0 {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		from := strings.ToUpper(args[1])
		to := strings.ToUpper(args[2])
		for _, code := range []string{from, to} {
			if !supportedCurrency(code) {
				return fmt.Errorf("unsupported currency %q (see `pathwise convert --list`)", code)
			}
		}

		svc, closeStore, err := discoveryService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Println("Fetching the current rate...")
		conv, err := svc.Convert(cmd.Context(), amount, from, to)
		if err != nil {
			return err
		}

		fmt.Printf("\n%.2f %s = %.2f %s\n", conv.OriginalAmount, conv.FromCurrency, conv.ConvertedAmount, conv.ToCurrency)
		fmt.Printf("Rate: 1 %s = %.4f %s\n", conv.FromCurrency, conv.ExchangeRate, conv.ToCurrency)
		return nil
	},
}

func supportedCurrency(code string) bool {
	for _, c := range discovery.Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

func init() {
	convertCmd.Flags().Bool("list", false, "List supported currencies")
}
