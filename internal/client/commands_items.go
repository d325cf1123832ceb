package client

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Tristano1/friend-library-system/internal/app"
	"github.com/Tristano1/friend-library-system/models"
)

func (a *App) loanLengthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loan-length",
		Short: "Manage your default loan length",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set DAYS",
		Short: "Set the default loan length for items without their own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("DAYS must be a whole number: %w", err)
			}
			if err = a.requireSession(); err != nil {
				return err
			}

			user, err := a.adapter.SetDefaultLoanLength(cmd.Context(), days)
			if err != nil {
				return describe(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Default loan length set to %d days.\n", user.DefaultLoanLengthDays)
			return nil
		},
	})

	return cmd
}

func (a *App) itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage the items you lend out",
	}

	cmd.AddCommand(a.itemsAddCmd(), a.itemsListCmd())
	return cmd
}

func (a *App) itemsAddCmd() *cobra.Command {
	var loanDays int

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}

			newItem := models.NewItem{Name: strings.Join(args, " ")}
			if cmd.Flags().Changed("loan-days") {
				newItem.LoanLengthDays = &loanDays
			}

			item, err := a.adapter.AddItem(cmd.Context(), newItem)
			if err != nil {
				return describe(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %q, lent for %d days.\n", item.Name, item.EffectiveLoanLengthDays)
			return nil
		},
	}

	cmd.Flags().IntVar(&loanDays, "loan-days", 0, "loan length for this item, overriding your default")
	return cmd
}

func (a *App) itemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(); err != nil {
				return err
			}

			items, err := a.adapter.ListItems(cmd.Context())
			if err != nil {
				return describe(err)
			}

			renderItems(cmd.OutOrStdout(), items)
			return nil
		},
	}
}

// renderItems prints items as a table. Items following the owner's default
// are marked as such in the last column.
func renderItems(w io.Writer, items []models.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, app.MsgNoItems)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Name", "Loan days", "Source"})
	for i, item := range items {
		source := "default"
		if item.LoanLengthDays != nil {
			source = "item"
		}
		t.AppendRow(table.Row{i + 1, item.Name, item.EffectiveLoanLengthDays, source})
	}
	t.Render()
}
