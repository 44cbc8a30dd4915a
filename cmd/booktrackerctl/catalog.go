package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"booktracker-be/internal/models"

	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the shared public catalog",
	}
	cmd.AddCommand(
		newCatalogAddCmd(opts),
		newCatalogImportCmd(opts),
		newCatalogListCmd(opts),
	)
	return cmd
}

func newCatalogAddCmd(opts *rootOptions) *cobra.Command {
	var req models.CreateBookRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one public book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := opts.app.svc.AddPublic(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q by %s (%s)\n", book.Title, book.Author, book.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "book title")
	cmd.Flags().StringVar(&req.Author, "author", "", "book author")
	cmd.Flags().StringVar(&req.Status, "status", "", "Reading, Completed or Wishlist (default Reading)")
	return cmd
}

func newCatalogImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Add public books from a JSON array of {title, author, status}",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			var entries []models.CreateBookRequest
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			// Validate everything before writing anything
			for i := range entries {
				entry := entries[i]
				if _, err := models.ValidateCreateBook(&entry); err != nil {
					return fmt.Errorf("entry %d: %w", i+1, err)
				}
			}

			for i := range entries {
				if _, err := opts.app.svc.AddPublic(cmd.Context(), &entries[i]); err != nil {
					return fmt.Errorf("entry %d: %w", i+1, err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d books\n", len(entries))
			return nil
		},
	}
}

func newCatalogListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List public books",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := opts.app.books.ListPublic(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tSTATUS")
			for _, book := range books {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", book.ID, book.Title, book.Author, book.Status)
			}
			return w.Flush()
		},
	}
}
