package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/storefront"
)

// NewFavoritesCommand creates the favorites command group.
func NewFavoritesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorites"},
		Short:   "Show and change saved favorites",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show saved favorites",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}
			session, err := e.session()
			if err != nil {
				return err
			}

			favorites := storefront.NewFavoritesController(e.client, e.notifier)
			items, err := favorites.ListFavorites(cmd.Context(), session)
			if err != nil {
				return err
			}
			if items == nil {
				items = []storefront.FavoriteItem{}
			}

			return e.printer.print(items, func(w io.Writer) {
				if len(items) == 0 {
					fmt.Fprintln(w, "No favorites yet")
					return
				}
				fmt.Fprintln(w, "ID\tPRODUCT\tTITLE\tPRICE")
				for _, item := range items {
					fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", item.ID, item.ProductID, item.Title, item.Price.StringFixed(2))
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Save a catalog product to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}
			session, err := e.session()
			if err != nil {
				return err
			}

			product, err := e.client.Product(cmd.Context(), int(productID))
			if err != nil {
				e.notifier.Failure(cmd.Context(), "Could not load the product", err)
				return err
			}

			favorites := storefront.NewFavoritesController(e.client, e.notifier)
			item, err := favorites.AddFavorite(cmd.Context(), session, storefront.NewFavoriteFromProduct(*product))
			if err != nil {
				return err
			}

			return e.printer.print(item, func(w io.Writer) {
				fmt.Fprintf(w, "Saved %s as favorite %d\n", item.Title, item.ID)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <favorite-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a favorite",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			favoriteID, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}
			session, err := e.session()
			if err != nil {
				return err
			}

			favorites := storefront.NewFavoritesController(e.client, e.notifier)
			return favorites.RemoveFavorite(cmd.Context(), session, favoriteID)
		},
	})

	return cmd
}
