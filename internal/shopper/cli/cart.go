package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/storefront"
)

type cartView struct {
	Items    []storefront.CartLine `json:"items"`
	Subtotal string                `json:"subtotal"`
	Shipping string                `json:"shipping"`
	Tax      string                `json:"tax"`
	Total    string                `json:"total"`
}

// NewCartCommand creates the cart command group.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the cart",
	}

	cmd.AddCommand(newCartListCommand(rootOpts))
	cmd.AddCommand(newCartAddCommand(rootOpts))
	cmd.AddCommand(newCartSetCommand(rootOpts))
	cmd.AddCommand(newCartRemoveCommand(rootOpts))

	return cmd
}

func newCartListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the cart lines and totals",
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

			cart := storefront.NewCartController(e.client, e.notifier)
			if _, err := cart.ListLines(cmd.Context(), session); err != nil {
				return err
			}
			return printCart(e.printer, cart)
		},
	}
}

func newCartAddCommand(rootOpts *RootOptions) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a catalog product to the cart",
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

			cart := storefront.NewCartController(e.client, e.notifier)
			line, err := cart.AddLine(cmd.Context(), session, storefront.NewCartLine{
				ProductID: product.ID,
				Title:     product.Title,
				Price:     product.Price,
				Image:     product.Image,
				Quantity:  &quantity,
			})
			if err != nil {
				return err
			}

			return e.printer.print(line, func(w io.Writer) {
				fmt.Fprintf(w, "Added %s x%d as line %d\n", line.Title, line.Quantity, line.ID)
			})
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "quantity to add")

	return cmd
}

func newCartSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <line-id> <quantity>",
		Short: "Change the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lineID, err := parseID(args[0])
			if err != nil {
				return err
			}
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid quantity %q", args[1]))
			}

			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}
			session, err := e.session()
			if err != nil {
				return err
			}

			cart := storefront.NewCartController(e.client, e.notifier)
			if _, err := cart.ListLines(cmd.Context(), session); err != nil {
				return err
			}
			if err := cart.UpdateQuantity(cmd.Context(), session, lineID, quantity); err != nil {
				return err
			}
			return printCart(e.printer, cart)
		},
	}
}

func newCartRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <line-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a cart line",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lineID, err := parseID(args[0])
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

			cart := storefront.NewCartController(e.client, e.notifier)
			if _, err := cart.ListLines(cmd.Context(), session); err != nil {
				return err
			}
			if err := cart.RemoveLine(cmd.Context(), session, lineID); err != nil {
				return err
			}
			return printCart(e.printer, cart)
		},
	}
}

func printCart(p *printer, cart *storefront.CartController) error {
	totals := cart.Totals()
	view := cartView{
		Items:    cart.Lines(),
		Subtotal: totals.Subtotal.StringFixed(2),
		Shipping: totals.Shipping.StringFixed(2),
		Tax:      totals.Tax.StringFixed(2),
		Total:    totals.Total.StringFixed(2),
	}

	return p.print(view, func(w io.Writer) {
		if len(view.Items) == 0 {
			fmt.Fprintln(w, "Your cart is empty")
			return
		}
		fmt.Fprintln(w, "LINE\tPRODUCT\tTITLE\tPRICE\tQTY\tAMOUNT")
		for _, line := range view.Items {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%s\n",
				line.ID, line.ProductID, line.Title, line.Price.StringFixed(2), line.Quantity, line.LineTotal().StringFixed(2))
		}
		fmt.Fprintf(w, "\t\t\t\tSubtotal\t%s\n", view.Subtotal)
		fmt.Fprintf(w, "\t\t\t\tShipping\t%s\n", view.Shipping)
		fmt.Fprintf(w, "\t\t\t\tTax\t%s\n", view.Tax)
		fmt.Fprintf(w, "\t\t\t\tTotal\t%s\n", view.Total)
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, NewExitError(ExitUsage, fmt.Sprintf("invalid id %q", raw))
	}
	return uint(id), nil
}
