package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tair/storefront/internal/storefront/api"
)

// NewCheckoutCommand creates the checkout command.
func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	var payment string

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for everything in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}
			session, err := e.session()
			if err != nil {
				return err
			}

			order, err := e.client.Checkout(cmd.Context(), session, payment)
			if err != nil {
				e.notifier.Failure(cmd.Context(), "Checkout failed", err)
				return err
			}
			e.notifier.Success(cmd.Context(), "Order placed")

			return e.printer.print(order, func(w io.Writer) {
				printOrder(w, order)
			})
		},
	}

	cmd.Flags().StringVar(&payment, "payment", "credit_card", "payment method")

	return cmd
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "orders [order-id]",
		Short: "List placed orders or track one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}
			session, err := e.session()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				order, err := e.client.Order(cmd.Context(), session, args[0])
				if err != nil {
					return err
				}
				return e.printer.print(order, func(w io.Writer) {
					printOrder(w, order)
				})
			}

			orders, err := e.client.Orders(cmd.Context(), session)
			if err != nil {
				return err
			}
			if orders == nil {
				orders = []api.Order{}
			}
			return e.printer.print(orders, func(w io.Writer) {
				if len(orders) == 0 {
					fmt.Fprintln(w, "No orders yet")
					return
				}
				fmt.Fprintln(w, "ORDER\tSTATUS\tAMOUNT\tITEMS\tPLACED")
				for _, o := range orders {
					fmt.Fprintf(w, "%s\t%s\t%s %s\t%d\t%s\n",
						o.OrderID, o.Status, o.Amount.StringFixed(2), o.Currency, len(o.Items), o.CreatedAt.Format("2006-01-02 15:04"))
				}
			})
		},
	}
}

func printOrder(w io.Writer, order *api.Order) {
	fmt.Fprintf(w, "Order\t%s\n", order.OrderID)
	fmt.Fprintf(w, "Status\t%s\n", order.Status)
	fmt.Fprintf(w, "Payment\t%s (%s)\n", order.PaymentMethod, order.TransactionID)
	for _, item := range order.Items {
		fmt.Fprintf(w, "\t%d x %s\t%s\n", item.Quantity, item.Title, item.Price.StringFixed(2))
	}
	fmt.Fprintf(w, "Total\t%s %s\n", order.Amount.StringFixed(2), order.Currency)
}
