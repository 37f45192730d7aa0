package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/tair/storefront/internal/storefront"
)

type browseResult struct {
	Category string               `json:"category"`
	State    string               `json:"state"`
	Page     int                  `json:"page"`
	Total    *int                 `json:"total,omitempty"`
	Products []storefront.Product `json:"products"`
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		category string
		search   string
		sortBy   string
		pages    int
		lang     string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the catalog",
		Long: `Browse loads catalog pages the way the storefront grid does: it starts at
page 1 of the chosen category and keeps loading while more products remain,
up to --pages pages. Search and sort only change what is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, ok := storefront.ParseSortOrder(sortBy)
			if !ok {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid sort %q: must be one of name, priceLow, priceHigh", sortBy))
			}
			if pages < 1 {
				return NewExitError(ExitUsage, "--pages must be at least 1")
			}
			tag, err := language.Parse(lang)
			if err != nil {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid language %q", lang))
			}

			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			fetcher := storefront.NewFetcher(e.client, e.notifier)
			view := storefront.NewCatalogView(fetcher, e.client, tag)
			view.SetSearch(search)
			view.SetSort(order)

			if err := view.SetCategory(ctx, category); err != nil {
				return err
			}
			for loaded := 1; loaded < pages && fetcher.HasMore(); loaded++ {
				if _, err := view.OnLastItemVisible(ctx); err != nil && !errors.Is(err, storefront.ErrLoadInFlight) {
					return err
				}
			}

			state, page := view.State()
			result := browseResult{
				Category: category,
				State:    state.String(),
				Page:     page,
				Products: view.Visible(),
			}
			if total, known := fetcher.Total(); known {
				result.Total = &total
			}

			return e.printer.print(result, func(w io.Writer) {
				fmt.Fprintln(w, "ID\tTITLE\tPRICE\tCATEGORY")
				for _, p := range result.Products {
					fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Title, p.Price.StringFixed(2), p.Category)
				}
				footer := fmt.Sprintf("%d shown, page %d, %s", len(result.Products), page, state)
				if result.Total != nil {
					footer += fmt.Sprintf(", %d in category", *result.Total)
				}
				fmt.Fprintln(w, footer)
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "All", "category filter")
	cmd.Flags().StringVarP(&search, "search", "s", "", "case-insensitive title filter")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order (name|priceLow|priceHigh)")
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "maximum number of pages to load")
	cmd.Flags().StringVar(&lang, "lang", "en", "language whose rules order names")

	return cmd
}

// NewCategoriesCommand creates the categories command.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}

			view := storefront.NewCatalogView(storefront.NewFetcher(e.client, e.notifier), e.client, language.English)
			categories, err := view.Categories(cmd.Context())
			if err != nil {
				return err
			}

			return e.printer.print(categories, func(w io.Writer) {
				for _, c := range categories {
					fmt.Fprintln(w, c)
				}
			})
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <product-id>",
		Short: "Show the details of one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return NewExitError(ExitUsage, fmt.Sprintf("invalid product id %q", args[0]))
			}

			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}

			product, err := e.client.Product(cmd.Context(), id)
			if err != nil {
				return err
			}

			return e.printer.print(product, func(w io.Writer) {
				fmt.Fprintf(w, "ID\t%d\n", product.ID)
				fmt.Fprintf(w, "TITLE\t%s\n", product.Title)
				fmt.Fprintf(w, "CATEGORY\t%s\n", product.Category)
				fmt.Fprintf(w, "PRICE\t%s\n", product.Price.StringFixed(2))
				if product.Rating != nil {
					fmt.Fprintf(w, "RATING\t%.1f (%d reviews)\n", product.Rating.Rate, product.Rating.Count)
				}
				fmt.Fprintf(w, "IMAGE\t%s\n", product.Image)
				fmt.Fprintf(w, "DESCRIPTION\t%s\n", product.Description)
			})
		},
	}
}

// NewAskCommand creates the ask command.
func NewAskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the product assistant",
		Long: `Ask matches every word of the question against product titles, categories
and descriptions. A product is listed when any word occurs in any of them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(rootOpts, cmd)
			if err != nil {
				return err
			}

			answer, err := storefront.NewAssistant(e.client).Ask(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			return e.printer.print(answer, func(w io.Writer) {
				fmt.Fprintln(w, answer.Text())
			})
		},
	}
}
