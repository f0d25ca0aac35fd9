package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/DRSN-tech/go-storefront/internal/app"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/spf13/cobra"
)

var (
	listQuery      string
	listCategories []string
	listBrands     []string
	listSort       string
	listMinPrice   int64
	listMaxPrice   int64
	listLimit      int
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products matching filters",
	Long: `Applies the same filters as GET /api/v1/products.

Example:
  storefront catalog list --category Видеокамеры --sort price_asc`,
	Args: cobra.NoArgs,
	RunE: runCatalogList,
}

var catalogQuoteCmd = &cobra.Command{
	Use:   "quote ID[xQTY][+delivery][+installation]...",
	Short: "Price a cart without creating a session",
	Long: `Each argument is one cart line: product id, optional quantity and add-ons.

Example:
  storefront catalog quote 1x2+delivery 4+installation`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalogQuote,
}

func init() {
	flags := catalogListCmd.Flags()
	flags.StringVarP(&listQuery, "query", "q", "", "case-insensitive name substring")
	flags.StringSliceVar(&listCategories, "category", nil, "category name (repeatable)")
	flags.StringSliceVar(&listBrands, "brand", nil, "brand name (repeatable)")
	flags.StringVar(&listSort, "sort", "", "price_asc | price_desc | rating_desc | name_asc")
	flags.Int64Var(&listMinPrice, "min-price", 0, "minimum price, inclusive")
	flags.Int64Var(&listMaxPrice, "max-price", -1, "maximum price, inclusive (-1 for none)")
	flags.IntVar(&listLimit, "limit", usecase.MaxPageLimit, "page size")

	catalogCmd.AddCommand(catalogListCmd, catalogQuoteCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	sortKey, ok := domain.ParseSortKey(listSort)
	if !ok {
		return e.ErrInvalidSort
	}

	price := domain.FullPriceRange()
	price.Min = listMinPrice
	if listMaxPrice >= 0 {
		price.Max = listMaxPrice
	}

	state := domain.DefaultFilterState().SetQuery(listQuery).SetPriceRange(price)
	state.Categories = listCategories
	state.Brands = listBrands

	cfg, log, err := setup()
	if err != nil {
		return err
	}

	catalog, err := app.OpenCatalog(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer catalog.Close()

	res, err := catalog.ProductUC().ListProducts(cmd.Context(), &usecase.ListProductsReq{
		Filter: state,
		Sort:   sortKey,
		Limit:  listLimit,
	})
	if err != nil {
		return err
	}

	return printProducts(cmd.OutOrStdout(), res)
}

func runCatalogQuote(cmd *cobra.Command, args []string) error {
	lines := make([]usecase.QuoteLineReq, 0, len(args))
	for _, arg := range args {
		line, err := parseQuoteArg(arg)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	cfg, log, err := setup()
	if err != nil {
		return err
	}

	catalog, err := app.OpenCatalog(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer catalog.Close()

	q, err := catalog.ProductUC().QuoteLines(cmd.Context(), lines)
	if err != nil {
		return err
	}

	return printQuote(cmd.OutOrStdout(), q)
}

// parseQuoteArg разбирает позицию вида ID[xQTY][+delivery][+installation].
func parseQuoteArg(arg string) (usecase.QuoteLineReq, error) {
	parts := strings.Split(arg, "+")
	line := usecase.QuoteLineReq{Quantity: 1}

	idPart, qtyPart, hasQty := strings.Cut(parts[0], "x")
	id, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil || id <= 0 {
		return line, fmt.Errorf("%q: %w", arg, e.ErrInvalidProductID)
	}
	line.ProductID = id

	if hasQty {
		qty, err := strconv.Atoi(qtyPart)
		if err != nil || qty < 1 {
			return line, fmt.Errorf("%q: %w", arg, e.ErrInvalidQuantity)
		}
		line.Quantity = qty
	}

	for _, p := range parts[1:] {
		addOn, ok := domain.ParseAddOn(p)
		if !ok {
			return line, fmt.Errorf("%q: %w", arg, e.ErrUnknownAddOn)
		}
		switch addOn {
		case domain.AddOnDelivery:
			line.Delivery = true
		case domain.AddOnInstallation:
			line.Installation = true
		}
	}

	return line, nil
}

func printProducts(w io.Writer, res *usecase.ListProductsRes) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tBRAND\tPRICE\tRATING")
	for _, p := range res.Products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%.1f\n", p.ID, p.Name, p.Category, p.Brand, p.Price, p.Rating)
	}
	fmt.Fprintf(tw, "\t\t\t\t%d of %d\t\n", len(res.Products), res.Page.Total)
	return tw.Flush()
}

func printQuote(w io.Writer, q *domain.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tSUBTOTAL\tDELIVERY\tINSTALLATION\tTOTAL")
	for _, l := range q.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
			l.ProductID, l.Name, l.Quantity, l.Subtotal, l.Delivery, l.Installation, l.Total)
	}
	fmt.Fprintf(tw, "\t\t\t%d\t%d\t%d\t%d\n", q.Subtotal, q.Delivery, q.Installation, q.Total)
	return tw.Flush()
}
