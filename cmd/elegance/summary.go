package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmcdole/elegance/internal/cart"
	"github.com/mmcdole/elegance/internal/format"
)

// printCartSummary writes the cart as a plain table for non-interactive use
func printCartSummary(w io.Writer, snap cart.Snapshot) error {
	if len(snap.Items) == 0 {
		_, err := fmt.Fprintln(w, "Sua sacola está vazia")
		return err
	}

	fmt.Fprintf(w, "Minha Sacola (%d)\n\n", snap.Count)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUTO\tVARIANTE\tQTD\tPREÇO\tTOTAL")
	for _, it := range snap.Items {
		variant := it.Variant()
		if variant == "" {
			variant = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			it.Name, variant, it.Quantity, format.Currency(it.Price), format.Currency(it.LineTotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nSubtotal  %s\n", format.Currency(snap.Subtotal))
	fmt.Fprintln(w, "Frete     Grátis")
	_, err := fmt.Fprintf(w, "Total     %s\n", format.Currency(snap.Total))
	return err
}
