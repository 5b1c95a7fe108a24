package main

import (
	"fmt"
	"strings"

	"expgen/cmd/expgen/ui"
	"expgen/internal/market"
	"expgen/internal/pagepath"

	"github.com/spf13/cobra"
)

var (
	resolveJSON bool
	pagesType   string
)

var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List market groups and their locales",
	Args:  cobra.NoArgs,
	RunE:  runMarkets,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <market>",
	Short: "Show which locales a market input resolves to",
	Long: `Resolves a market group code, a single country code, or a custom code the
same way the generator does.

Examples:
  expgen resolve SEBN
  expgen resolve be_fr
  expgen resolve XX --json`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "List the page path catalogue",
	Args:  cobra.NoArgs,
	RunE:  runPages,
}

func runMarkets(cmd *cobra.Command, args []string) error {
	ui.RenderMarkets(cmd.OutOrStdout(), market.Groups())
	return nil
}

func runResolve(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(args[0]) == "" {
		return fmt.Errorf("market code must not be empty")
	}
	res := market.Resolve(args[0])
	if resolveJSON {
		fmt.Fprintln(cmd.OutOrStdout(), market.MarketsJSON(res.Markets))
		return nil
	}
	ui.RenderResolution(cmd.OutOrStdout(), res)
	return nil
}

func runPages(cmd *cobra.Command, args []string) error {
	only := pagepath.Type(strings.ToUpper(strings.TrimSpace(pagesType)))
	switch only {
	case "", pagepath.TypePFP, pagepath.TypePCD, pagepath.TypePDP, pagepath.TypeBUY:
	default:
		return fmt.Errorf("unknown page type %q (want PFP, PCD, PDP or BUY)", pagesType)
	}
	ui.RenderPages(cmd.OutOrStdout(), pagepath.Entries(), only)
	return nil
}
