package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"tickr-book/internal/client"
	"tickr-book/internal/ledger"
	"tickr-book/internal/models"
	"tickr-book/internal/summary"
)

var errUsage = errors.New("usage")

// run executes one CLI command against c and writes the result to out.
func run(ctx context.Context, c client.TradeBookClient, args []string, out io.Writer, now func() time.Time) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "add":
		return runAdd(ctx, c, rest, out, now)
	case "trades":
		trades, err := c.ListTrades(ctx)
		if err != nil {
			return err
		}
		printTrades(out, trades)
		return nil
	case "stocks":
		return runStocks(ctx, c, rest, out)
	case "show":
		return runShow(ctx, c, rest, out)
	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("delete takes exactly one trade id")
		}
		if err := c.DeleteTrade(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintln(out, "Trade deleted successfully")
		return nil
	case "delete-stock":
		return runDeleteStock(ctx, c, rest, out)
	case "names":
		fs := flag.NewFlagSet("names", flag.ContinueOnError)
		prefix := fs.String("prefix", "", "only names starting with this text")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		names, err := c.StockNames(ctx, *prefix)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	}
	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

func runAdd(ctx context.Context, c client.TradeBookClient, args []string, out io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	in := ledger.TradeInput{}
	fs.StringVar(&in.StockName, "stock", "", "stock name")
	fs.StringVar(&in.Type, "type", string(models.TradeTypeBuy), "Buy or Sell")
	fs.StringVar(&in.Price, "price", "", "price per share")
	fs.StringVar(&in.Quantity, "qty", "", "number of shares")
	fs.StringVar(&in.Date, "date", now().Format("2006-01-02"), "trade date, YYYY-MM-DD")
	fs.StringVar(&in.Strategy, "strategy", string(models.StrategyIntraday), "Intraday or Swing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	trade, err := c.AddTrade(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s %s %d @ %s (%s) id=%s\n",
		trade.Type, trade.StockName, trade.Quantity, summary.FormatAmount(trade.Price), trade.Strategy, trade.ID)
	return nil
}

func runStocks(ctx context.Context, c client.TradeBookClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stocks", flag.ContinueOnError)
	var q client.StockQuery
	fs.StringVar(&q.Strategy, "strategy", models.StrategyAll, "All, Intraday or Swing")
	fs.StringVar(&q.Search, "search", "", "stock name contains")
	fs.StringVar(&q.Sort, "sort", string(summary.SortByStock), "stock or date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rows, err := c.ListStocks(ctx, q)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "No trades found.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STOCK\tQTY\tAVG BUY\tAVG SELL\tINVESTED\tP/L")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			r.StockName,
			r.Stats.TotalQty,
			summary.FormatAmount(r.Stats.AvgBuyPrice),
			summary.FormatAmount(r.Stats.AvgSellPrice),
			summary.FormatAmount(r.Stats.TotalInvested),
			summary.FormatAmount(r.Stats.PnL),
		)
	}
	return tw.Flush()
}

func runShow(ctx context.Context, c client.TradeBookClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	stock := fs.String("stock", "", "stock name")
	strategy := fs.String("strategy", models.StrategyAll, "All, Intraday or Swing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *stock == "" {
		return fmt.Errorf("show needs -stock")
	}

	trades, err := c.StockTrades(ctx, *stock, *strategy)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s - Trades\n", *stock)
	printTrades(out, trades)
	return nil
}

func runDeleteStock(ctx context.Context, c client.TradeBookClient, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("delete-stock", flag.ContinueOnError)
	stock := fs.String("stock", "", "stock name")
	strategy := fs.String("strategy", models.StrategyAll, "only delete trades of this strategy")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *stock == "" {
		return fmt.Errorf("delete-stock needs -stock")
	}

	removed, err := c.DeleteStock(ctx, *stock, *strategy)
	if err != nil {
		return err
	}
	if models.IsAllStrategies(*strategy) {
		fmt.Fprintf(out, "Deleted all trades for %s (%d)\n", *stock, removed)
	} else {
		fmt.Fprintf(out, "Deleted %s trades for %s (%d)\n", *strategy, *stock, removed)
	}
	return nil
}

func printTrades(out io.Writer, trades []models.Trade) {
	if len(trades) == 0 {
		fmt.Fprintln(out, "No trades found.")
		return
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTOCK\tTYPE\tQTY\tPRICE\tDATE\tSTRATEGY")
	for _, t := range trades {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			t.ID, t.StockName, t.Type, t.Quantity, summary.FormatAmount(t.Price), summary.FormatDate(t.Date), t.Strategy)
	}
	_ = tw.Flush()
}
