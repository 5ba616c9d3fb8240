// Печатает таблицу предложений для цены:
//
//	go run ./cmd/bargain 100
//	go run ./cmd/bargain -fee 0.05 -targets 1,2,5 12.50
//	go run ./cmd/bargain -- -5
//
// A price starting with "-" must follow "--", otherwise it is read as a flag.
//
// Defaults come from the same BARGAIN_* environment as the service.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/lmittmann/tint"
	"github.com/samber/lo"

	"bargain/internal/application"
	"bargain/internal/config"
	"bargain/internal/domain/value"
	"bargain/pkg/logx"
)

const usage = "usage: bargain [-fee 0.02] [-targets 5,10] [--] <price>"

func main() {
	log := slog.New(tint.NewHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load", logx.Error(err))
		os.Exit(1)
	}

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}

	flag.Float64Var(&cfg.Calculator.FeeRate, "fee", cfg.Calculator.FeeRate, "sale fee as a fraction, e.g. 0.02")
	targets := flag.String("targets", "", "comma separated target profits (default from BARGAIN_TARGET_PROFITS)")
	flag.Parse()

	if *targets != "" {
		profits, err := parseTargets(*targets)
		if err != nil {
			log.Error("parse targets", logx.Error(err))
			os.Exit(2) //nolint:mnd
		}

		cfg.Calculator.TargetProfits = profits
	}

	if err := run(os.Stdout, cfg.Calculator, strings.Join(flag.Args(), " ")); err != nil {
		log.Error("bargain failed", logx.Error(err))
		os.Exit(1)
	}
}

func run(w io.Writer, cfg config.Calculator, input string) error {
	calculator, err := application.NewCalculator(cfg)
	if err != nil {
		return err
	}

	table := calculator.Table(input)

	switch table.State {
	case value.InputEmpty:
		return errors.New(usage)
	case value.InputInvalid:
		return fmt.Errorf("please enter a valid price, got %q", input)
	}

	fmt.Fprintf(w, "Price $%s, fee %s%%\n\n", value.FormatMoney(table.Price), value.FormatPercent(table.FeePercent()))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(tw, "TARGET PROFIT\tMAX OFFER\t% OF ORIGINAL\tCHANCE")

	for _, row := range table.Rows {
		fmt.Fprintf(tw, "$%s\t$%s\t%s%%\t%s\n",
			value.FormatMoney(row.TargetProfit),
			value.FormatMoney(row.MaxOfferPrice),
			value.FormatPercent(row.PercentOfOriginal),
			row.Chance,
		)
	}

	return tw.Flush()
}

func parseTargets(raw string) ([]float64, error) {
	fields := lo.Filter(strings.Split(raw, ","), func(s string, _ int) bool {
		return strings.TrimSpace(s) != ""
	})

	profits := make([]float64, 0, len(fields))

	for _, field := range fields {
		profit, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("strconv.ParseFloat(%q): %w", field, err)
		}

		profits = append(profits, profit)
	}

	return profits, nil
}
