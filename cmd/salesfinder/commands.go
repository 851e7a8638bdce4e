package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/aerissecure/salesfinder"
	"github.com/aerissecure/salesfinder/marker"
	"github.com/aerissecure/salesfinder/page"
	"github.com/aerissecure/salesfinder/xlsx"
)

func newAugmentCommand(opts *globalOptions) *cobra.Command {
	var location, out string
	command := &cobra.Command{
		Use:   "augment --url location [file]",
		Short: "Augment a saved backpack.tf page",
		Long: `Augment reads a saved page (or stdin) and runs the host matching --url.
The rewritten page is written to --out or stdout. For profile locations ending
in a nearest timestamp pair the aligned location is printed instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageOpts, err := opts.pageOptions()
			if err != nil {
				return err
			}
			in, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			res, err := salesfinder.Augment(cmd.Context(), location, in, pageOpts)
			if err != nil {
				return err
			}
			klog.V(1).InfoS("Augmented", "result", res.String())
			if res.Kind == salesfinder.Profile && res.Location != location {
				fmt.Fprintln(cmd.OutOrStdout(), res.Location)
				if out == "" {
					return nil
				}
			}
			return writeOutput(out, cmd.OutOrStdout(), res.HTML)
		},
	}
	command.Flags().StringVar(&location, "url", "", "Location the page was saved from")
	command.Flags().StringVarP(&out, "out", "o", "", "Write the augmented page to this file instead of stdout")
	_ = command.MarkFlagRequired("url")
	return command
}

func newResolveCommand() *cobra.Command {
	var (
		markers  []int64
		from, to int64
	)
	command := &cobra.Command{
		Use:   "resolve --markers m1,m2,... --from T --to T",
		Short: "Align a timestamp pair to the nearest markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, t, err := marker.ResolvePair(markers, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), marker.FormatPair(f, t))
			return nil
		},
	}
	command.Flags().Int64SliceVar(&markers, "markers", nil, "Recorded snapshot times")
	command.Flags().Int64Var(&from, "from", 0, "Target time resolved backward")
	command.Flags().Int64Var(&to, "to", 0, "Target time resolved forward")
	_ = command.MarkFlagRequired("from")
	_ = command.MarkFlagRequired("to")
	return command
}

func newStepCommand() *cobra.Command {
	var (
		location  string
		increment int
	)
	command := &cobra.Command{
		Use:   "step --url location --increment N [file]",
		Short: "Move a profile compare location to older or newer snapshots",
		Long: `Step reads a saved profile page (or stdin) and moves both compare selects by
--increment options: 1 for the previous date, -1 for the next date.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if increment == 0 {
				return errors.New("--increment must not be 0")
			}
			in, err := openInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			stepped, err := salesfinder.Step(cmd.Context(), location, in, increment)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stepped)
			return nil
		},
	}
	command.Flags().StringVar(&location, "url", "", "Profile compare location")
	command.Flags().IntVar(&increment, "increment", 1, "Options to move both selects by")
	_ = command.MarkFlagRequired("url")
	return command
}

func newClassifyCommand(opts *globalOptions) *cobra.Command {
	var in, out, dateColumn, column, htmlOut string
	command := &cobra.Command{
		Use:   "classify --in sales.xlsx --out classified.xlsx",
		Short: "Add a days column to a spreadsheet and fill rows by recency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}
			now := page.NewOptions(cfg).Clock.Now()

			f, err := os.Open(in)
			if err != nil {
				return err
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}
			sheet, err := xlsx.ReadSheet(f, info.Size())
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", in, err)
			}
			t, err := sheet.Table()
			if err != nil {
				return err
			}

			tiers, err := xlsx.Classify(t, dateColumn, column, now, cfg.DateLayouts...)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := xlsx.WriteTable(&buf, sheet.Name, t, tiers); err != nil {
				return err
			}
			if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
				return err
			}
			klog.V(1).InfoS("Classified sheet", "in", in, "out", out, "rows", t.RowCount())

			if htmlOut != "" {
				return writeOutput(htmlOut, cmd.OutOrStdout(), xlsx.RenderHTML(xlsx.FromTable(sheet.Name, t, tiers)))
			}
			return nil
		},
	}
	command.Flags().StringVar(&in, "in", "", "Spreadsheet to classify")
	command.Flags().StringVarP(&out, "out", "o", "", "Where to write the classified spreadsheet")
	command.Flags().StringVar(&dateColumn, "date-column", "Last seen", "Header of the column holding the last seen date")
	command.Flags().StringVar(&column, "column", xlsx.DaysColumn, "Header of the inserted days column")
	command.Flags().StringVar(&htmlOut, "html", "", "Also write an HTML preview to this file")
	_ = command.MarkFlagRequired("in")
	_ = command.MarkFlagRequired("out")
	return command
}
