// salesfinder augments saved backpack.tf pages and spreadsheets of sales with
// recency tiers, compare links and snapshot aligned locations.
package main

import (
	"context"
	goflag "flag"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func main() {
	command := newRootCommand()

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	command.PersistentFlags().AddGoFlagSet(klogFlags)
	defer klog.Flush()

	if err := func() error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()
		return command.ExecuteContext(ctx)
	}(); err != nil {
		klog.ErrorS(err, "Command failed")
		klog.Flush()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	command := &cobra.Command{
		Use:   "salesfinder",
		Short: "Find premium sales on backpack.tf pages",
		Long: `salesfinder adds Seller and Buyer compare links to item history tables,
highlights rows by how recently the item changed hands and aligns profile
compare locations to recorded inventory snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	command.AddCommand(
		newAugmentCommand(opts),
		newResolveCommand(),
		newStepCommand(),
		newClassifyCommand(opts),
	)

	command.SetGlobalNormalizationFunc(wordSepNormalizeFunc)
	opts.AddFlags(command.PersistentFlags())
	return command
}
