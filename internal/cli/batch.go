package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackbadge/pkg/batch"
)

// batchCommand creates the batch command.
func (c *CLI) batchCommand() *cobra.Command {
	var (
		outDir  string
		report  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "batch <manifest>",
		Short: "Render every badge listed in a manifest",
		Long: `Render every badge listed in a TOML or YAML manifest.

Each entry is written to <output>/<name>.svg. Entries inherit style and
colors from the manifest's defaults section. Rendered badges are cached, so
unchanged entries are not laid out again on the next run.`,
		Example: `  stackbadge batch badges.toml -o public/badges
  stackbadge batch badges.yaml --workers 4 --report -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			m, err := batch.LoadManifest(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded manifest", "path", args[0], "badges", len(m.Badges))

			r, err := c.newRenderer()
			if err != nil {
				return err
			}
			store, keyer, err := c.newCache(noCache)
			if err != nil {
				return err
			}
			runner := batch.NewRunner(r, store, keyer, logger)
			runner.Workers = c.config().Render.Workers
			runner.TTL = c.config().Cache.TTL
			defer runner.Close()

			prog := newProgress(logger)
			spinner := newSpinner(ctx, cmd.ErrOrStderr(), c.out(), fmt.Sprintf("Rendering %d badges...", len(m.Badges)))
			spinner.Start()
			results, err := runner.Run(ctx, m, outDir)
			if err != nil {
				if spinner.Cancelled() {
					spinner.Stop()
					return ctx.Err()
				}
				spinner.StopWithError("Batch failed")
				return err
			}
			spinner.Stop()
			prog.done(fmt.Sprintf("Rendered %d badges", len(results)))

			cached := 0
			for _, res := range results {
				if res.Cached {
					cached++
				}
			}
			p := c.out()
			p.success("Wrote %d badges to %s", len(results), outDir)
			p.stats(len(results), cached)
			for _, res := range results {
				p.file(res.Path)
			}

			if report != "" {
				w, closeFn, err := createOutput(report, c.Out)
				if err != nil {
					return err
				}
				if err := batch.WriteReport(w, results); err != nil {
					_ = closeFn()
					return err
				}
				if err := closeFn(); err != nil {
					return err
				}
				if report != "-" {
					p.file(report)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&outDir, "output", "o", "badges", "output directory")
	f.Int("workers", 0, "concurrent renders (default GOMAXPROCS)")
	f.StringVar(&report, "report", "", `write a JSON report of the run to this file ("-" for stdout)`)
	f.BoolVar(&noCache, "no-cache", false, "render every badge, bypassing the cache")

	_ = c.viper.BindPFlag("render.workers", f.Lookup("workers"))

	return cmd
}
