// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kcomplex/internal/cliutil"
	"kcomplex/internal/config"
	"kcomplex/internal/version"
	"kcomplex/internal/zscore"
)

const examples = `  # score every read, one TSV row each
  kcomplex reads.fq.gz > scores.tsv

  # mask low-complexity windows
  kcomplex --mask -k 4 -w 32 -t 0.55 reads.fq > masked.fq

  # keep only complex reads, from stdin
  zcat reads.fq.gz | kcomplex --filter -t 0.55 - > kept.fq

  # keep reads that are not unusually simple for this run
  kcomplex reads.fq | kcomplex zscore > ids.txt`

// RunFunc executes a measure, mask or filter run.
type RunFunc func(ctx context.Context, stdout io.Writer, cfg *config.Config) error

// ZScoreOptions holds the zscore subcommand's settings.
type ZScoreOptions struct {
	Threshold float64
	Invert    bool
	PrintZ    bool
	Quiet     bool
	Inputs    []string
}

// ZScoreFunc executes the zscore subcommand.
type ZScoreFunc func(ctx context.Context, stdout io.Writer, o ZScoreOptions) error

// UsageError marks a bad command line: unknown or malformed flags,
// conflicting flag groups, unusable config sources.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Command is the kcomplex command tree.
type Command struct {
	root    *cobra.Command
	started bool
}

// New builds the command tree around the given handlers.
func New(run RunFunc, zs ZScoreFunc) *Command {
	c := &Command{}

	root := &cobra.Command{
		Use:   "kcomplex [flags] [file ...]",
		Short: "Score, mask or filter reads by k-mer complexity",
		Long: `kcomplex scores reads by lexical complexity: distinct k-mers divided by
sequence length. Input is FASTA or FASTQ, plain or gzipped; with no file,
or with "-", it reads stdin.`,
		Example:       examples,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.started = true
			inputs, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return &UsageError{Err: err}
			}
			cfg, err := config.Load(cmd.Flags(), inputs)
			if err != nil {
				return &UsageError{Err: err}
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	config.RegisterFlags(root.Flags())
	root.MarkFlagsMutuallyExclusive(config.KeyMask, config.KeyFilter)
	root.SetVersionTemplate("kcomplex version {{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return &UsageError{Err: err} })

	root.AddCommand(c.zscoreCommand(zs), c.versionCommand())
	c.root = root
	return c
}

func (c *Command) zscoreCommand(zs ZScoreFunc) *cobra.Command {
	var o ZScoreOptions
	cmd := &cobra.Command{
		Use:   "zscore [flags] [table ...]",
		Short: "Select reads by the z-score of their complexity within a run",
		Long: `zscore reads a measure table (the TSV written in measure mode, or a bare
"id<TAB>score" table), standardizes the defined scores with their mean and
sample standard deviation, and prints the IDs whose z-score is strictly
above --threshold (strictly below with --invert).`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.started = true
			inputs, err := cliutil.ExpandPositionals(args)
			if err != nil {
				return &UsageError{Err: err}
			}
			o.Inputs = inputs
			return zs(cmd.Context(), cmd.OutOrStdout(), o)
		},
	}
	fs := cmd.Flags()
	fs.Float64VarP(&o.Threshold, "threshold", "t", zscore.DefaultThreshold, "z-score cut-off")
	fs.BoolVar(&o.Invert, "invert", false, "keep IDs below the cut-off instead")
	fs.BoolVar(&o.PrintZ, "print-z", false, "print the z-score next to each ID")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "do not log the score distribution")
	return cmd
}

func (c *Command) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.started = true
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "kcomplex version %s\n", version.Version)
			return err
		},
	}
}

// Execute runs the command line argv. Errors raised before a handler
// starts are returned as *UsageError.
func (c *Command) Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	if argv == nil {
		argv = []string{} // nil makes cobra fall back to os.Args
	}
	c.root.SetArgs(argv)
	c.root.SetOut(stdout)
	c.root.SetErr(stderr)
	err := c.root.ExecuteContext(ctx)
	if err != nil && !c.started {
		if _, ok := err.(*UsageError); !ok {
			err = &UsageError{Err: err}
		}
	}
	return err
}
