// Package cli implements the command-line interface for s3du.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/eunmann/s3du/internal/logctx"
	"github.com/eunmann/s3du/pkg/inventory"
	"github.com/eunmann/s3du/pkg/logging"
	"github.com/eunmann/s3du/pkg/s3list"
	"github.com/eunmann/s3du/pkg/termsize"
	"github.com/eunmann/s3du/pkg/usage"
)

const releaseVersion = "0.1.0"

// listerFactory builds the storage client once flags are parsed.
type listerFactory func(ctx context.Context, opts s3list.Options) (inventory.Lister, error)

func newS3Lister(ctx context.Context, opts s3list.Options) (inventory.Lister, error) {
	c, err := s3list.NewClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Run executes the CLI with the given arguments.
func Run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newCmd(&Config{}, newS3Lister)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newCmd(cfg *Config, newLister listerFactory) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("S3DU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "s3du [BUCKET ...]",
		Short: "Report object count and total size per S3 bucket.",
		Long: "Report object count and total size per S3 bucket.\n\n" +
			"With no arguments every bucket visible to the credentials is reported.\n" +
			"Progress is shown live; a CSV table follows once all buckets are done.",
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			level, _ := logging.ParseLevel(cfg.logLevel)
			logging.Init(level, cfg.logHuman)

			ctx := logctx.WithLogger(cmd.Context(), logging.WithPhase("s3du"))
			lister, err := newLister(ctx, cfg.s3Options())
			if err != nil {
				return err
			}
			return run(ctx, lister, args, cmd.OutOrStdout(), termsize.Stdout)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVar(&cfg.accessKey, "access-key", "", "static access key id, requires --secret-key (env: S3DU_ACCESS_KEY)")
	fs.StringVar(&cfg.endpoint, "endpoint", "", "base URL of an S3-compatible service (env: S3DU_ENDPOINT)")
	fs.BoolVar(&cfg.logHuman, "log-human", false, "write diagnostics in console format instead of JSON (env: S3DU_LOG_HUMAN)")
	fs.StringVar(&cfg.logLevel, "log-level", logging.DefaultLevel.String(), "diagnostic log level on stderr (env: S3DU_LOG_LEVEL)")
	fs.IntVar(&cfg.pageSize, "page-size", 0, "keys requested per listing call, 0 for the provider default (env: S3DU_PAGE_SIZE)")
	fs.BoolVar(&cfg.pathStyle, "path-style", false, "use path-style bucket addressing (env: S3DU_PATH_STYLE)")
	fs.StringVarP(&cfg.profile, "profile", "p", "", "shared AWS config profile (env: S3DU_PROFILE)")
	fs.StringVarP(&cfg.region, "region", "r", "", "AWS region (env: S3DU_REGION)")
	fs.StringVar(&cfg.secretKey, "secret-key", "", "static secret access key, requires --access-key (env: S3DU_SECRET_KEY)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("s3du v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

// run resolves the bucket list and writes the report to stdout. Output is
// flushed even on failure so completed bucket sections stay visible.
func run(ctx context.Context, lister inventory.Lister, args []string, stdout io.Writer, width func() int) error {
	buckets, err := resolveBuckets(ctx, lister, args)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(stdout)
	_, err = usage.NewReport(lister, out, width).Run(ctx, buckets)
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = fmt.Errorf("flush output: %w", ferr)
	}
	return err
}

// resolveBuckets returns args unchanged when any were given, otherwise
// every bucket the provider lists.
func resolveBuckets(ctx context.Context, lister inventory.Lister, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	start := time.Now()
	buckets, err := lister.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}
	logging.BucketsListed(logctx.FromContext(ctx), time.Since(start)).
		Int("buckets", len(buckets)).
		Log("buckets listed")
	return buckets, nil
}
