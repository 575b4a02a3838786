// Copyright (C) 2025 CardinalHQ, Inc
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, version 3.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

// Package cmd is the CLI shell: argument validation, source dispatch, and
// exit-code policy. The core never runs before validation passes.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardinalhq/pqlens/internal/anatomy"
	"github.com/cardinalhq/pqlens/internal/cloudstorage"
	"github.com/cardinalhq/pqlens/internal/metasource"
	"github.com/cardinalhq/pqlens/internal/tui"
)

var (
	flagAccessKeyID     string
	flagSecretAccessKey string
	flagEndpointURL     string
	flagRegion          string
	flagPathStyle       bool
	flagNoTUI           bool
)

// argumentError marks a failure in argument shape or validation; the shell
// exits 2 for these, before the core ever runs.
type argumentError struct {
	msg string
}

func (e *argumentError) Error() string { return e.msg }

func argumentErrorf(format string, args ...any) error {
	return &argumentError{msg: fmt.Sprintf(format, args...)}
}

var rootCmd = &cobra.Command{
	Use:   "pqlens FILE",
	Short: "Inspect the structural anatomy of a Parquet file",
	Long: `Open a Parquet file (local path or s3://bucket/key URI) and explore its
header, row groups, column chunks, page-index region, footer, schema,
statistics, and a bounded data preview in a tabbed terminal display.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return argumentErrorf("expected exactly one file argument, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagAccessKeyID, "access-key-id", "", "S3 access key id (falls back to AWS_ACCESS_KEY_ID)")
	rootCmd.Flags().StringVar(&flagSecretAccessKey, "secret-access-key", "", "S3 secret access key (falls back to AWS_SECRET_ACCESS_KEY)")
	rootCmd.Flags().StringVar(&flagEndpointURL, "endpoint-url", "", "custom S3 endpoint, for MinIO-compatible stores")
	rootCmd.Flags().StringVar(&flagRegion, "region", "", "S3 region")
	rootCmd.Flags().BoolVar(&flagPathStyle, "path-style", false, "use path-style S3 addressing")
	rootCmd.Flags().BoolVar(&flagNoTUI, "no-tui", false, "print the structure diagram to stdout instead of the interactive display")
}

// Execute runs the root command and maps the error taxonomy onto exit
// codes: 0 success, 1 caught runtime error, 2 argument validation.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var argErr *argumentError
		if errors.As(err, &argErr) {
			fmt.Fprintf(os.Stderr, "pqlens: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "pqlens: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, source string) error {
	handle, err := openSource(ctx, source)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := handle.Close(); cerr != nil {
			slog.Warn("closing source", slog.Any("error", cerr))
		}
	}()

	model := anatomy.BuildModel(handle.Meta())

	if flagNoTUI {
		fmt.Print(tui.RenderStructureText(model))
		return nil
	}

	app := tui.New(model, handle)
	if err := app.Run(); err != nil {
		return fmt.Errorf("running display: %w", err)
	}
	return nil
}

// openSource dispatches on the argument shape: s3:// URIs go through the
// object store, anything else is a local path validated before open.
func openSource(ctx context.Context, source string) (*metasource.FileHandle, error) {
	if strings.HasPrefix(source, "s3://") {
		return openRemote(ctx, source)
	}

	if _, err := os.Stat(source); err != nil {
		if os.IsNotExist(err) {
			return nil, argumentErrorf("no such file: %s", source)
		}
		return nil, argumentErrorf("cannot access %s: %v", source, err)
	}
	return metasource.OpenLocal(source)
}

func openRemote(ctx context.Context, uri string) (*metasource.FileHandle, error) {
	spec, err := cloudstorage.ParseS3URI(uri)
	if err != nil {
		return nil, argumentErrorf("%v", err)
	}

	accessKeyID := flagAccessKeyID
	if accessKeyID == "" {
		accessKeyID = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	secretAccessKey := flagSecretAccessKey
	if secretAccessKey == "" {
		secretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}

	opts := []cloudstorage.S3Option{}
	if flagRegion != "" {
		opts = append(opts, cloudstorage.WithRegion(flagRegion))
	}
	if flagEndpointURL != "" {
		opts = append(opts, cloudstorage.WithEndpoint(flagEndpointURL))
	}
	if flagPathStyle {
		opts = append(opts, cloudstorage.WithPathStyle())
	}

	client, err := cloudstorage.NewS3Client(ctx, accessKeyID, secretAccessKey, opts...)
	if err != nil {
		return nil, err
	}

	slog.Info("fetching object", slog.String("bucket", spec.Bucket), slog.String("key", spec.Key))
	data, err := client.FetchObject(ctx, spec)
	if err != nil {
		return nil, err
	}
	return metasource.OpenBytes(uri, data)
}
