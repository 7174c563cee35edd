// Package main provides the kmeans CLI entry point.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kmeans",
		Short: "kmeans - Lloyd's k-means clustering",
		Long: `kmeans partitions points into k clusters with Lloyd's algorithm.

Features:
  • Random or k-means++ seeding
  • Reproducible runs from a fixed seed
  • CSV or JSON input, optionally gzip, zstd or LZ4 compressed
  • Configuration from YAML, KMEANS_* environment variables and flags`,
		SilenceUsage: true,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kmeans v%s (%s)\n", version, commit)
		},
	})

	// Cluster command
	clusterCmd := &cobra.Command{
		Use:   "cluster [file]",
		Short: "Cluster points read from a file or stdin",
		Long: `Cluster points read from a CSV or JSON file.

The format follows the file extension (.csv, .txt, .json) unless --format is
given. Files ending in .gz, .zst or .lz4 are decompressed. Without a file, or
with "-", points are read from stdin as CSV.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCluster,
	}
	clusterCmd.Flags().Int("k", 0, "Number of clusters")
	clusterCmd.Flags().String("init", "kmeans++", "Initialization method (kmeans++, random)")
	clusterCmd.Flags().Uint64("seed", 0, "Seed for reproducible runs")
	clusterCmd.Flags().Bool("random", false, "Seed from system entropy")
	clusterCmd.Flags().Int("max-iter", 0, "Maximum number of center re-estimations")
	clusterCmd.Flags().String("empty", "keep", "Empty cluster policy (keep, reseed, fail)")
	clusterCmd.Flags().String("format", "auto", "Input format (auto, csv, json)")
	clusterCmd.Flags().String("codec", "go-json", "JSON codec (json, go-json)")
	clusterCmd.Flags().String("output", "text", "Output format (text, json)")
	clusterCmd.Flags().StringP("out", "o", "", "Write output to a file (.gz, .zst, .lz4 compress it)")
	clusterCmd.Flags().String("config", "", "YAML configuration file (env: KMEANS_CONFIG)")
	clusterCmd.Flags().String("env-file", ".env", "Environment file loaded before KMEANS_* variables")
	clusterCmd.Flags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	clusterCmd.Flags().String("log-format", "text", "Log format (text, json)")
	rootCmd.AddCommand(clusterCmd)

	return rootCmd
}
