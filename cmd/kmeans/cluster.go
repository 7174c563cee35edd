package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/internal/pointio"
	"github.com/hupe1980/kmeans/model"
)

// clusterOutput is the JSON document written by --output json.
type clusterOutput struct {
	RunID         string      `json:"run_id"`
	K             int         `json:"k"`
	State         string      `json:"state"`
	Converged     bool        `json:"converged"`
	Iterations    int         `json:"iterations"`
	Inertia       float64     `json:"inertia"`
	Sizes         []int       `json:"sizes"`
	EmptyClusters []int       `json:"empty_clusters,omitempty"`
	Centers       [][]float64 `json:"centers"`
	Labels        []int       `json:"labels"`
}

func runCluster(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	c, _ := codec.ByName(cfg.Codec)

	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	points, err := readPoints(cmd, path, cfg, c)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	logger.Debug("configuration resolved", "config", cfg.String(), "points", len(points))

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, kmeans.WithLogger(logger))

	res, err := kmeans.Fit(cmd.Context(), points, cfg.K, opts...)
	if err != nil {
		return fmt.Errorf("cluster: %w", err)
	}

	out, _ := cmd.Flags().GetString("out")
	return writeResult(cmd.OutOrStdout(), out, cfg.Output, res, c)
}

// resolveConfig applies defaults, the YAML file, the environment and the
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv("KMEANS_CONFIG")
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()

	if flags.Changed("k") {
		cfg.K, _ = flags.GetInt("k")
	}
	if flags.Changed("init") {
		cfg.Init, _ = flags.GetString("init")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("random") {
		cfg.Random, _ = flags.GetBool("random")
	}
	if flags.Changed("max-iter") {
		cfg.MaxIterations, _ = flags.GetInt("max-iter")
	}
	if flags.Changed("empty") {
		cfg.EmptyClusters, _ = flags.GetString("empty")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("codec") {
		cfg.Codec, _ = flags.GetString("codec")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
}

func readPoints(cmd *cobra.Command, path string, cfg *Config, c codec.Codec) (model.PointSet, error) {
	format, err := pointio.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	if path != "" && path != "-" {
		return pointio.ReadFile(path, format, c)
	}

	if format == pointio.FormatAuto {
		format = pointio.FormatCSV
	}
	return pointio.Read(cmd.InOrStdin(), format, c)
}

func newLogger(w io.Writer, cfg *Config) (*kmeans.Logger, error) {
	level, err := cfg.logLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return kmeans.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return kmeans.NewLogger(slog.NewTextHandler(w, opts)), nil
}

func writeResult(stdout io.Writer, out, output string, res *kmeans.Result, c codec.Codec) error {
	if out == "" {
		return encodeResult(stdout, output, res, c)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	w, err := pointio.NewWriter(f, pointio.CompressionFromPath(out))
	if err != nil {
		_ = f.Close()
		return err
	}

	err = encodeResult(w, output, res, c)
	return errors.Join(err, w.Close(), f.Close())
}

func encodeResult(w io.Writer, output string, res *kmeans.Result, c codec.Codec) error {
	if output == "json" {
		return writeJSON(w, res, c)
	}
	return writeText(w, res)
}

func writeText(w io.Writer, res *kmeans.Result) error {
	if err := res.WriteCenters(w); err != nil {
		return err
	}

	labels := make([]string, len(res.Labels))
	for i, l := range res.Labels {
		labels[i] = strconv.Itoa(l)
	}
	_, err := fmt.Fprintf(w, "labels: %s\n", strings.Join(labels, " "))
	return err
}

func writeJSON(w io.Writer, res *kmeans.Result, c codec.Codec) error {
	doc := clusterOutput{
		RunID:         res.RunID,
		K:             res.K,
		State:         res.State.String(),
		Converged:     res.Converged,
		Iterations:    res.Iterations,
		Inertia:       res.Inertia,
		Sizes:         res.Sizes(),
		EmptyClusters: res.EmptyClusters,
		Centers:       make([][]float64, len(res.Centers)),
		Labels:        res.Labels,
	}
	for i, center := range res.Centers {
		doc.Centers[i] = center
	}

	data, err := c.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
