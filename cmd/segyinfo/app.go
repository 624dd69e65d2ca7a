package main

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-segy/internal/config"
	"github.com/robert-malhotra/go-segy/segy"
)

var (
	flagConfig = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML config file",
		EnvVars: []string{"SEGY_CONFIG"},
	}
	flagDebug = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "enable debug logging",
		EnvVars: []string{"SEGY_DEBUG"},
	}
	flagText = &cli.BoolFlag{
		Name:  "text",
		Usage: "print the textual header",
	}
	flagFields = &cli.StringSliceFlag{
		Name:    "fields",
		Aliases: []string{"f"},
		Usage:   "trace header fields to show",
		Value:   cli.NewStringSlice("TraceSequenceLine", "FieldRecord", "TraceNumber", "cdp", "ns", "dt"),
	}
	flagTrace = &cli.IntFlag{
		Name:    "trace",
		Aliases: []string{"t"},
		Usage:   "1-based trace number; 0 shows every trace",
	}
	flagIndex = &cli.IntFlag{
		Name:    "index",
		Aliases: []string{"i"},
		Usage:   "1-based trace number",
		Value:   1,
	}
	flagTraces = &cli.IntFlag{
		Name:  "traces",
		Usage: "number of traces",
		Value: 10,
	}
	flagSamples = &cli.IntFlag{
		Name:  "samples",
		Usage: "samples per trace",
		Value: 100,
	}
	flagFormat = &cli.StringFlag{
		Name:  "format",
		Usage: "sample type: int8, int16, int32, float32 or float64",
		Value: "float32",
	}
	flagDt = &cli.IntFlag{
		Name:  "dt",
		Usage: "sample interval; 0 uses the configured default",
	}
)

// env holds what the Before hook prepares for every command.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newApp() *cli.App {
	e := &env{}
	return &cli.App{
		Name:  "segyinfo",
		Usage: "inspect and synthesize SEG-Y files",
		Flags: []cli.Flag{flagConfig, flagDebug},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String(flagConfig.Name))
			if err != nil {
				return err
			}
			if c.Bool(flagDebug.Name) {
				cfg.Debug = true
			}
			e.cfg = cfg
			e.logger, err = newLogger(cfg.Debug)
			return err
		},
		After: func(c *cli.Context) error {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "header",
				Usage:     "show the binary file header",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{flagText},
				Action:    e.header,
			},
			{
				Name:      "traces",
				Usage:     "show trace header fields",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{flagFields, flagTrace},
				Action:    e.traces,
			},
			{
				Name:      "trace",
				Usage:     "show one trace's header and samples",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{flagIndex},
				Action:    e.trace,
			},
			{
				Name:      "stats",
				Usage:     "show amplitude statistics",
				ArgsUsage: "FILE",
				Action:    e.stats,
			},
			{
				Name:      "synth",
				Usage:     "write a synthetic file of sine traces",
				ArgsUsage: "FILE",
				Flags:     []cli.Flag{flagTraces, flagSamples, flagFormat, flagDt},
				Action:    e.synth,
			},
		},
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func fileArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.Errorf("%s: expected one FILE argument, got %d", c.Command.Name, c.NArg())
	}
	return c.Args().First(), nil
}

func (e *env) readOptions(extra ...segy.Option) ([]segy.Option, error) {
	opts, err := e.cfg.ReadOptions(e.logger)
	if err != nil {
		return nil, err
	}
	return append(opts, extra...), nil
}

func (e *env) header(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	opts, err := e.readOptions(segy.HeadersOnly(), segy.WithTraceHeaderSchema(emptyTraceSchema()))
	if err != nil {
		return err
	}
	f, err := segy.ReadFile(path, opts...)
	if err != nil {
		return err
	}

	if c.Bool(flagText.Name) {
		fmt.Fprintln(c.App.Writer, renderTextual(f.Header))
	}
	fmt.Fprintln(c.App.Writer, renderFileHeader(f.Header))
	fmt.Fprintln(c.App.Writer, renderGeometry(f.Header))
	return nil
}

func (e *env) traces(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	fields, err := segy.TraceHeaderFields(c.StringSlice(flagFields.Name)...)
	if err != nil {
		return err
	}
	opts, err := e.readOptions(segy.HeadersOnly(), segy.WithTraceHeaderSchema(fields))
	if err != nil {
		return err
	}

	index := c.Int(flagTrace.Name)
	if index > 0 {
		tr, err := segy.ReadTraceFile(path, index, opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, renderTraceHeaders(tr.Header, index))
		return nil
	}

	f, err := segy.ReadFile(path, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, renderTraceHeaders(f.Traces, 1))
	return nil
}

func (e *env) trace(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	opts, err := e.readOptions()
	if err != nil {
		return err
	}
	index := c.Int(flagIndex.Name)
	tr, err := segy.ReadTraceFile(path, index, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, renderTraceRow(tr.Header))
	fmt.Fprintln(c.App.Writer, renderSamples(tr.Samples))
	return nil
}

func (e *env) stats(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	opts, err := e.readOptions(segy.WithTraceHeaderSchema(emptyTraceSchema()))
	if err != nil {
		return err
	}
	f, err := segy.ReadFile(path, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, renderStats(f.Data))
	return nil
}

func (e *env) synth(c *cli.Context) error {
	path, err := fileArg(c)
	if err != nil {
		return err
	}
	traces, samples := c.Int(flagTraces.Name), c.Int(flagSamples.Name)
	g, err := sineGrid(traces, samples, c.String(flagFormat.Name))
	if err != nil {
		return err
	}

	opts, err := e.cfg.WriteOptions(e.logger)
	if err != nil {
		return err
	}
	if dt := c.Int(flagDt.Name); dt > 0 {
		opts = append(opts, segy.WithSampleInterval(dt))
	}
	opts = append(opts, segy.WithTextualHeader(fmt.Sprintf("C 1 SYNTHETIC %d TRACES OF %d SAMPLES", traces, samples)))

	res, err := segy.WriteFile(path, g, opts...)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %s: %d traces, %d samples, format %d, %d bytes\n",
		path, res.TraceCount, res.SamplesPerTrace, res.FormatCode, res.Bytes)
	if res.PrecisionLoss {
		fmt.Fprintln(c.App.Writer, "float64 samples were stored as float32")
	}
	return nil
}

// emptyTraceSchema selects no trace header fields.
func emptyTraceSchema() *segy.Schema {
	s, _ := segy.NewTraceHeaderSchema()
	return s
}

// sineGrid builds traces of one sine period, phase shifted per trace,
// scaled to the element type.
func sineGrid(traces, samples int, kind string) (*segy.Grid, error) {
	wave := func(i, j int) float64 {
		return math.Sin(2*math.Pi*float64(j)/float64(samples) + float64(i)*math.Pi/8)
	}
	n := traces * samples
	switch kind {
	case "int8":
		return fill(traces, samples, make([]int8, n), wave, 127)
	case "int16":
		return fill(traces, samples, make([]int16, n), wave, 32767)
	case "int32":
		return fill(traces, samples, make([]int32, n), wave, 1<<20)
	case "float32":
		return fill(traces, samples, make([]float32, n), wave, 1)
	case "float64":
		return fill(traces, samples, make([]float64, n), wave, 1)
	default:
		return nil, errors.Wrapf(segy.ErrUnsupportedDataType, "sample type %q", kind)
	}
}

func fill[T segy.Sample](traces, samples int, data []T, wave func(i, j int) float64, scale float64) (*segy.Grid, error) {
	for i := 0; i < traces; i++ {
		for j := 0; j < samples; j++ {
			data[i*samples+j] = T(math.Round(wave(i, j)*scale*1e6) / 1e6)
		}
	}
	return segy.NewGrid(traces, samples, data)
}
