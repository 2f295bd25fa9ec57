// Package bench measures the latency and allocation cost of the
// fixedstring entry points and the record codec built on them.
package bench

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rawbytedev/fixedstring"
	"github.com/rawbytedev/fixedstring/pkg/record"
	"github.com/rawbytedev/fixedstring/pkg/wire"
	"gopkg.in/yaml.v3"
)

// Config holds the harness settings. Environment variables provide the
// defaults and flags override them.
type Config struct {
	Iterations int    `env:"FIXEDSTRING_BENCH_ITERATIONS" envDefault:"100000"`
	MemProfile string `env:"FIXEDSTRING_BENCH_MEMPROFILE"`
	PprofAddr  string `env:"FIXEDSTRING_BENCH_PPROF_ADDR"`
}

// ParseConfig reads the environment and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iterations per case")
	fs.StringVar(&cfg.MemProfile, "memprofile", cfg.MemProfile, "write a heap profile to this file")
	fs.StringVar(&cfg.PprofAddr, "pprof", cfg.PprofAddr, "serve net/http/pprof on this address while running")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Result is the measurement of one case.
type Result struct {
	Name        string  `yaml:"name"`
	NsPerOp     float64 `yaml:"ns_per_op"`
	AllocsPerOp float64 `yaml:"allocs_per_op"`
	BytesPerOp  float64 `yaml:"bytes_per_op"`
}

type Report struct {
	GoVersion  string   `yaml:"go_version"`
	GOARCH     string   `yaml:"goarch"`
	Iterations int      `yaml:"iterations"`
	Results    []Result `yaml:"results"`
}

type benchCase struct {
	name string
	op   func()
}

// Run measures every case and writes a YAML report to out.
func Run(cfg Config, out io.Writer) error {
	if cfg.Iterations <= 0 {
		return errors.New("iterations must be greater than zero")
	}
	if out == nil {
		return errors.New("output is required")
	}
	if cfg.MemProfile != "" {
		prev := runtime.MemProfileRate
		runtime.MemProfileRate = 1
		defer func() { runtime.MemProfileRate = prev }()
	}

	cases, err := allCases()
	if err != nil {
		return err
	}
	report := Report{
		GoVersion:  runtime.Version(),
		GOARCH:     runtime.GOARCH,
		Iterations: cfg.Iterations,
	}
	for _, c := range cases {
		report.Results = append(report.Results, measure(c, cfg.Iterations))
	}

	if cfg.MemProfile != "" {
		if err := writeHeapProfile(cfg.MemProfile); err != nil {
			return err
		}
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

func measure(c benchCase, n int) Result {
	c.op() // warm up
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	start := time.Now()
	for range n {
		c.op()
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)
	return Result{
		Name:        c.name,
		NsPerOp:     float64(elapsed.Nanoseconds()) / float64(n),
		AllocsPerOp: float64(after.Mallocs-before.Mallocs) / float64(n),
		BytesPerOp:  float64(after.TotalAlloc-before.TotalAlloc) / float64(n),
	}
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}

var (
	sinkBool  bool
	sinkInt   int
	sinkBytes []byte
)

const sample = "radar/front-left/objects/tracked/v2"

func allCases() ([]benchCase, error) {
	var cases []benchCase
	cases = append(cases, stringCases[fixedstring.Cap16]("cap16")...)
	cases = append(cases, stringCases[fixedstring.Cap64]("cap64")...)
	cases = append(cases, stringCases[fixedstring.Cap256]("cap256")...)
	rc, err := recordCases()
	if err != nil {
		return nil, err
	}
	return append(cases, rc...), nil
}

func stringCases[B fixedstring.Buffer](prefix string) []benchCase {
	s := fixedstring.FromString[B](fixedstring.Truncate, sample)
	other := fixedstring.FromString[B](fixedstring.Truncate, sample[:len(sample)-1])
	buf := make([]byte, 0, s.BinarySize())
	return []benchCase{
		{prefix + "/FromString", func() { s = fixedstring.FromString[B](fixedstring.Truncate, sample) }},
		{prefix + "/UnsafeAssign", func() { sinkBool = s.UnsafeAssign(sample) }},
		{prefix + "/Compare", func() { sinkInt = s.Compare(&other) }},
		{prefix + "/AppendBinary", func() { buf, _ = s.AppendBinary(buf[:0]) }},
		{prefix + "/AppendCompact", func() { sinkBytes = s.AppendCompact(buf[:0]) }},
	}
}

type event struct {
	Seq    uint64
	Topic  fixedstring.String[fixedstring.Cap64]
	Source fixedstring.String[fixedstring.Cap16]
	Level  int8
}

func recordCases() ([]benchCase, error) {
	codec := record.NewCodec()
	enc, err := wire.NewEncoder(codec)
	if err != nil {
		return nil, err
	}
	ev := event{
		Seq:    1,
		Topic:  fixedstring.FromString[fixedstring.Cap64](fixedstring.Truncate, sample),
		Source: fixedstring.FromString[fixedstring.Cap16](fixedstring.Truncate, "fsbench"),
	}
	data, err := codec.Encode(&ev)
	if err != nil {
		return nil, err
	}
	batch := make([]event, 32)
	for i := range batch {
		batch[i] = ev
	}
	buf := make([]byte, 0, len(data))
	var out event
	return []benchCase{
		{"record/Encode", func() { buf, _ = codec.AppendEncode(buf[:0], &ev) }},
		{"record/Decode", func() { _ = codec.Decode(data, &out) }},
		{"wire/Pack32", func() { sinkBytes, _ = wire.Pack(enc, batch) }},
	}, nil
}
