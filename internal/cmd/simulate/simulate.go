// Package simulate parses simulate command flags and runs a seeded random
// string simulation with progress and timing output.
package simulate

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/fnv"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/louisbranch/simkit/internal/core/progress"
	"github.com/louisbranch/simkit/internal/core/randstr"
	"github.com/louisbranch/simkit/internal/core/timefmt"
	entrypoint "github.com/louisbranch/simkit/internal/platform/cmd"
	"github.com/louisbranch/simkit/internal/platform/dlog"
	"github.com/louisbranch/simkit/internal/platform/otel"
	"github.com/louisbranch/simkit/internal/random"
)

// ErrInvalidConfig indicates a configuration value the simulation cannot run with.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds simulate command configuration. Env tags are read with the
// SIMKIT_ prefix.
type Config struct {
	Count    int    `env:"COUNT" envDefault:"1000"`
	Length   int    `env:"LENGTH" envDefault:"16"`
	Alphabet string `env:"ALPHABET" envDefault:"lower"`
	Seed     uint64 `env:"SEED"`
	Label    string `env:"LABEL" envDefault:"simulate: "`
	Print    bool   `env:"PRINT"`
	Verbose  bool   `env:"VERBOSE"`
}

// Summary describes a completed simulation.
type Summary struct {
	Count   int
	Seed    uint64
	Digest  uint64
	Elapsed time.Duration
}

var alphabets = map[string]randstr.Alphabet{
	"lower":     randstr.Lower,
	"upper":     randstr.Upper,
	"digits":    randstr.Digits,
	"printable": randstr.Printable,
}

// nowFunc is replaced in tests for deterministic timing.
var nowFunc = time.Now

// ParseConfig parses environment and flags into a Config. Flags are
// registered after the environment pass so their defaults show env values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of strings to generate")
	fs.IntVar(&cfg.Length, "length", cfg.Length, "length of each string")
	fs.StringVar(&cfg.Alphabet, "alphabet", cfg.Alphabet, "alphabet ("+strings.Join(alphabetNames(), ", ")+")")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Label, "label", cfg.Label, "prefix for progress and summary lines")
	fs.BoolVar(&cfg.Print, "print", cfg.Print, "print every generated string")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the simulate command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	alpha, err := validate(cfg)
	if err != nil {
		return err
	}
	seed, err := random.SeedOrRandom(cfg.Seed, cfg.Verbose, errOut)
	if err != nil {
		return err
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSimulate, func(ctx context.Context) error {
		summary, err := Simulate(ctx, cfg, alpha, seed, out)
		if err != nil {
			return err
		}

		var elapsed [32]byte
		n := timefmt.Format(elapsed[:], summary.Elapsed.Seconds())
		fmt.Fprintf(out, "%sgenerated %s strings (seed %d, digest %016x) in %s\n",
			cfg.Label, humanize.Comma(int64(summary.Count)), summary.Seed, summary.Digest, elapsed[:n])
		return nil
	})
}

// Simulate generates cfg.Count strings of cfg.Length characters from alpha
// using a source seeded with seed, reporting progress to out. The digest is
// an FNV-1a hash over every generated string and identifies the run's output.
func Simulate(ctx context.Context, cfg Config, alpha randstr.Alphabet, seed uint64, out io.Writer) (Summary, error) {
	ctx, span := otel.Tracer("simkit/simulate").Start(ctx, "simulate.run")
	defer span.End()
	span.SetAttributes(
		attribute.Int("simulate.count", cfg.Count),
		attribute.Int("simulate.length", cfg.Length),
		attribute.Int64("simulate.seed", int64(seed)),
		attribute.String("simulate.alphabet", cfg.Alphabet),
	)

	if dlog.Enabled {
		dlog.Printf("simulate: seed=%d count=%d length=%d alphabet=%s", seed, cfg.Count, cfg.Length, cfg.Alphabet)
	}

	start := nowFunc()
	src := random.NewSource(seed)
	digest := fnv.New64a()
	buf := make([]byte, cfg.Length+1)
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "simulation cancelled")
			return Summary{}, fmt.Errorf("simulate iteration %d: %w", i, err)
		}
		randstr.Fill(buf, cfg.Length, alpha.Size, alpha.Offset, src)
		digest.Write(buf[:cfg.Length])
		if cfg.Print {
			fmt.Fprintf(out, "%s\n", buf[:cfg.Length])
		}
		progress.Report(out, cfg.Label, i, cfg.Count)
	}

	return Summary{
		Count:   cfg.Count,
		Seed:    seed,
		Digest:  digest.Sum64(),
		Elapsed: nowFunc().Sub(start),
	}, nil
}

// LookupAlphabet returns the named alphabet.
func LookupAlphabet(name string) (randstr.Alphabet, error) {
	alpha, ok := alphabets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return randstr.Alphabet{}, fmt.Errorf("%w: unknown alphabet %q (valid alphabets: %s)",
			ErrInvalidConfig, name, strings.Join(alphabetNames(), ", "))
	}
	return alpha, nil
}

func validate(cfg Config) (randstr.Alphabet, error) {
	if cfg.Count < 0 {
		return randstr.Alphabet{}, fmt.Errorf("%w: count %d must not be negative", ErrInvalidConfig, cfg.Count)
	}
	if cfg.Length < 0 {
		return randstr.Alphabet{}, fmt.Errorf("%w: length %d must not be negative", ErrInvalidConfig, cfg.Length)
	}
	return LookupAlphabet(cfg.Alphabet)
}

func alphabetNames() []string {
	names := make([]string, 0, len(alphabets))
	for name := range alphabets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
