package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Label string `env:"CMD_TEST_LABEL" envDefault:"sim: "`
	Count int    `env:"CMD_TEST_COUNT" envDefault:"10"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("SIMKIT_CMD_TEST_LABEL", "env: ")
	t.Setenv("SIMKIT_CMD_TEST_COUNT", "20")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(&cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Label, "label", cfgRef.Label, "label")
	fs.IntVar(&cfgRef.Count, "count", cfgRef.Count, "count")

	if err := ParseArgs(fs, []string{"-label", "flag: "}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Label != "flag: " {
		t.Fatalf("expected flag value for label, got %q", cfgRef.Label)
	}
	if cfgRef.Count != 20 {
		t.Fatalf("expected env count, got %d", cfgRef.Count)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil config target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceSimulate, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("SIMKIT_OTEL_ENDPOINT", "")

	want := errors.New("boom")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceSimulate, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run function to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
