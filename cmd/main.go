package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/unixsysdev/gemmbench"
)

func main() {
	// Thread caps must be in place before the first multiply.
	gemmbench.CapThreads()

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		log.Fatalf("benchmark failed: %v", err)
	}
}

func run(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("gemmbench", flag.ExitOnError)
	sizes := fs.String("sizes", "256,512,1024", "comma-separated square matrix sizes")
	runs := fs.Int("runs", 5, "timed multiplications per size")
	warmup := fs.Int("warmup", 1, "untimed warmup multiplications per size")
	seed := fs.Int64("seed", 0, "input generator seed (0 = time-based)")
	verify := fs.Bool("verify", false, "check products against a blas64 reference")
	_ = fs.Parse(args)

	ns, err := parseSizes(*sizes)
	if err != nil {
		return errors.Wrap(err, "bad -sizes")
	}

	fmt.Fprintln(w, "=== Gorgonia Single-Threaded Benchmark ===")
	fmt.Fprintln(w)

	results, err := gemmbench.Run(
		gemmbench.WithSizes(ns...),
		gemmbench.WithTimedRuns(*runs),
		gemmbench.WithWarmupRuns(*warmup),
		gemmbench.WithSeed(*seed),
		gemmbench.WithVerify(*verify),
	)
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Fprintln(w, r)
	}
	return nil
}

func parseSizes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
