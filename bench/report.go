package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Result of one scenario run.
type Result struct {
	Kind    string
	Workers int
	Ops     int
	// Elapsed is the wall-clock time of the whole run.
	Elapsed time.Duration
	// Worker holds each worker's busy time.
	Worker []time.Duration
}

// Rate returns operations per second over the wall-clock elapsed time.
func (res *Result) Rate() float64 {
	if res.Elapsed <= 0 {
		return 0
	}
	return float64(res.Workers*res.Ops) / res.Elapsed.Seconds()
}

// Print writes an aligned key=value report.
func (res *Result) Print(w io.Writer) {
	p := statusPrinter{w: w, padding: 12}
	p.print("kind", res.Kind)
	p.print("workers", res.Workers)
	p.print("ops", res.Workers*res.Ops)
	p.print("elapsed", res.Elapsed.Round(time.Microsecond))
	p.print("rate", fmt.Sprintf("%.0f ops/s", res.Rate()))
	p.print("worker-min", Min(res.Worker).Round(time.Microsecond))
	p.print("worker-mean", time.Duration(Mean(res.Worker)).Round(time.Microsecond))
	p.print("worker-max", Max(res.Worker).Round(time.Microsecond))
}

type statusPrinter struct {
	w       io.Writer
	padding int
}

func (s statusPrinter) print(key string, value any) {
	fmt.Fprintf(s.w, "%s%s=%v\n", strings.Repeat(" ", s.padding-len(key)), key, value)
}

// Min returns the smallest element of s, or the zero value if s is empty.
func Min[T constraints.Integer | constraints.Float](s []T) (m T) {
	for i, v := range s {
		if i == 0 || v < m {
			m = v
		}
	}
	return m
}

// Max returns the largest element of s, or the zero value if s is empty.
func Max[T constraints.Integer | constraints.Float](s []T) (m T) {
	for i, v := range s {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Mean returns the arithmetic mean of s, or 0 if s is empty.
func Mean[T constraints.Integer | constraints.Float](s []T) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := float64(0)
	for _, v := range s {
		sum += float64(v)
	}
	return sum / float64(len(s))
}
