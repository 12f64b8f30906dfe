// Package bench measures how array lists grow under sustained appends.
package bench

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/san-kum/dynlist/internal/arraylist"
	"github.com/san-kum/dynlist/internal/log"
)

// checkEvery is how many appends run between context checks.
const checkEvery = 1 << 16

var (
	ErrContentMismatch = errors.New("bench: lists diverged")
	ErrNoCapacities    = errors.New("bench: no initial capacities")
)

// Trace is the capacity after each growth, starting with the initial one.
type Trace []int

// Series converts the trace for plotting.
func (t Trace) Series() []float64 {
	out := make([]float64, len(t))
	for i, c := range t {
		out[i] = float64(c)
	}
	return out
}

type Result struct {
	InitialCapacity int
	Elements        int
	FinalCapacity   int
	Growths         int
	Elapsed         time.Duration
	Trace           Trace
}

// PerSecond is the append throughput.
func (r Result) PerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Elements) / r.Elapsed.Seconds()
}

// Slack is the fraction of the final buffer that holds no element.
func (r Result) Slack() float64 {
	if r.FinalCapacity == 0 {
		return 0
	}
	return float64(r.FinalCapacity-r.Elements) / float64(r.FinalCapacity)
}

// Run appends 0..elements-1 to one list per initial capacity and checks that
// every list ends with the same content.
func Run(ctx context.Context, elements int, initialCaps []int) ([]Result, error) {
	if len(initialCaps) == 0 {
		return nil, ErrNoCapacities
	}

	results := make([]Result, 0, len(initialCaps))
	var reference []int

	for _, initial := range initialCaps {
		list, err := arraylist.WithCapacity[int](initial)
		if err != nil {
			return nil, err
		}

		res, err := fill(ctx, list, elements)
		if err != nil {
			return nil, err
		}
		res.InitialCapacity = initial
		log.Debugf("bench: cap %d -> %d after %d growths in %v", initial, res.FinalCapacity, res.Growths, res.Elapsed)

		values := list.Values()
		if reference == nil {
			reference = values
		} else if !slices.Equal(reference, values) {
			return nil, fmt.Errorf("%w: initial capacity %d", ErrContentMismatch, initial)
		}

		results = append(results, res)
	}

	return results, nil
}

func fill(ctx context.Context, list *arraylist.ArrayList[int], elements int) (Result, error) {
	res := Result{Elements: elements, Trace: Trace{list.Cap()}}
	last := list.Cap()

	start := time.Now()
	for i := 0; i < elements; i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		list.Add(i)
		if c := list.Cap(); c != last {
			last = c
			res.Growths++
			res.Trace = append(res.Trace, c)
		}
	}
	res.Elapsed = time.Since(start)
	res.FinalCapacity = list.Cap()

	if list.Size() != elements {
		return Result{}, fmt.Errorf("%w: size %d, expected %d", ErrContentMismatch, list.Size(), elements)
	}
	return res, nil
}
