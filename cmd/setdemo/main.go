// Exercises OrderedSet with integers and prints element counts.
//
// Example run:
// $ go run ./cmd/setdemo ascending --print
// $ go run ./cmd/setdemo copy -n 1000000
// $ go run ./cmd/setdemo --limit 500 collect
package main

import (
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"

	"github.com/g-m-twostay/go-avlset/Sets/OrderedSet"
)

var logger = log.Default.WithNames("setdemo")

type AscendingCmd struct {
	N     int  `arg:"-n" default:"1000" help:"number of values to insert"`
	Print bool `help:"print every value in order"`
}

type CopyCmd struct {
	N int `arg:"-n" default:"1000000" help:"number of values to insert before copying"`
}

type CollectCmd struct {
	N    int   `arg:"-n" default:"1000000" help:"length of the input sequence"`
	Seed int64 `default:"1" help:"seed of the random input"`
}

type DuplicateCmd struct {
	Value int `arg:"positional" default:"42"`
}

type EraseRootCmd struct{}

var flags struct {
	Debug bool
	Limit uint32 `help:"maximum number of values per set, 0 for none"`

	*AscendingCmd `arg:"subcommand:ascending"`
	*CopyCmd      `arg:"subcommand:copy"`
	*CollectCmd   `arg:"subcommand:collect"`
	*DuplicateCmd `arg:"subcommand:duplicate"`
	*EraseRootCmd `arg:"subcommand:erase-root"`
}

func main() {
	if err := mainErr(); err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	p := arg.MustParse(&flags)
	if flags.Debug {
		logger = logger.FilterLevel(log.Debug)
	}
	switch {
	case flags.AscendingCmd != nil:
		return ascending(*flags.AscendingCmd)
	case flags.CopyCmd != nil:
		return copySet(*flags.CopyCmd)
	case flags.CollectCmd != nil:
		return collect(*flags.CollectCmd)
	case flags.DuplicateCmd != nil:
		return duplicate(*flags.DuplicateCmd)
	case flags.EraseRootCmd != nil:
		return eraseRoot()
	default:
		p.Fail("expected a subcommand")
		panic("unreachable")
	}
}

func options() []OrderedSet.Option {
	return []OrderedSet.Option{OrderedSet.WithLimit(flags.Limit)}
}

// timed runs f and logs how long it took.
func timed(what string, f func() error) error {
	start := time.Now()
	err := f()
	logger.Levelf(log.Debug, "%s took %v", what, time.Since(start))
	return err
}

func ascending(cmd AscendingCmd) error {
	s := OrderedSet.New[int](options()...)
	err := timed("inserting", func() error {
		for i := range cmd.N {
			if err := s.Insert(i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Println(s.Size())
	b := slices.Collect(s.All())
	fmt.Println(s.Size(), len(b))
	if cmd.Print {
		for _, v := range b {
			fmt.Println(v)
		}
	}
	return s.Check()
}

func copySet(cmd CopyCmd) error {
	a := OrderedSet.New[int](append(options(), OrderedSet.WithHint(uint32(cmd.N)))...)
	err := timed("inserting", func() error {
		for i := 1; i <= cmd.N; i++ {
			if err := a.Insert(i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	var b *OrderedSet.OrderedSet[int]
	timed("copying", func() error {
		b = a.Clone()
		return nil
	})
	fmt.Println(a.Size(), b.Size())
	a.Destroy()
	logger.Levelf(log.Info, "destroyed the original, copy holds %s values", humanize.Comma(int64(b.Size())))
	fmt.Println(a.Size(), b.Size())
	return b.Check()
}

func collect(cmd CollectCmd) error {
	rg := rand.New(rand.NewSource(cmd.Seed))
	in := make([]int, cmd.N)
	for i := range in {
		in[i] = rg.Intn(cmd.N)
	}
	var s *OrderedSet.OrderedSet[int]
	err := timed("collecting", func() (err error) {
		s, err = OrderedSet.Collect(slices.Values(in), options()...)
		return
	})
	if err != nil {
		return errors.Wrapf(err, "collecting %s values", humanize.Comma(int64(cmd.N)))
	}
	slices.Sort(in)
	distinct := len(slices.Compact(in))
	fmt.Println(s.Size(), distinct)
	if s.Size() != uint(distinct) {
		return fmt.Errorf("set holds %d values, input has %d distinct values", s.Size(), distinct)
	}
	return s.Check()
}

func duplicate(cmd DuplicateCmd) error {
	s := OrderedSet.New[int](options()...)
	for range 2 {
		if err := s.Insert(cmd.Value); err != nil {
			return err
		}
		fmt.Println(s.Size())
	}
	return nil
}

func eraseRoot() error {
	s, err := OrderedSet.Of(2, 1, 3)
	if err != nil {
		return err
	}
	s.Erase(2)
	fmt.Println(s.Size(), slices.Collect(s.All()))
	return s.Check()
}
