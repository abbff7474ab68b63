// Measures erase-then-query time of AVLTree against other ordered containers over a range of
// erase counts and prints the average and standard deviation per container.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/anacrolix/log"
	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-avlset/Trees"
)

var logger = log.Default.WithNames("measure")

var flags = struct {
	N     uint32 `arg:"-n" help:"number of values inserted before each run"`
	Steps uint32 `help:"number of erase counts to try, evenly spaced in (0, n)"`
	Seed  int64
	Only  []string `help:"containers to measure: avl, btree, gods, llrb"`
	Debug bool
}{
	N:     1000000,
	Steps: 50,
	Only:  []string{"avl", "btree", "gods", "llrb"},
}

var (
	rg   *rand.Rand
	bRmv uint32
)

// container is the part of an ordered set a run exercises.
type container interface {
	insert(int)
	erase(int)
	has(int) bool
}

type avl struct{ *Trees.AVLTree[int, uint32] }

func (u avl) insert(v int) { u.Insert(v) }
func (u avl) erase(v int) { u.Erase(v) }
func (u avl) has(v int) bool { return u.Has(v) }

type bTree struct{ *btree.BTreeG[int] }

func (u bTree) insert(v int) { u.ReplaceOrInsert(v) }
func (u bTree) erase(v int) { u.Delete(v) }
func (u bTree) has(v int) bool { return u.Has(v) }

type godsAVL struct{ *avltree.Tree }

func (u godsAVL) insert(v int) { u.Put(v, nil) }
func (u godsAVL) erase(v int) { u.Remove(v) }
func (u godsAVL) has(v int) bool {
	_, ok := u.Get(v)
	return ok
}

type llrbTree struct{ *llrb.LLRB }

func (u llrbTree) insert(v int) { u.ReplaceOrInsert(llrb.Int(v)) }
func (u llrbTree) erase(v int) { u.Delete(llrb.Int(v)) }
func (u llrbTree) has(v int) bool { return u.Has(llrb.Int(v)) }

var makers = map[string]func(n uint32) container{
	"avl":   func(n uint32) container { return avl{Trees.New[int](n)} },
	"btree": func(uint32) container { return bTree{btree.NewOrderedG[int](32)} },
	"gods":  func(uint32) container { return godsAVL{avltree.NewWithIntComparator()} },
	"llrb":  func(uint32) container { return llrbTree{llrb.New()} },
}

var sideEff bool

func benchmark(mk func(uint32) container) func(*testing.B) {
	return func(b *testing.B) {
		all := make([]int, flags.N)
		for range b.N {
			b.StopTimer()
			c := mk(flags.N)
			for i := range all {
				all[i] = rg.Int()
				c.insert(all[i])
			}
			m := slices.Max(all[bRmv:])
			b.StartTimer()
			for _, v := range all[bRmv:] {
				c.erase(v)
			}
			for _, v := range all[:bRmv] {
				sideEff = c.has(v)
			}
			for range bRmv {
				sideEff = c.has(rg.Intn(m))
			}
		}
	}
}

func main() {
	if err := mainErr(); err != nil {
		logger.Levelf(log.Error, "error in main: %v", err)
		os.Exit(1)
	}
}

func mainErr() error {
	testing.Init()
	p := arg.MustParse(&flags)
	if flags.Steps < 2 || flags.N < flags.Steps {
		p.Fail("need 2 <= steps <= n")
	}
	if flags.Debug {
		logger = logger.FilterLevel(log.Debug)
	}
	for _, name := range flags.Only {
		mk, ok := makers[name]
		if !ok {
			return fmt.Errorf("unknown container %q", name)
		}
		rg = rand.New(rand.NewSource(flags.Seed))
		avg, stddev, runs := measure(name, mk)
		fmt.Printf("%s: average %v/op, stddev %v/op over %s runs\n", name, avg, stddev, humanize.Comma(int64(runs)))
	}
	return nil
}

func measure(name string, mk func(uint32) container) (avg, stddev time.Duration, runs int) {
	var cs []float64
	for i := uint32(1); i < flags.Steps; i++ {
		bRmv = flags.N / flags.Steps * i
		br := testing.Benchmark(benchmark(mk))
		cs = append(cs, float64(br.NsPerOp()))
		runs += br.N
		logger.Levelf(log.Debug, "%s step %d: erased %s values, %v/op", name, i, humanize.Comma(int64(flags.N-bRmv)), time.Duration(br.NsPerOp()))
	}
	var sum float64
	for _, v := range cs {
		sum += v
	}
	mean := sum / float64(len(cs))
	sum = 0
	for _, v := range cs {
		d := v - mean
		sum += d * d
	}
	return time.Duration(mean), time.Duration(math.Sqrt(sum / float64(len(cs)))), runs
}
