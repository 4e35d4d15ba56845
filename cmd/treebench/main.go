// Command treebench loads a red-black tree and a B-tree with the same
// random values and reports wall-clock timings for the insert, search,
// and remove phases. The red-black run also audits the structural
// invariants between phases.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/google/btree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ordtree/rbtree"
)

func main() {
	n := flag.Int("n", 100000, "values per phase")
	seed := flag.Int64("seed", time.Now().UnixNano(), "PRNG seed")
	audit := flag.Bool("audit", true, "validate red-black invariants between phases")
	degree := flag.Int("degree", 32, "btree degree")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.WithFields(logrus.Fields{"n": *n, "seed": *seed}).Info("generating workload")

	values := rand.New(rand.NewSource(*seed)).Perm(*n)

	if err := runRedBlack(log, values, *audit); err != nil {
		log.WithError(err).Fatal("red-black phase failed")
	}
	if err := runBTree(log, values, *degree); err != nil {
		log.WithError(err).Fatal("btree phase failed")
	}
}

func runRedBlack(log *logrus.Logger, values []int, audit bool) error {
	tree := rbtree.New(rbtree.Compare[int])

	start := time.Now()
	for _, v := range values {
		if err := tree.Insert(v); err != nil {
			return errors.Wrapf(err, "insert %d", v)
		}
	}
	insertDur := time.Since(start)
	if audit && !tree.Valid() {
		return errors.New("invariant audit failed after inserts")
	}

	start = time.Now()
	for _, v := range values {
		if _, ok := tree.Search(v); !ok {
			return errors.Errorf("value %d missing after insert", v)
		}
	}
	searchDur := time.Since(start)

	start = time.Now()
	for _, v := range values {
		if _, err := tree.Remove(v); err != nil {
			return errors.Wrapf(err, "remove %d", v)
		}
	}
	removeDur := time.Since(start)
	if tree.Size() != 0 {
		return errors.Errorf("%d values left after removing everything", tree.Size())
	}

	log.WithFields(logrus.Fields{
		"impl":   "rbtree",
		"insert": insertDur,
		"search": searchDur,
		"remove": removeDur,
	}).Info("phase complete")
	return nil
}

func runBTree(log *logrus.Logger, values []int, degree int) error {
	tree := btree.NewG(degree, func(a, b int) bool { return a < b })

	start := time.Now()
	for _, v := range values {
		if _, dup := tree.ReplaceOrInsert(v); dup {
			return errors.Errorf("duplicate value %d in workload", v)
		}
	}
	insertDur := time.Since(start)

	start = time.Now()
	for _, v := range values {
		if !tree.Has(v) {
			return errors.Errorf("value %d missing after insert", v)
		}
	}
	searchDur := time.Since(start)

	start = time.Now()
	for _, v := range values {
		if _, ok := tree.Delete(v); !ok {
			return errors.Errorf("value %d missing on delete", v)
		}
	}
	removeDur := time.Since(start)

	log.WithFields(logrus.Fields{
		"impl":   "btree",
		"insert": insertDur,
		"search": searchDur,
		"remove": removeDur,
	}).Info("phase complete")
	return nil
}
