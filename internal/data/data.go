// Package data ingests training records into graph leaf nodes.
//
// It is a collaborator of the engine, not part of it: the only engine
// surface it touches is the NewLeaf factory. Records come from delimited
// files (last column is the target, preceding columns are inputs, leaves are
// labeled by column name) or from the built-in XOR dataset.
package data

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/pkg/errors"

	"github.com/gradflow-ml/gradflow/internal/engine"
)

// Sample is one training row: input leaves plus the target leaf.
type Sample struct {
	Inputs []*engine.Value
	Target *engine.Value
}

// LoadCSV reads a headered CSV file into samples. The last column is the
// target; every other column is an input. Each cell becomes a fresh leaf
// node labeled with its column name.
func LoadCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open training data %s", path)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return nil, errors.Wrapf(df.Err, "parse training data %s", path)
	}
	if df.Ncol() < 2 {
		return nil, errors.Errorf("training data %s needs at least one input column and a target column", path)
	}

	names := df.Names()
	target := df.Ncol() - 1
	samples := make([]Sample, 0, df.Nrow())
	for r := 0; r < df.Nrow(); r++ {
		inputs := make([]*engine.Value, target)
		for c := 0; c < target; c++ {
			inputs[c] = engine.NewLeaf(df.Elem(r, c).Float(), names[c])
		}
		samples = append(samples, Sample{
			Inputs: inputs,
			Target: engine.NewLeaf(df.Elem(r, target).Float(), names[target]),
		})
	}
	return samples, nil
}

// XOR returns the 4-row exclusive-or dataset with inputs labeled x1, x2 and
// target y. Fresh leaves on every call.
func XOR() []Sample {
	rows := [][3]float64{
		{0, 0, 0},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	samples := make([]Sample, len(rows))
	for i, row := range rows {
		samples[i] = Sample{
			Inputs: []*engine.Value{
				engine.NewLeaf(row[0], "x1"),
				engine.NewLeaf(row[1], "x2"),
			},
			Target: engine.NewLeaf(row[2], "y"),
		}
	}
	return samples
}

// Shuffle permutes samples in place.
func Shuffle(rng *rand.Rand, samples []Sample) {
	rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
}

// Split divides samples at trainFrac (e.g. 0.8 for an 80/20 split). Both
// halves share the underlying array; panics if the fraction is out of (0,1].
func Split(samples []Sample, trainFrac float64) (train, test []Sample) {
	if trainFrac <= 0 || trainFrac > 1 {
		panic(fmt.Sprintf("data: train fraction %v out of (0,1]", trainFrac))
	}
	idx := int(float64(len(samples)) * trainFrac)
	return samples[:idx], samples[idx:]
}
