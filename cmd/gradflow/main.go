// Package main provides the gradflow CLI.
//
// Two modes exercise the library end to end:
//
//	gradflow val          walk a hand-built tanh neuron graph
//	gradflow val -visualize   same, stepping through backprop interactively
//	gradflow nn           train an MLP on the XOR dataset (or -data CSV)
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/gradflow-ml/gradflow/engine"
	"github.com/gradflow-ml/gradflow/internal/data"
	"github.com/gradflow-ml/gradflow/internal/plot"
	"github.com/gradflow-ml/gradflow/nn"
	"github.com/gradflow-ml/gradflow/optim"
	"github.com/gradflow-ml/gradflow/viz"
)

func main() {
	var (
		visualize = flag.Bool("visualize", false, "step through backprop interactively (val mode)")
		dataPath  = flag.String("data", "", "CSV training data; built-in XOR dataset when empty (nn mode)")
		epochs    = flag.Int("epochs", 100, "training epochs (nn mode)")
		lr        = flag.Float64("lr", 0.1, "learning rate (nn mode)")
		seed      = flag.Int64("seed", 0, "RNG seed; 0 seeds from the clock (nn mode)")
		plotPath  = flag.String("plot", "training_loss.png", "loss curve output image (nn mode)")
	)
	klog.InitFlags(nil)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <val|nn>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.Arg(0) {
	case "val":
		runValues(*visualize)
	case "nn":
		if err := runNN(*dataPath, *epochs, *lr, *seed, *plotPath); err != nil {
			klog.Fatalf("nn mode failed: %+v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runValues builds the classic two-input tanh neuron and backpropagates
// through it, printing the graph before and after.
func runValues(visualize bool) {
	x1 := engine.NewLeaf(2.0, "x1")
	x2 := engine.NewLeaf(0.0, "x2")
	w1 := engine.NewLeaf(-3.0, "w1")
	w2 := engine.NewLeaf(1.0, "w2")
	b := engine.NewLeaf(6.8813735870195432, "b")

	x1w1 := x1.Mul(w1)
	x1w1.SetLabel("x1*w1")
	x2w2 := x2.Mul(w2)
	x2w2.SetLabel("x2*w2")
	x1w1x2w2 := x1w1.Add(x2w2)
	x1w1x2w2.SetLabel("x1w1 + x2w2")
	n := x1w1x2w2.Add(b)
	n.SetLabel("n")
	o := n.Tanh()
	o.SetLabel("o")

	fmt.Println("Before backprop:")
	fmt.Println(viz.Draw(o))

	if visualize {
		o.BackwardWithObserver(viz.NewStepper(o))
	} else {
		o.Backward()
	}

	fmt.Println("After backprop:")
	fmt.Println(viz.Draw(o))
}

// runNN trains a 2-layer MLP on the training data and reports test-set
// accuracy, writing the loss curve to plotPath.
func runNN(dataPath string, epochs int, lr float64, seed int64, plotPath string) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var samples []data.Sample
	if dataPath != "" {
		var err error
		samples, err = data.LoadCSV(dataPath)
		if err != nil {
			return err
		}
	} else {
		samples = data.XOR()
	}
	if len(samples) == 0 {
		return errors.New("no training samples")
	}
	data.Shuffle(rng, samples)

	// With a handful of rows a held-out split is meaningless; evaluate on
	// the training rows instead, the way the XOR walkthrough always has.
	train, test := samples, samples
	if len(samples) >= 10 {
		train, test = data.Split(samples, 0.8)
	}

	model := nn.NewMLP(rng, len(train[0].Inputs), []int{4, 1})
	optimizer := optim.NewSGD(model.Parameters(), optim.Config{LR: lr})
	klog.V(1).Infof("training on %d rows, testing on %d, seed %d", len(train), len(test), seed)

	losses := make([]float64, 0, epochs)
	bar := progressbar.Default(int64(epochs), "training")
	for epoch := 0; epoch < epochs; epoch++ {
		epochLoss := 0.0
		for _, s := range train {
			pred := model.Forward(s.Inputs)[0]
			loss := nn.MSE([]*engine.Value{pred}, []*engine.Value{s.Target})
			epochLoss += loss.Data()

			optimizer.ZeroGrad()
			loss.Backward()
			optimizer.Step()
		}
		epochLoss /= float64(len(train))
		losses = append(losses, epochLoss)
		_ = bar.Add(1)

		if epoch%10 == 0 {
			klog.V(1).Infof("epoch %d: loss = %.4f", epoch, epochLoss)
		}
	}

	if err := plot.Losses(losses, plotPath); err != nil {
		return err
	}
	klog.V(1).Infof("loss curve written to %s", plotPath)

	fmt.Println("\n--- Test Set Evaluation ---")
	correct := 0
	totalErr := 0.0
	for _, s := range test {
		pred := model.Forward(s.Inputs)[0]
		absErr := math.Abs(pred.Data() - s.Target.Data())
		totalErr += absErr
		if absErr < 0.5 {
			correct++
		}
		inputs := make([]string, len(s.Inputs))
		for i, in := range s.Inputs {
			inputs[i] = fmt.Sprintf("%.1f", in.Data())
		}
		fmt.Printf("Input: (%s), Target: %.1f, Predicted: %.1f\n",
			strings.Join(inputs, ", "), s.Target.Data(), pred.Data())
	}
	fmt.Printf("\nTest Accuracy: %.1f%%\n", float64(correct)/float64(len(test))*100)
	fmt.Printf("Test Average Error: %.4f\n", totalErr/float64(len(test)))
	return nil
}
