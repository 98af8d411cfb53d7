package nn

import "github.com/gradflow-ml/gradflow/internal/engine"

// MSE computes the mean squared error between predictions and targets as a
// graph node, so the loss itself is differentiable:
//
//	MSE = (1/n) * Σ (pred_i - target_i)²
//
// Panics on mismatched or empty inputs.
func MSE(preds, targets []*engine.Value) *engine.Value {
	if len(preds) == 0 || len(preds) != len(targets) {
		panic("nn: MSE needs equal, non-empty prediction and target slices")
	}

	var sum *engine.Value
	for i, p := range preds {
		sq := p.Sub(targets[i]).Pow(2)
		if sum == nil {
			sum = sq
		} else {
			sum = sum.Add(sq)
		}
	}
	loss := sum.MulScalar(1 / float64(len(preds)))
	loss.SetLabel("mse")
	return loss
}
