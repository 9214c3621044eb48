package nn

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dendrite-ml/dendrite/internal/matrix"
)

// Checkpoint is a snapshot of a network together with training metadata.
//
// Checkpoints let a training run be saved and resumed, or a trained network
// be shipped to an inference command.
//
// Example:
//
//	checkpoint := &nn.Checkpoint{Network: net, Epoch: 200, Loss: 0.012}
//	if err := checkpoint.Save("xor.json"); err != nil {
//	    log.Fatal(err)
//	}
type Checkpoint struct {
	Network   *Network
	Epoch     int
	Loss      float64
	CreatedAt time.Time
}

type checkpointFile struct {
	Layers    []layerFile `json:"layers"`
	Epoch     int         `json:"epoch"`
	Loss      float64     `json:"loss"`
	CreatedAt time.Time   `json:"created_at"`
}

type layerFile struct {
	Rows int       `json:"rows"`
	Cols int       `json:"cols"`
	Data []float64 `json:"data"`
}

// Save writes the checkpoint to path as JSON.
func (c *Checkpoint) Save(path string) error {
	if c.Network == nil {
		return fmt.Errorf("checkpoint has no network")
	}
	file := checkpointFile{
		Epoch:     c.Epoch,
		Loss:      c.Loss,
		CreatedAt: c.CreatedAt,
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}
	for _, w := range c.Network.Weights() {
		file.Layers = append(file.Layers, layerFile{
			Rows: w.Rows(),
			Cols: w.Cols(),
			Data: w.Data(),
		})
	}

	data, err := json.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a checkpoint written by Save.
//
// The weight shapes are validated the same way NewNetwork validates them,
// so a corrupted or hand-edited file cannot produce a broken network.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}
	var file checkpointFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode checkpoint: %w", err)
	}
	if len(file.Layers) == 0 {
		return nil, fmt.Errorf("checkpoint %s has no layers", path)
	}

	weights := make([]*matrix.Matrix, len(file.Layers))
	for i, layer := range file.Layers {
		w, err := matrix.FromSlice(layer.Data, layer.Rows, layer.Cols)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		weights[i] = w
	}
	net, err := NewNetwork(weights...)
	if err != nil {
		return nil, fmt.Errorf("checkpoint %s: %w", path, err)
	}

	return &Checkpoint{
		Network:   net,
		Epoch:     file.Epoch,
		Loss:      file.Loss,
		CreatedAt: file.CreatedAt,
	}, nil
}
