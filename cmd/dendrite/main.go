// Package main provides the Dendrite ML framework CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dendrite-ml/dendrite/internal/config"
	"github.com/dendrite-ml/dendrite/internal/dataset"
	"github.com/dendrite-ml/dendrite/internal/matrix"
	"github.com/dendrite-ml/dendrite/internal/nn"
	"github.com/dendrite-ml/dendrite/internal/trainer"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Dendrite ML Framework %s\n", version)
	case "train":
		if err := runTrain(); err != nil {
			log.Fatalf("training failed: %v", err)
		}
	case "predict":
		if err := runPredict(); err != nil {
			log.Fatalf("prediction failed: %v", err)
		}
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("Dendrite ML Framework - Feedforward Networks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train a network (configured via DENDRITE_* env vars)")
	fmt.Println("  predict    Run a checkpointed network over a dataset")
}

// runTrain trains a network on the configured dataset and optionally saves
// a checkpoint.
func runTrain() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ds, err := dataset.ByName(cfg.Dataset)
	if err != nil {
		return err
	}

	layerUnits := []int{ds.Inputs.Rows()}
	layerUnits = append(layerUnits, cfg.Hidden...)
	layerUnits = append(layerUnits, ds.Targets.Rows())

	rng := rand.New(rand.NewSource(cfg.Seed))
	net, err := nn.Random(rng, layerUnits...)
	if err != nil {
		return err
	}
	log.Printf("dataset=%s samples=%d layers=%v seed=%d", ds.Name, ds.Samples(), layerUnits, cfg.Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := trainer.Run(ctx, net, ds.Inputs, ds.Targets, trainer.RunConfig{
		Iterations:   cfg.Iterations,
		LearningRate: cfg.LearningRate,
		Momentum:     cfg.Momentum,
		LogEvery:     cfg.LogEvery,
	})
	if err != nil {
		return err
	}
	log.Printf("done iterations=%d initial_loss=%.6f final_loss=%.6f",
		report.Iterations, report.InitialLoss, report.FinalLoss)

	printPredictions(net, ds)

	if cfg.Checkpoint != "" {
		checkpoint := &nn.Checkpoint{
			Network:   net,
			Epoch:     report.Iterations,
			Loss:      report.FinalLoss,
			CreatedAt: time.Now().UTC(),
		}
		if err := checkpoint.Save(cfg.Checkpoint); err != nil {
			return err
		}
		log.Printf("checkpoint saved to %s", cfg.Checkpoint)
	}
	return nil
}

// runPredict loads a checkpoint and evaluates it on the configured dataset.
func runPredict() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Checkpoint == "" {
		return fmt.Errorf("DENDRITE_CHECKPOINT must be set for predict")
	}

	checkpoint, err := nn.LoadCheckpoint(cfg.Checkpoint)
	if err != nil {
		return err
	}
	ds, err := dataset.ByName(cfg.Dataset)
	if err != nil {
		return err
	}
	net := checkpoint.Network
	if net.InputUnits() != ds.Inputs.Rows() || net.OutputUnits() != ds.Targets.Rows() {
		return fmt.Errorf("checkpoint network is %dx%d but dataset %s is %dx%d",
			net.InputUnits(), net.OutputUnits(), ds.Name, ds.Inputs.Rows(), ds.Targets.Rows())
	}

	log.Printf("checkpoint=%s epoch=%d loss=%.6f created_at=%s",
		cfg.Checkpoint, checkpoint.Epoch, checkpoint.Loss, checkpoint.CreatedAt.Format(time.RFC3339))
	printPredictions(net, ds)
	return nil
}

// printPredictions prints the binary prediction for every sample along with
// the overall accuracy.
func printPredictions(net *nn.Network, ds dataset.Dataset) {
	predicted := net.PredictBinary(ds.Inputs)

	correct := 0
	for j := 0; j < ds.Samples(); j++ {
		match := true
		for i := 0; i < ds.Targets.Rows(); i++ {
			if predicted.At(i, j) != ds.Targets.At(i, j) {
				match = false
				break
			}
		}
		if match {
			correct++
		}
		fmt.Printf("input=%v predicted=%v expected=%v\n",
			column(ds.Inputs, j), column(predicted, j), column(ds.Targets, j))
	}
	fmt.Printf("accuracy: %d/%d\n", correct, ds.Samples())
}

func column(m *matrix.Matrix, j int) []float64 {
	col := make([]float64, m.Rows())
	for i := range col {
		col[i] = m.At(i, j)
	}
	return col
}
