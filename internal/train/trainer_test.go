package train

import (
	"math/rand"
	"os"
	"testing"

	"stockcast/internal/feature"
	"stockcast/internal/forecast"
)

func labeledRows(n int) []feature.Row {
	rng := rand.New(rand.NewSource(7))
	rows := make([]feature.Row, n)
	for i := range rows {
		ret := rng.Float64()*0.02 - 0.01
		maS := 95 + rng.Float64()*10
		maL := 94 + rng.Float64()*10
		rows[i] = feature.Row{
			Return:      ret,
			MAShort:     maS,
			MALong:      maL,
			TargetClose: maS * (1 + ret),
			TargetHigh:  maS * (1 + ret + 0.01),
			TargetLow:   maS * (1 + ret - 0.01),
		}
	}
	return rows
}

func TestTrainSkipsBelowThreshold(t *testing.T) {
	store := forecast.NewArtifactStore(t.TempDir())
	trainer := New(store, 50)

	out := trainer.Train("AAPL", labeledRows(49))
	if out.Status != Skipped {
		t.Fatalf("status = %s, want skipped", out.Status)
	}
	if out.Reason == "" {
		t.Fatalf("skip outcome must carry a reason")
	}
	if _, err := os.Stat(store.Path("AAPL")); !os.IsNotExist(err) {
		t.Fatalf("skip must not persist an artifact")
	}
}

func TestTrainAtThreshold(t *testing.T) {
	store := forecast.NewArtifactStore(t.TempDir())
	trainer := New(store, 50)

	out := trainer.Train("AAPL", labeledRows(50))
	if out.Status != Trained {
		t.Fatalf("status = %s (err=%v), want trained", out.Status, out.Err)
	}
	artifact, err := store.Load("AAPL")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if artifact.Rows != 50 {
		t.Fatalf("artifact rows = %d, want 50", artifact.Rows)
	}
}

func TestTrainOverwritesPriorArtifact(t *testing.T) {
	store := forecast.NewArtifactStore(t.TempDir())
	trainer := New(store, 50)

	if out := trainer.Train("AAPL", labeledRows(55)); out.Status != Trained {
		t.Fatalf("first train: %s", out.Status)
	}
	if out := trainer.Train("AAPL", labeledRows(80)); out.Status != Trained {
		t.Fatalf("retrain: %s", out.Status)
	}
	artifact, err := store.Load("AAPL")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if artifact.Rows != 80 {
		t.Fatalf("artifact rows = %d, want 80 after retrain", artifact.Rows)
	}
}
