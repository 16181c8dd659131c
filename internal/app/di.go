package app

import (
	"fmt"

	"github.com/google/wire"

	"stockcast/internal/archive"
	"stockcast/internal/batch"
	"stockcast/internal/feature"
	"stockcast/internal/forecast"
	"stockcast/internal/provider"
	"stockcast/internal/syncer"
	"stockcast/internal/train"
)

// App holds application dependencies built by Wire.
// Caller must call App.Provider.Close() when done.
type App struct {
	Config     *Config
	Archive    *archive.Store
	Models     *forecast.ArtifactStore
	Provider   provider.BarProvider
	Syncer     *syncer.Synchronizer
	Deriver    feature.Deriver
	Forecaster *forecast.Forecaster
	Runner     *batch.Runner
}

// ProviderSet wires the full application graph from a config path.
var ProviderSet = wire.NewSet(
	ProvideConfig,
	ProvideCodec,
	ProvideArchiveStore,
	ProvideArtifactStore,
	ProvidePolygonProvider,
	wire.Bind(new(provider.BarProvider), new(*provider.PolygonProvider)),
	ProvideDeriver,
	ProvideSynchronizer,
	ProvideTrainer,
	ProvideForecaster,
	ProvideRunner,
	wire.Struct(new(App), "*"),
)

// ProvideConfig loads config from the given path (for Wire).
func ProvideConfig(configPath string) (*Config, error) {
	return LoadConfig(configPath)
}

// ProvideCodec creates the archive codec from config (for Wire).
func ProvideCodec(cfg *Config) (archive.Codec, error) {
	codec := archive.NewCodec(cfg.ArchiveFormat)
	if codec == nil {
		return nil, fmt.Errorf("unsupported archive format %q (use: parquet, json, csv)", cfg.ArchiveFormat)
	}
	return codec, nil
}

// ProvideArchiveStore creates the per-instrument bar store (for Wire).
func ProvideArchiveStore(cfg *Config, codec archive.Codec) *archive.Store {
	return archive.NewStore(cfg.DataDir, codec)
}

// ProvideArtifactStore creates the model artifact store (for Wire).
func ProvideArtifactStore(cfg *Config) *forecast.ArtifactStore {
	return forecast.NewArtifactStore(cfg.ModelDir)
}

// ProvidePolygonProvider creates the Polygon bar provider (for Wire).
func ProvidePolygonProvider(cfg *Config) (*provider.PolygonProvider, error) {
	return provider.NewPolygonProvider(cfg.Provider.APIKey)
}

// ProvideDeriver creates the feature deriver with configured windows (for Wire).
func ProvideDeriver(cfg *Config) feature.Deriver {
	return feature.Deriver{ShortWindow: cfg.ShortWindow, LongWindow: cfg.LongWindow}
}

// ProvideSynchronizer creates the archive synchronizer (for Wire).
func ProvideSynchronizer(store *archive.Store, p provider.BarProvider, cfg *Config) *syncer.Synchronizer {
	return syncer.New(store, p, cfg.Epoch())
}

// ProvideTrainer creates the model trainer (for Wire).
func ProvideTrainer(models *forecast.ArtifactStore, cfg *Config) *train.Trainer {
	return train.New(models, cfg.MinTrainRows)
}

// ProvideForecaster creates the forecaster (for Wire).
func ProvideForecaster(store *archive.Store, models *forecast.ArtifactStore, d feature.Deriver, cfg *Config) *forecast.Forecaster {
	return forecast.NewForecaster(store, models, d, cfg.NeutralThreshold)
}

// ProvideRunner creates the batch runner (for Wire).
func ProvideRunner(s *syncer.Synchronizer, d feature.Deriver, t *train.Trainer, cfg *Config) *batch.Runner {
	return &batch.Runner{
		Syncer:    s,
		Deriver:   d,
		Trainer:   t,
		Workers:   cfg.Workers,
		Pacing:    cfg.Pacing,
		ReportDir: cfg.DataDir,
	}
}
