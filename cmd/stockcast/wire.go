//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"stockcast/internal/app"
)

// InitializeApp builds the application graph via Wire.
// Caller must call App.Provider.Close() when done.
func InitializeApp(configPath string) (*app.App, error) {
	wire.Build(app.ProviderSet)
	return nil, nil
}
