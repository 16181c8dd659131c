package archive

import (
	"strings"

	"stockcast/internal/model"
)

// Codec serializes one instrument's full bar table to a single file.
// The store depends only on this interface; the file format stays swappable.
type Codec interface {
	Save(bars []model.Bar, path string) error
	Load(path string) ([]model.Bar, error)
	Extension() string
}

// NewCodec creates implementation by format (parquet, json, csv).
// Returns nil if format not supported.
func NewCodec(format string) Codec {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "parquet":
		return ParquetCodec{}
	case "json":
		return JSONCodec{}
	case "csv":
		return CSVCodec{}
	default:
		return nil
	}
}
