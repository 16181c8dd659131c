package archive

import (
	"github.com/parquet-go/parquet-go"

	"stockcast/internal/model"
)

// ParquetCodec stores the archive as a Parquet file, one row group per write.
type ParquetCodec struct{}

func (ParquetCodec) Extension() string { return "parquet" }

func (ParquetCodec) Save(bars []model.Bar, path string) error {
	return parquet.WriteFile(path, bars)
}

func (ParquetCodec) Load(path string) ([]model.Bar, error) {
	return parquet.ReadFile[model.Bar](path)
}
