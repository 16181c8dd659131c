package archive

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"stockcast/internal/model"
)

// CSVCodec stores the archive as CSV (header: date,o,h,l,c,v).
type CSVCodec struct{}

func (CSVCodec) Extension() string { return "csv" }

func (CSVCodec) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "o", "h", "l", "c", "v"}); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write([]string{
			b.Date,
			floatStr(b.Open),
			floatStr(b.High),
			floatStr(b.Low),
			floatStr(b.Close),
			floatStr(b.Volume),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (CSVCodec) Load(path string) ([]model.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	bars := make([]model.Bar, 0, len(records)-1)
	for i, rec := range records[1:] { // skip header
		if len(rec) != 6 {
			return nil, fmt.Errorf("row %d: expected 6 columns, got %d", i+1, len(rec))
		}
		b := model.Bar{Date: rec[0]}
		for j, dst := range []*float64{&b.Open, &b.High, &b.Low, &b.Close, &b.Volume} {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i+1, j+1, err)
			}
			*dst = v
		}
		bars = append(bars, b)
	}
	return bars, nil
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
