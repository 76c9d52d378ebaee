package exporter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/maltedev/flipkart-watch-scraper/internal/models"
)

// ErrNothingToExport means the accepted set was empty. The destination file
// is left exactly as it was, no empty spreadsheet is written.
var ErrNothingToExport = errors.New("no records to export")

var columns = []string{"Watch Name", "Brand", "Price", "Availability"}

// Export writes one row per record to an xlsx file at path, header row
// first, columns in fixed order, no index column. An existing file at path
// is overwritten.
func Export(records []models.Product, path string) error {
	if len(records) == 0 {
		return ErrNothingToExport
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(columns))
	for i, column := range columns {
		header[i] = column
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{record.Name, record.Brand, record.Price, record.Availability}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	return nil
}

// ReadFile reads an exported spreadsheet back into records. Used to verify
// exports round-trip; not part of the scrape path.
func ReadFile(path string) ([]models.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, errors.New("spreadsheet has no header row")
	}

	records := make([]models.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < len(columns) {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i+2, len(row), len(columns))
		}

		price, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("row %d has non-integer price %q", i+2, row[2])
		}

		records = append(records, models.Product{
			Name:         row[0],
			Brand:        row[1],
			Price:        price,
			Availability: row[3],
		})
	}

	return records, nil
}
