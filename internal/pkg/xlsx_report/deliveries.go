package xlsx_report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"parcel-service/internal/entities"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	deliveriesSheet = "Deliveries"
	defaultSheet    = "Sheet1"
)

var deliveriesHeader = []string{
	"Delivery ID",
	"Package ID",
	"Tracking Number",
	"Agent",
	"Latitude",
	"Longitude",
	"Address",
	"Photo",
	"Notes",
	"Delivered At",
}

var deliveriesColumnWidths = []float64{12, 12, 20, 24, 12, 12, 48, 32, 32, 22}

// WriteDeliveries пишет историю доставок одним листом xlsx в w.
func WriteDeliveries(w io.Writer, records []entities.DeliveryRecord) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if err := f.SetSheetName(defaultSheet, deliveriesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	header := make([]any, len(deliveriesHeader))
	for i, title := range deliveriesHeader {
		header[i] = title
	}
	if err := f.SetSheetRow(deliveriesSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	lastHeaderCell, err := excelize.CoordinatesToCellName(len(deliveriesHeader), 1)
	if err != nil {
		return fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(deliveriesSheet, "A1", lastHeaderCell, headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}

		row := []any{
			record.ID,
			record.PackageID,
			record.TrackingNumber,
			record.AgentName,
			record.Latitude,
			record.Longitude,
			record.Address,
			record.PhotoPath,
			record.Notes,
			record.DeliveredAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(deliveriesSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	for i, width := range deliveriesColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column %d: %w", i, err)
		}
		if err := f.SetColWidth(deliveriesSheet, col, col, width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
