// FilePath: internal/consoleservice/consoleservice.export.go
package consoleservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/satyam-v3/InfraMind/internal/errors"
	"github.com/satyam-v3/InfraMind/internal/inspector"
	"github.com/satyam-v3/InfraMind/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "rooms"

var exportHeader = []string{
	"ID", "Name", "Building", "Floor", "Capacity", "Occupancy",
	"Occupancy %", "Status", "Temperature", "Humidity", "Updated",
}

// ExportRoomsXLSX renders the rooms matching query as an XLSX workbook.
func (s *ConsoleService) ExportRoomsXLSX(ctx context.Context, query string) ([]byte, error) {
	rooms := inspector.Filter(query, s.Catalog.ListRooms())

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, errors.NewInternalError("failed to prepare export", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, title := range exportHeader {
		header[i] = title
	}
	if err := writeRow(f, exportSheet, 1, header); err != nil {
		return nil, errors.NewInternalError("failed to write export", err)
	}
	for i, room := range rooms {
		values := []interface{}{
			room.ID, room.Name, room.Building, room.Floor, room.Capacity, room.Occupancy,
			s.exportPercent(room), string(room.Status), room.Temperature, room.Humidity,
			room.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writeRow(f, exportSheet, i+2, values); err != nil {
			return nil, errors.NewInternalError("failed to write export", err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, errors.NewInternalError("failed to write export", err)
	}
	return buf.Bytes(), nil
}

func (s *ConsoleService) exportPercent(room models.Room) interface{} {
	metrics, err := inspector.DeriveMetrics(room)
	if err != nil {
		s.recordInvalidData(room.ID, err)
		return "invalid data"
	}
	return metrics.OccupancyPercent
}

// writeRow writes values into row, stopping at the first failed cell.
func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		name, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, v); err != nil {
			return fmt.Errorf("cell %s: %w", name, err)
		}
	}
	return nil
}
