package sheets

import (
	"strconv"
	"strings"

	"lodelfer/cmd/internal/domain/entity"
)

// The sheet schema is positional: columns A-E in this exact order.
var headerRow = []string{"cliente", "telefono", "fecha", "hora", "servicio"}

const columnCount = 5

// decodeRows turns raw sheet values into appointments. A header row is
// skipped, rows are truncated to the first five columns, and rows whose
// cells are all empty are dropped (the sheet pads with them).
func decodeRows(rows [][]interface{}) []*entity.Appointment {
	appts := make([]*entity.Appointment, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}

		appt := &entity.Appointment{
			ClientName: cellAt(row, 0),
			Phone:      cellAt(row, 1),
			Date:       cellAt(row, 2),
			Time:       cellAt(row, 3),
			Service:    cellAt(row, 4),
		}
		if appt.ClientName == "" && appt.Phone == "" && appt.Date == "" &&
			appt.Time == "" && appt.Service == "" {
			continue
		}
		appts = append(appts, appt)
	}
	return appts
}

// encodeRows produces the full table, header included, for an overwrite.
func encodeRows(appts []*entity.Appointment) [][]interface{} {
	rows := make([][]interface{}, 0, len(appts)+1)

	header := make([]interface{}, columnCount)
	for i, name := range headerRow {
		header[i] = name
	}
	rows = append(rows, header)

	for _, appt := range appts {
		rows = append(rows, []interface{}{
			appt.ClientName, appt.Phone, appt.Date, appt.Time, appt.Service,
		})
	}
	return rows
}

func isHeader(row []interface{}) bool {
	return len(row) > 0 && strings.EqualFold(cellAt(row, 0), headerRow[0])
}

func cellAt(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}
	return cellString(row[index])
}

// cellString renders one cell as text. Numeric cells come back as float64
// from the API; formatting with -1 precision drops the ".0" suffix a
// numeric-typed phone column would otherwise leak into links.
func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
