// internal/service/contact_export.go
package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const contactSheet = "Contacts"

var contactColumns = []struct {
	title string
	width float64
}{
	{"Received", 20},
	{"Name", 24},
	{"Email", 30},
	{"Type", 14},
	{"Subject", 32},
	{"Message", 60},
	{"IP", 16},
	{"reCAPTCHA score", 16},
}

// ExportWorkbook writes messages received since the given time to w as an xlsx workbook and
// returns how many rows were written.
func (s *ContactService) ExportWorkbook(ctx context.Context, since time.Time, w io.Writer) (int, error) {
	msgs, err := s.Export(ctx, since)
	if err != nil {
		return 0, err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(contactSheet)
	if err != nil {
		return 0, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, col := range contactColumns {
		name := colName(i)
		f.SetColWidth(contactSheet, name, name, col.width)
		f.SetCellValue(contactSheet, cell(name, 1), col.title)
	}
	f.SetCellStyle(contactSheet, "A1", cell(colName(len(contactColumns)-1), 1), headerStyle)

	for i := range msgs {
		m := &msgs[i]
		row := i + 2
		values := []interface{}{
			m.CreatedAt.UTC().Format(time.RFC3339),
			m.Name,
			m.Email,
			string(m.Type),
			m.Subject,
			m.Message,
			strOrEmpty(m.IP),
			"",
		}
		if m.RecaptchaScore != nil {
			values[7] = *m.RecaptchaScore
		}
		for c, v := range values {
			f.SetCellValue(contactSheet, cell(colName(c), row), v)
		}
	}

	if err := f.Write(w); err != nil {
		return 0, fmt.Errorf("writing workbook: %w", err)
	}
	return len(msgs), nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
