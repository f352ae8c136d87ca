package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/crewboard/crewboard-back/pkg/leads"
	"github.com/xuri/excelize/v2"
)

// Column order of lead exports. Fixed; the import side maps these
// headers back onto the same fields.
var headers = []string{
	"Title", "Phone", "Email1", "Email2", "City", "Website",
	"Instagram", "Facebook", "LinkedIn", "Status", "Notes",
}

// CSV renders the given leads as CSV text. Every field is wrapped in
// double quotes with internal quotes doubled, whether or not it contains
// a comma. A deliberate simplification of standard quoting, kept so the
// output format stays byte-stable.
func CSV(list []leads.Lead) string {
	var b strings.Builder

	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	writeRow(headers)
	for _, l := range list {
		writeRow(rowValues(l))
	}
	return b.String()
}

// Excel renders the given leads as an .xlsx workbook.
func Excel(list []leads.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leads"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	for i, h := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, l := range list {
		for colIdx, v := range rowValues(l) {
			cell := fmt.Sprintf("%c%d", 'A'+colIdx, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	for i := range headers {
		col := string(rune('A' + i))
		f.SetColWidth(sheet, col, col, 18)
	}
	f.SetActiveSheet(index)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename returns a timestamped download name such as
// leads-20260830-120000.csv.
func Filename(ext string) string {
	return fmt.Sprintf("leads-%s.%s", time.Now().Format("20060102-150405"), ext)
}

func rowValues(l leads.Lead) []string {
	return []string{
		l.Title,
		l.Phone,
		l.Email1,
		l.Email2,
		l.City,
		l.Website,
		l.Instagram1,
		l.Facebook1,
		l.Linkedin1,
		string(l.Status),
		l.Notes,
	}
}
