// Package csvx menulis CSV dengan format yang sama persis seperti export lama:
// BOM UTF-8 di awal, sel hanya dikutip bila mengandung koma/kutip/newline,
// kutip internal digandakan. encoding/csv tidak dipakai karena aturan
// quoting-nya berbeda (selalu CRLF, quoting kondisional lain).
package csvx

import (
	"strings"
)

const bom = "\uFEFF"

// FormatCell mengutip satu sel sesuai aturan RFC-4180.
func FormatCell(cell string) string {
	if strings.ContainsAny(cell, ",\"\n") {
		return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
	}
	return cell
}

// Render menggabungkan header + rows menjadi satu dokumen CSV ber-BOM.
func Render(headers []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(bom)
	writeRow(&b, headers)
	for _, row := range rows {
		b.WriteString("\n")
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, row []string) {
	for i, cell := range row {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(FormatCell(cell))
	}
}
