package parser

import (
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
)

var (
	docxParagraphRe = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>`)
	docxTextRe      = regexp.MustCompile(`(?s)<w:t(?: [^>]*)?>(.*?)</w:t>`)
)

func parsePDF(filePath string) ([]string, error) {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return nil, err
		}
		lines = append(lines, strings.Split(strings.TrimRight(pageText, "\n"), "\n")...)
	}
	return lines, nil
}

// parseDOCX returns one line per paragraph of the document body.
func parseDOCX(filePath string) ([]string, error) {
	r, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content := r.Editable().GetContent()
	var lines []string
	for _, p := range docxParagraphRe.FindAllString(content, -1) {
		var line strings.Builder
		for _, m := range docxTextRe.FindAllStringSubmatch(p, -1) {
			line.WriteString(html.UnescapeString(m[1]))
		}
		lines = append(lines, line.String())
	}
	return lines, nil
}

// parseXLSX returns one line per row of every sheet.
func parseXLSX(filePath string, row func([]string) string) ([]string, error) {
	f, err := xlsx.OpenFile(filePath)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, sheet := range f.Sheets {
		for _, r := range sheet.Rows {
			if r == nil {
				continue
			}
			cells := make([]string, 0, len(r.Cells))
			for _, cell := range r.Cells {
				cells = append(cells, cell.String())
			}
			lines = append(lines, row(cells))
		}
	}
	return lines, nil
}

func parseXLSM(filePath string, row func([]string) string) ([]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			lines = append(lines, row(r))
		}
	}
	return lines, nil
}

// joinCells drops trailing empty cells so a one-column sheet reads as one
// word per line.
func joinCells(cells []string) string {
	end := len(cells)
	for end > 0 && cells[end-1] == "" {
		end--
	}
	return strings.Join(cells[:end], " ")
}

func firstCell(cells []string) string {
	if len(cells) == 0 {
		return ""
	}
	return cells[0]
}
