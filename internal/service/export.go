package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/renalplate/backend/internal/model"
)

const (
	pdfFontName = "NotoSansArabic"
	pdfFontSize = 12
	pdfLineHt   = 20
)

// csvHeader is the fixed column order for delimited exports. Raw field
// names here; localized labels are a display concern.
var csvHeader = []string{"food", "category", "portion", "protein", "potassium", "phosphorus", "calories"}

// Exporter renders selections and log sets as CSV or PDF. The two paths are
// independent: a missing font breaks PDF rendering only.
type Exporter struct {
	fontPath string
}

// Ensure Exporter implements IExporter
var _ IExporter = (*Exporter)(nil)

// NewExporter creates an Exporter. The font file is checked per PDF render,
// not here, so a missing font never blocks startup or CSV export.
func NewExporter(fontPath string) *Exporter {
	return &Exporter{fontPath: fontPath}
}

// SelectionCSV renders one row per selected food in the fixed column order.
func (e *Exporter) SelectionCSV(foods model.SelectedFoodList) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: writing csv header: %v", ErrExport, err)
	}
	for _, f := range foods {
		row := []string{
			f.Food,
			f.Category,
			formatFloat(f.Portion),
			formatFloat(f.Protein),
			formatFloat(f.Potassium),
			formatFloat(f.Phosphorus),
			formatFloat(f.Calories),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: writing csv row: %v", ErrExport, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: flushing csv: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}

// LogCSV renders one summary row per logged day.
func (e *Exporter) LogCSV(logs []model.MealLog) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"date", "protein", "potassium", "phosphorus", "calories"}); err != nil {
		return nil, fmt.Errorf("%w: writing csv header: %v", ErrExport, err)
	}
	for _, l := range logs {
		row := []string{
			l.Date,
			formatFloat(l.Protein),
			formatFloat(l.Potassium),
			formatFloat(l.Phosphorus),
			formatFloat(l.Calories),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("%w: writing csv row: %v", ErrExport, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: flushing csv: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}

// SelectionPDF renders the plan as a paginated document: a title line, then
// one line per food. Returns ErrResourceLoad when the font file is missing.
func (e *Exporter) SelectionPDF(foods model.SelectedFoodList) ([]byte, error) {
	pdf, err := e.newDocument("Diet Plan")
	if err != nil {
		return nil, err
	}
	for _, f := range foods {
		writeLine(pdf, foodLine(f))
	}
	return render(pdf)
}

// LogPDF renders a multi-date log: one date header per day, its food lines,
// then a blank separator line. Lines past the bottom margin continue on a
// fresh page.
func (e *Exporter) LogPDF(logs []model.MealLog) ([]byte, error) {
	pdf, err := e.newDocument("Meal Log")
	if err != nil {
		return nil, err
	}
	for _, l := range logs {
		writeLine(pdf, fmt.Sprintf("Date: %s", l.Date))
		for _, f := range l.Foods {
			writeLine(pdf, foodLine(f))
		}
		pdf.Ln(pdfLineHt / 2)
	}
	return render(pdf)
}

func (e *Exporter) newDocument(title string) (*gofpdf.Fpdf, error) {
	if _, err := os.Stat(e.fontPath); err != nil {
		return nil, fmt.Errorf("%w: font file %s: %v", ErrResourceLoad, e.fontPath, err)
	}
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddUTF8Font(pdfFontName, "", e.fontPath)
	pdf.SetFont(pdfFontName, "", pdfFontSize)
	pdf.SetAutoPageBreak(true, 40)
	pdf.AddPage()
	writeLine(pdf, title)
	pdf.Ln(pdfLineHt / 2)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: preparing document: %v", ErrExport, err)
	}
	return pdf, nil
}

// writeLine emits one full-width, right-aligned line so Arabic food names
// keep their right-to-left layout.
func writeLine(pdf *gofpdf.Fpdf, text string) {
	pdf.CellFormat(0, pdfLineHt, text, "", 1, "R", false, 0, "")
}

func foodLine(f model.SelectedFood) string {
	return fmt.Sprintf("%s (%s g): %.1f kcal", f.Food, formatFloat(f.Grams()), f.Calories)
}

func render(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: rendering document: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
