package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// SheetName es el nombre de la hoja en los reportes de Excel
const SheetName = "Reporte"

// Exporter genera archivos de reporte (PDF o Excel) a partir de una
// grilla de celdas con sus cabeceras. Los archivos se escriben bajo un
// directorio fijo de exportación.
type Exporter struct {
	dir string
}

// NewExporter crea un exportador que escribe en el directorio dado
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// ExportExcel escribe la grilla en un libro de Excel y retorna la ruta
// absoluta del archivo generado.
func (e *Exporter) ExportExcel(headers []string, rows [][]string, filename string) (string, error) {
	path, err := e.preparePath(filename)
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return "", fmt.Errorf("error al crear la hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("error al eliminar la hoja por defecto: %w", err)
	}

	if err := writeRow(f, 1, headers); err != nil {
		return "", err
	}
	for i, row := range rows {
		if err := writeRow(f, i+2, row); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("error al guardar el archivo Excel: %w", err)
	}

	return path, nil
}

// writeRow escribe una fila completa a partir de la columna A
func writeRow(f *excelize.File, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}

	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("error al escribir la fila %d: %w", rowNum, err)
	}
	return nil
}

// ExportPDF escribe la grilla en un documento PDF A4 y retorna la ruta
// absoluta del archivo generado.
func (e *Exporter) ExportPDF(headers []string, rows [][]string, filename string) (string, error) {
	path, err := e.preparePath(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Reporte", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for _, cell := range row {
			pdf.CellFormat(colWidth, 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("error al guardar el archivo PDF: %w", err)
	}

	return path, nil
}

// preparePath crea el directorio de exportación si no existe y retorna
// la ruta absoluta destino
func (e *Exporter) preparePath(filename string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("error al crear el directorio de exportación: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(e.dir, filename))
	if err != nil {
		return "", fmt.Errorf("error al resolver la ruta de exportación: %w", err)
	}
	return path, nil
}
