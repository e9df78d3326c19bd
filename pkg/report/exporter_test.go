package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var (
	testHeaders = []string{"Producto", "Cantidad", "Precio"}
	testRows    = [][]string{
		{"Paracetamol 500mg", "2", "50.00"},
		{"Ibuprofeno 400mg", "1", "80.00"},
		{"Amoxicilina 250mg", "3", "120.00"},
	}
)

func TestExportExcelRoundTrip(t *testing.T) {
	exporter := NewExporter(t.TempDir())

	path, err := exporter.ExportExcel(testHeaders, testRows, "ventas.xlsx")
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(path))

	// Releer el archivo debe devolver cabeceras y celdas en el mismo orden
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, got, len(testRows)+1)
	require.Equal(t, testHeaders, got[0])
	for i, row := range testRows {
		require.Equal(t, row, got[i+1])
	}
}

func TestExportPDFWritesFile(t *testing.T) {
	exporter := NewExporter(t.TempDir())

	path, err := exporter.ExportPDF(testHeaders, testRows, "inventario.pdf")
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestExporterCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "exports")
	exporter := NewExporter(dir)

	path, err := exporter.ExportExcel(testHeaders, nil, "vacio.xlsx")
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}
