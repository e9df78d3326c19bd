package controller

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farmaciags/backend/internal/adapter/api/dto"
	medicinedomain "github.com/farmaciags/backend/internal/domain/medicine"
	saledomain "github.com/farmaciags/backend/internal/domain/sale"
	"github.com/farmaciags/backend/pkg/logger"
	"github.com/farmaciags/backend/pkg/report"
)

// Formatos de exportación admitidos
const (
	formatPDF   = "pdf"
	formatExcel = "excel"
)

// ReportController genera los reportes exportables de inventario y ventas
type ReportController struct {
	medicineRepo medicinedomain.Repository
	saleRepo     saledomain.Repository
	exporter     *report.Exporter
	logger       logger.Logger
}

// NewReportController crea una nueva instancia de ReportController
func NewReportController(
	medicineRepo medicinedomain.Repository,
	saleRepo saledomain.Repository,
	exporter *report.Exporter,
	logger logger.Logger,
) *ReportController {
	return &ReportController{
		medicineRepo: medicineRepo,
		saleRepo:     saleRepo,
		exporter:     exporter,
		logger:       logger,
	}
}

// ExportInventory exporta el inventario de medicamentos
// @Summary Exportar inventario
// @Description Genera el reporte del inventario en PDF o Excel y lo descarga
// @Tags reports
// @Produce application/octet-stream
// @Param Authorization header string true "Bearer token"
// @Param format query string false "Formato: pdf o excel" default(excel)
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/inventory [get]
func (c *ReportController) ExportInventory(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", formatExcel)
	if format != formatPDF && format != formatExcel {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "formato no admitido", "use pdf o excel"))
		return
	}

	// Para un inventario de farmacia el catálogo completo cabe en una
	// sola página de exportación.
	medicines, err := c.medicineRepo.List(ctx, 10000, 0)
	if err != nil {
		c.logger.Error("error al consultar inventario", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al generar reporte", ""))
		return
	}

	headers := []string{"ID", "Nombre", "Stock", "Precio", "Vencimiento", "Lote"}
	rows := make([][]string, 0, len(medicines))
	for _, m := range medicines {
		rows = append(rows, []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			strconv.Itoa(m.Stock),
			fmt.Sprintf("%.2f", m.Price),
			m.ExpirationDate.Format(medicinedomain.DateLayout),
			m.Lot,
		})
	}

	c.export(ctx, format, "inventario", headers, rows)
}

// ExportSales exporta las ventas de un período
// @Summary Exportar ventas
// @Description Genera el reporte de ventas del período en PDF o Excel y lo descarga
// @Tags reports
// @Produce application/octet-stream
// @Param Authorization header string true "Bearer token"
// @Param format query string false "Formato: pdf o excel" default(excel)
// @Param date_from query string false "Fecha inicial (YYYY-MM-DD)"
// @Param date_to query string false "Fecha final (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /reports/sales [get]
func (c *ReportController) ExportSales(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", formatExcel)
	if format != formatPDF && format != formatExcel {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "formato no admitido", "use pdf o excel"))
		return
	}

	from, to, err := periodFrom(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "fechas inválidas", "use el formato YYYY-MM-DD"))
		return
	}

	sales, err := c.saleRepo.FindByPeriod(ctx, from, to)
	if err != nil {
		c.logger.Error("error al consultar ventas del período", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al generar reporte", ""))
		return
	}

	headers := []string{"ID", "Fecha", "Cajero", "Cliente", "Método de pago", "Total"}
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		clientName := s.ClientName
		if clientName == "" {
			clientName = "Cliente ocasional"
		}
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.CreatedAt.Format("2006-01-02 15:04"),
			s.UserName,
			clientName,
			s.PaymentMethod,
			fmt.Sprintf("%.2f", s.Total),
		})
	}

	c.export(ctx, format, "ventas", headers, rows)
}

// export genera el archivo en el formato pedido y lo envía como descarga
func (c *ReportController) export(ctx *gin.Context, format, name string, headers []string, rows [][]string) {
	stamp := time.Now().Format("20060102-150405")

	var path string
	var err error
	switch format {
	case formatPDF:
		path, err = c.exporter.ExportPDF(headers, rows, fmt.Sprintf("%s-%s.pdf", name, stamp))
	default:
		path, err = c.exporter.ExportExcel(headers, rows, fmt.Sprintf("%s-%s.xlsx", name, stamp))
	}

	if err != nil {
		c.logger.Error("error al exportar reporte", "name", name, "format", format, "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "error al generar reporte", ""))
		return
	}

	ctx.FileAttachment(path, filepath.Base(path))
}

// periodFrom lee el período de la query; por defecto es el día actual
func periodFrom(ctx *gin.Context) (time.Time, time.Time, error) {
	dateFrom := ctx.Query("date_from")
	dateTo := ctx.Query("date_to")

	if dateFrom == "" && dateTo == "" {
		from, to := saledomain.TodayWindow(time.Now())
		return from, to, nil
	}

	from, err := time.ParseInLocation(medicinedomain.DateLayout, dateFrom, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to := from.AddDate(0, 0, 1)
	if dateTo != "" {
		end, err := time.ParseInLocation(medicinedomain.DateLayout, dateTo, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		// El límite superior es exclusivo: el día final entra completo.
		to = end.AddDate(0, 0, 1)
	}

	return from, to, nil
}
