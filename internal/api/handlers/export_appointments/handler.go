package export_appointments

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/export/xlsx"
)

const (
	triggerHTTP = "http"
	fileName    = "appointments.xlsx"
)

type Handler struct {
	service  ScheduleService
	exporter Exporter
	metrics  MetricsRecorder
	logger   Logger
}

func NewHandler(service ScheduleService, exporter Exporter, metrics MetricsRecorder, logger Logger) *Handler {
	return &Handler{
		service:  service,
		exporter: exporter,
		metrics:  metrics,
		logger:   logger,
	}
}

// Handle GET /api/v1/appointments/export
// Книга собирается целиком в памяти, чтобы при ошибке вернуть 500, а не обрезанный файл.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appts, err := h.service.GetAll(r.Context())
	if err != nil {
		h.logger.Error("GET /appointments/export - Failed to load appointments: error=%v", err)
		h.record(err)
		handlers.RespondInternalError(w)
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.Write(&buf, appts); err != nil {
		h.logger.Error("GET /appointments/export - Failed to build workbook: error=%v", err)
		h.record(err)
		handlers.RespondInternalError(w)
		return
	}
	h.record(nil)

	w.Header().Set("Content-Type", xlsx.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /appointments/export - Failed to send workbook: error=%v", err)
		return
	}

	h.logger.Info("GET /appointments/export - Workbook exported successfully: count=%d", len(appts))
}

func (h *Handler) record(err error) {
	if h.metrics != nil {
		h.metrics.RecordExport(triggerHTTP, err)
	}
}
