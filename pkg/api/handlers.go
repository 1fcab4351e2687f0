package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/aexlab51/PNG-library/pkg/storage"
)

// Server holds the API server state
type Server struct {
	reports *storage.ReportStore
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(reports *storage.ReportStore, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		reports: reports,
		config:  config,
		metrics: metrics,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleInspect parses the raw request body as a PNG, MNG, or JNG file and
// returns the inspection report. With ?save=true the report is also
// persisted and the response carries its ID.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.config.MaxUploadBytes+1))
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	if int64(len(body)) > s.config.MaxUploadBytes {
		sendError(w, "Upload exceeds size limit", http.StatusRequestEntityTooLarge)
		return
	}
	if len(body) == 0 {
		sendError(w, "Empty request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	report := BuildReport(body)
	if s.metrics != nil {
		s.metrics.RecordParse(report, time.Since(start))
	}

	if r.URL.Query().Get("save") == "true" {
		serialized, err := json.Marshal(report)
		if err != nil {
			sendError(w, "Failed to serialize report", http.StatusInternalServerError)
			return
		}
		id, err := s.reports.Create(serialized)
		if err != nil {
			sendError(w, "Failed to store report", http.StatusInternalServerError)
			return
		}
		report.ID = id.String()
	}

	sendSuccess(w, report)
}

// handleGetReport returns a previously stored report by ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid report ID", http.StatusBadRequest)
		return
	}

	data, err := s.reports.Read(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sendError(w, "Report not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to read report", http.StatusInternalServerError)
		return
	}

	var report InspectionReport
	if err := json.Unmarshal(data, &report); err != nil {
		sendError(w, "Stored report is corrupt", http.StatusInternalServerError)
		return
	}
	report.ID = id.String()
	sendSuccess(w, &report)
}

// handleDeleteReport removes a stored report by ID.
func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, err := ksuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		sendError(w, "Invalid report ID", http.StatusBadRequest)
		return
	}

	if err := s.reports.Delete(id); err != nil {
		sendError(w, "Failed to delete report", http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]string{"id": id.String(), "status": "deleted"})
}

// handleListReports returns the IDs of all stored reports.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	ids, err := s.reports.List()
	if err != nil {
		sendError(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	sendSuccess(w, map[string]interface{}{"reports": out, "count": len(out)})
}
