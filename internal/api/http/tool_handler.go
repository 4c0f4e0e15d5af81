package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tooltrack-backend/internal/domain"
	"tooltrack-backend/internal/dto"
	"tooltrack-backend/internal/logger"
	"tooltrack-backend/internal/service"

	"github.com/gorilla/mux"
)

// ToolHandler serves the tool lifecycle endpoints.
type ToolHandler struct {
	toolSvc service.ToolService
}

func NewToolHandler(toolSvc service.ToolService) *ToolHandler {
	return &ToolHandler{toolSvc: toolSvc}
}

func (h *ToolHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/tools", h.GetTools).Methods(http.MethodGet)
	router.HandleFunc("/api/tools/{id}/history", h.GetToolHistory).Methods(http.MethodGet)
	router.HandleFunc("/api/tools/{id}/export-pdf", h.ExportToolHistoryPDF).Methods(http.MethodGet)
	router.HandleFunc("/api/tools/{id}/update-status", h.UpdateToolStatus).Methods(http.MethodPost)
}

func (h *ToolHandler) GetTools(w http.ResponseWriter, r *http.Request) {
	tools, err := h.toolSvc.GetTools(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		logger.ErrorContext(r.Context(), "Error retrieving tools", "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving the tools.")
		return
	}
	respondJSON(w, http.StatusOK, tools)
}

func (h *ToolHandler) GetToolHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := toolID(w, r)
	if !ok {
		return
	}

	filter, err := parseHistoryFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.toolSvc.GetToolHistory(r.Context(), id, filter)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Tool with ID %d not found.", id))
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Error retrieving tool history", "tool_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred while retrieving the tool history.")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *ToolHandler) ExportToolHistoryPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := toolID(w, r)
	if !ok {
		return
	}

	pdfBytes, err := h.toolSvc.ExportToolHistoryPDF(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Tool with ID %d not found.", id))
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Error exporting tool history as PDF", "tool_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred while generating the PDF.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=tool-history-%d.pdf", id))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

func (h *ToolHandler) UpdateToolStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := toolID(w, r)
	if !ok {
		return
	}

	err := h.toolSvc.RefreshToolStatus(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		respondError(w, http.StatusNotFound, fmt.Sprintf("Tool with ID %d not found.", id))
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Error updating tool status", "tool_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "An error occurred while updating the tool status.")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toolID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Tool ID must be an integer.")
		return 0, false
	}
	return int32(id), true
}

func parseHistoryFilter(r *http.Request) (*dto.HistoryFilter, error) {
	query := r.URL.Query()
	filter := &dto.HistoryFilter{EventType: query.Get("eventType")}

	start, err := parseDateParam(query.Get("startDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %v", err)
	}
	filter.StartDate = start

	end, err := parseDateParam(query.Get("endDate"))
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %v", err)
	}
	filter.EndDate = end

	if filter.StartDate == nil && filter.EndDate == nil && filter.EventType == "" {
		return nil, nil
	}
	return filter, nil
}

// parseDateParam accepts a date ("2006-01-02") or an RFC 3339 timestamp.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("expected yyyy-mm-dd or RFC 3339 timestamp")
	}
	return &t, nil
}
