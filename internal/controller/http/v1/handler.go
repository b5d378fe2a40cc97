package v1

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/inspection_data/internal/domain"
)

const internalErrorMessage = "An internal server error occurred."

const (
	mediaTypeJSON = "application/json"
	mediaTypeCSV  = "text/csv"
)

const (
	messageWorkflowNotStarted = "Anonymization workflow has not started."
	messageWorkflowStarted    = "Anonymization workflow is in progress."
	messageWorkflowFailed     = "Anonymization workflow failed."
	messageWorkflowUnknown    = "Unknown workflow status."
)

type InspectionDataService interface {
	GetInspectionData(ctx context.Context, params domain.QueryParameters) (*domain.PagedList[*domain.InspectionData], error)
	ReadByID(ctx context.Context, id string) (*domain.InspectionData, error)
	ReadByInspectionID(ctx context.Context, inspectionID string) (*domain.InspectionData, error)
}

type InspectionDataHandler struct {
	log     *slog.Logger
	service InspectionDataService
}

func NewInspectionDataHandler(log *slog.Logger, service InspectionDataService) *InspectionDataHandler {
	return &InspectionDataHandler{
		log:     log,
		service: service,
	}
}

func (h *InspectionDataHandler) GetAllInspectionData(w http.ResponseWriter, r *http.Request) {
	params, err := parseQueryParameters(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := h.service.GetInspectionData(r.Context(), params)
	if err != nil {
		h.internalError(w, r, "failed to get inspection data", err)
		return
	}

	response := make([]InspectionDataResponse, 0, len(list.Items))
	for _, item := range list.Items {
		response = append(response, NewInspectionDataResponse(item))
	}

	if err := setPaginationHeader(w, newPagination(list)); err != nil {
		h.internalError(w, r, "failed to encode pagination", err)
		return
	}

	if acceptsCSV(r) {
		h.writeCSV(w, r, response)
		return
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", slog.String("err", err.Error()))
	}
}

func (h *InspectionDataHandler) GetInspectionDataByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := uuid.Validate(id); err != nil {
		http.Error(w, fmt.Sprintf("invalid id %q", id), http.StatusBadRequest)
		return
	}

	item, err := h.service.ReadByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrInspectionDataNotFound) {
			http.Error(w, fmt.Sprintf("Could not find inspection data with id %s", id), http.StatusNotFound)
			return
		}

		h.internalError(w, r, "failed to read inspection data by id", err, slog.String("id", id))
		return
	}

	if err := writeJSON(w, http.StatusOK, NewInspectionDataResponse(item)); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", slog.String("err", err.Error()))
	}
}

func (h *InspectionDataHandler) GetInspectionDataByInspectionID(w http.ResponseWriter, r *http.Request) {
	inspectionID := chi.URLParam(r, "inspection_id")

	item, err := h.service.ReadByInspectionID(r.Context(), inspectionID)
	if err != nil {
		if errors.Is(err, domain.ErrInspectionDataNotFound) {
			http.Error(w, fmt.Sprintf("Could not find inspection data with inspection id %s", inspectionID), http.StatusNotFound)
			return
		}

		h.internalError(w, r, "failed to read inspection data by inspection id", err,
			slog.String("inspection_id", inspectionID))
		return
	}

	if err := writeJSON(w, http.StatusOK, NewInspectionDataResponse(item)); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", slog.String("err", err.Error()))
	}
}

func (h *InspectionDataHandler) GetInspectionDataStorageLocation(w http.ResponseWriter, r *http.Request) {
	inspectionID := chi.URLParam(r, "inspection_id")

	item, err := h.service.ReadByInspectionID(r.Context(), inspectionID)
	if err != nil {
		if errors.Is(err, domain.ErrInspectionDataNotFound) {
			writeText(w, http.StatusNotFound, fmt.Sprintf("Could not find inspection data with inspection id %s", inspectionID))
			return
		}

		h.log.ErrorContext(r.Context(), "failed to get inspection data storage location",
			slog.String("inspection_id", inspectionID),
			slog.String("err", err.Error()),
		)
		writeText(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	// a missing or malformed uri is a 404 whatever the workflow status
	if item.AnonymizedURI == nil || !isWellFormedAbsoluteURI(*item.AnonymizedURI) {
		writeText(w, http.StatusNotFound, fmt.Sprintf("Could not find anonymized data for inspection id %s", inspectionID))
		return
	}

	status, body := storageLocationResponse(item.AnonymizerWorkflowStatus, *item.AnonymizedURI)
	if status == http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "unknown anonymizer workflow status",
			slog.String("inspection_id", inspectionID),
			slog.String("status", string(item.AnonymizerWorkflowStatus)),
		)
	}

	writeText(w, status, body)
}

func storageLocationResponse(status domain.WorkflowStatus, uri string) (int, string) {
	switch status {
	case domain.WorkflowStatusExitSuccess:
		return http.StatusOK, uri
	case domain.WorkflowStatusNotStarted:
		return http.StatusAccepted, messageWorkflowNotStarted
	case domain.WorkflowStatusStarted:
		return http.StatusAccepted, messageWorkflowStarted
	case domain.WorkflowStatusExitFailure:
		return http.StatusUnprocessableEntity, messageWorkflowFailed
	default:
		return http.StatusInternalServerError, messageWorkflowUnknown
	}
}

func isWellFormedAbsoluteURI(raw string) bool {
	if raw == "" || strings.ContainsAny(raw, " \t\r\n") {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}

	return u.Host != "" || u.Opaque != ""
}

func (h *InspectionDataHandler) internalError(
	w http.ResponseWriter,
	r *http.Request,
	msg string,
	err error,
	attrs ...any,
) {
	h.log.ErrorContext(r.Context(), msg, append(attrs, slog.String("err", err.Error()))...)
	http.Error(w, internalErrorMessage, http.StatusInternalServerError)
}

func (h *InspectionDataHandler) writeCSV(w http.ResponseWriter, r *http.Request, response []InspectionDataResponse) {
	data, err := csvutil.Marshal(response)
	if err != nil {
		h.internalError(w, r, "failed to encode csv", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", slog.String("err", err.Error()))
	}
}

// acceptsCSV reports whether the client prefers text/csv over application/json.
// Ranges with q=0 are refused ranges.
func acceptsCSV(r *http.Request) bool {
	weights := acceptWeights(r.Header.Get("Accept"))

	csvWeight, ok := weights[mediaTypeCSV]
	if !ok || csvWeight <= 0 {
		return false
	}

	return csvWeight >= weights[mediaTypeJSON]
}

func acceptWeights(header string) map[string]float64 {
	weights := make(map[string]float64)

	for _, mediaRange := range strings.Split(header, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(mediaRange))
		if err != nil {
			continue
		}

		weight := 1.0
		if q, ok := params["q"]; ok {
			weight, err = strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}
		}

		if current, seen := weights[mediaType]; !seen || weight > current {
			weights[mediaType] = weight
		}
	}

	return weights
}
