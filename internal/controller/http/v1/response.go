package v1

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/kurochkinivan/inspection_data/internal/domain"
)

type InspectionDataResponse struct {
	ID                       string                `json:"id"                         csv:"id"`
	InspectionID             string                `json:"inspection_id"              csv:"inspection_id"`
	InstallationCode         string                `json:"installation_code"          csv:"installation_code"`
	RawDataURI               string                `json:"raw_data_uri"               csv:"raw_data_uri"`
	AnonymizedURI            *string               `json:"anonymized_uri"             csv:"anonymized_uri"`
	AnonymizerWorkflowStatus domain.WorkflowStatus `json:"anonymizer_workflow_status" csv:"anonymizer_workflow_status"`
	DateCreated              time.Time             `json:"date_created"               csv:"date_created"`
}

func NewInspectionDataResponse(d *domain.InspectionData) InspectionDataResponse {
	return InspectionDataResponse{
		ID:                       d.ID,
		InspectionID:             d.InspectionID,
		InstallationCode:         d.InstallationCode,
		RawDataURI:               d.RawDataURI,
		AnonymizedURI:            d.AnonymizedURI,
		AnonymizerWorkflowStatus: d.AnonymizerWorkflowStatus,
		DateCreated:              d.DateCreated,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(data)

	return err
}

// writeText writes body verbatim, unlike http.Error which appends a newline.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
