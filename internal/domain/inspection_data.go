package domain

import (
	"errors"
	"time"
)

var ErrInspectionDataNotFound = errors.New("inspection data not found")

type InspectionData struct {
	ID                       string         `db:"id"`
	InspectionID             string         `db:"inspection_id"`
	InstallationCode         string         `db:"installation_code"`
	RawDataURI               string         `db:"raw_data_uri"`
	AnonymizedURI            *string        `db:"anonymized_uri"` // nil until the anonymizer has produced an artifact
	AnonymizerWorkflowStatus WorkflowStatus `db:"anonymizer_workflow_status"`
	DateCreated              time.Time      `db:"date_created"`
}
