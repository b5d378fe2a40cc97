package domain

import "fmt"

type WorkflowStatus string

const (
	WorkflowStatusNotStarted  WorkflowStatus = "NotStarted"
	WorkflowStatusStarted     WorkflowStatus = "Started"
	WorkflowStatusExitSuccess WorkflowStatus = "ExitSuccess"
	WorkflowStatusExitFailure WorkflowStatus = "ExitFailure"
)

func (s WorkflowStatus) Valid() bool {
	switch s {
	case WorkflowStatusNotStarted, WorkflowStatusStarted, WorkflowStatusExitSuccess, WorkflowStatusExitFailure:
		return true
	default:
		return false
	}
}

func ParseWorkflowStatus(s string) (WorkflowStatus, error) {
	status := WorkflowStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown workflow status %q", s)
	}

	return status, nil
}
