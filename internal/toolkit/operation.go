// ============================================================================
// devkit - Developer Conversion Toolkit
// ============================================================================
//
// Package:     toolkit
// Description: Operation records produced by the runner
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package toolkit

import (
	"time"

	"github.com/google/uuid"
)

// OperationType classifies what an operation did
type OperationType string

const (
	OperationEncode    OperationType = "encode"
	OperationDecode    OperationType = "decode"
	OperationConvert   OperationType = "convert"
	OperationGenerate  OperationType = "generate"
	OperationTransform OperationType = "transform"
)

// Status is the lifecycle state of an operation
type Status string

const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Operation records one conversion or generation
type Operation struct {
	OperationID  string                 `json:"operation_id"`
	ToolID       string                 `json:"tool_id"`
	Type         OperationType          `json:"operation_type"`
	InputValue   string                 `json:"input_value"`
	OutputValue  string                 `json:"output_value"`
	Status       Status                 `json:"status"`
	ErrorMessage string                 `json:"error_message,omitempty"`
	Timestamp    int64                  `json:"timestamp"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
}

func newOperation(toolID string, opType OperationType, input string, now time.Time) *Operation {
	return &Operation{
		OperationID: uuid.NewString(),
		ToolID:      toolID,
		Type:        opType,
		InputValue:  input,
		Status:      StatusProcessing,
		Timestamp:   now.UnixMilli(),
		Metadata:    make(map[string]interface{}),
	}
}

func (o *Operation) succeed(output string) {
	o.OutputValue = output
	o.Status = StatusSuccess
	o.ErrorMessage = ""
}

func (o *Operation) fail(err error) {
	o.OutputValue = ""
	o.Status = StatusError
	o.ErrorMessage = err.Error()
}

// Succeeded reports whether the operation completed successfully
func (o *Operation) Succeeded() bool {
	return o.Status == StatusSuccess
}
