package report

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrGeneratorFailed = errors.New("report generation failed")
)

// PatientLookup resolves patient display names. The patient package provides
// the production implementation.
type PatientLookup interface {
	DisplayName(ctx context.Context, patientID string) (name string, found bool, err error)
}

type Service struct {
	generator Generator
	patients  PatientLookup
}

func NewService(generator Generator, patients PatientLookup) *Service {
	return &Service{generator: generator, patients: patients}
}

// Generate resolves the patient and produces the report text.
func (s *Service) Generate(ctx context.Context, patientID, reportType string, data map[string]interface{}) (string, error) {
	name, found, err := s.patients.DisplayName(ctx, patientID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrPatientNotFound
	}

	text, err := s.generator.Generate(ctx, Request{
		PatientID:   patientID,
		PatientName: name,
		ReportType:  reportType,
		Data:        data,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneratorFailed, err)
	}
	return text, nil
}
