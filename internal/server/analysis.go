package server

import (
	"context"
	"fmt"
	"net/http"

	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/value"
	"re_deals/pkg/httpx/reply"
	"re_deals/pkg/httpx/req"
	"re_deals/pkg/rest"
)

type analysisService interface {
	Analyze(context.Context, entity.DealInputs) entity.Analysis
	Sensitivity(context.Context, entity.DealInputs, value.SweepVariable, value.SweepVariable, value.Metric) (entity.SensitivityGrid, error)
}

type AnalysisServer struct {
	analysisService analysisService
}

func NewAnalysisServer(analysisService analysisService) AnalysisServer {
	return AnalysisServer{
		analysisService: analysisService,
	}
}

func (s AnalysisServer) postV1Analysis(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.DealInputs

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	inputs, err := newDomainInputs(request)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAnalysis(s.analysisService.Analyze(ctx, inputs)))

	return nil
}

func (s AnalysisServer) postV1AnalysisSensitivity(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SensitivityRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	inputs, err := newDomainInputs(request.Inputs)
	if err != nil {
		return err
	}

	varA, varB, metric, err := parseGridParams(request.VariableA, request.VariableB, request.Metric)
	if err != nil {
		return err
	}

	grid, err := s.analysisService.Sensitivity(ctx, inputs, varA, varB, metric)
	if err != nil {
		return fmt.Errorf("analysisService.Sensitivity: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGrid(grid))

	return nil
}
