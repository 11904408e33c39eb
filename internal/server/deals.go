package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"re_deals/internal/domain/entity"
	"re_deals/internal/domain/value"
	"re_deals/pkg/httpx/reply"
	"re_deals/pkg/httpx/req"
	"re_deals/pkg/lox"
	"re_deals/pkg/rest"
)

type dealService interface {
	CreateDeal(ctx context.Context, ownerID, title string, in entity.DealInputs) (entity.Deal, error)
	GetDeal(ctx context.Context, viewerID string, id value.DealID) (entity.Deal, error)
	UpdateDeal(ctx context.Context, ownerID string, id value.DealID, title string, in entity.DealInputs) (entity.Deal, error)
	DeleteDeal(ctx context.Context, ownerID string, id value.DealID) error
	ListDeals(ctx context.Context, ownerID string, limit, offset int) ([]entity.Deal, error)
	ListPublished(ctx context.Context, limit, offset int) ([]entity.Deal, error)
	PublishDeal(ctx context.Context, ownerID string, id value.DealID) (entity.Deal, error)
	DealAnalysis(ctx context.Context, viewerID string, id value.DealID) (entity.Analysis, error)
	DealSensitivity(
		ctx context.Context,
		viewerID string,
		id value.DealID,
		varA, varB value.SweepVariable,
		metric value.Metric,
	) (entity.SensitivityGrid, error)
}

type DealServer struct {
	dealService dealService
}

func NewDealServer(dealService dealService) DealServer {
	return DealServer{
		dealService: dealService,
	}
}

func (s DealServer) postV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.DealRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	inputs, err := newDomainInputs(request.Inputs)
	if err != nil {
		return err
	}

	deal, err := s.dealService.CreateDeal(ctx, userID(ctx), request.Title, inputs)
	if err != nil {
		return fmt.Errorf("dealService.CreateDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTDeal(deal))

	return nil
}

func (s DealServer) getV1Deals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, offset, err := parsePaging(r)
	if err != nil {
		return err
	}

	deals, err := s.dealService.ListDeals(ctx, userID(ctx), limit, offset)
	if err != nil {
		return fmt.Errorf("dealService.ListDeals: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DealList{
		Items:  lox.Map(deals, newRESTDeal),
		Limit:  limit,
		Offset: offset,
	})

	return nil
}

func (s DealServer) getV1Published(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit, offset, err := parsePaging(r)
	if err != nil {
		return err
	}

	deals, err := s.dealService.ListPublished(ctx, limit, offset)
	if err != nil {
		return fmt.Errorf("dealService.ListPublished: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.DealList{
		Items:  lox.Map(deals, newRESTDeal),
		Limit:  limit,
		Offset: offset,
	})

	return nil
}

func (s DealServer) getV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	deal, err := s.dealService.GetDeal(ctx, userID(ctx), id)
	if err != nil {
		return fmt.Errorf("dealService.GetDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) putV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	var request rest.DealRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	inputs, err := newDomainInputs(request.Inputs)
	if err != nil {
		return err
	}

	deal, err := s.dealService.UpdateDeal(ctx, userID(ctx), id, request.Title, inputs)
	if err != nil {
		return fmt.Errorf("dealService.UpdateDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) deleteV1Deal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	if err = s.dealService.DeleteDeal(ctx, userID(ctx), id); err != nil {
		return fmt.Errorf("dealService.DeleteDeal: %w", err)
	}

	reply.OK(w)

	return nil
}

func (s DealServer) postV1DealPublish(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	deal, err := s.dealService.PublishDeal(ctx, userID(ctx), id)
	if err != nil {
		return fmt.Errorf("dealService.PublishDeal: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDeal(deal))

	return nil
}

func (s DealServer) getV1DealAnalysis(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	analysis, err := s.dealService.DealAnalysis(ctx, userID(ctx), id)
	if err != nil {
		return fmt.Errorf("dealService.DealAnalysis: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAnalysis(analysis))

	return nil
}

// getV1DealSensitivity параметры в query: a, b, metric.
func (s DealServer) getV1DealSensitivity(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := parseDealID(chi.URLParam(r, "id"))
	if err != nil {
		return err
	}

	q := r.URL.Query()

	varA, varB, metric, err := parseGridParams(q.Get("a"), q.Get("b"), q.Get("metric"))
	if err != nil {
		return err
	}

	grid, err := s.dealService.DealSensitivity(ctx, userID(ctx), id, varA, varB, metric)
	if err != nil {
		return fmt.Errorf("dealService.DealSensitivity: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTGrid(grid))

	return nil
}
