package visits

import (
	"context"
	"encoding/json"
	"internistika-service/internal/pkg/dto/requests"
	"internistika-service/internal/pkg/exceptions"
	"internistika-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VisitController struct {
	VisitUsecase VisitUsecase
	Log          *zap.Logger
}

func NewVisitController(visitUsecase VisitUsecase, logger *zap.Logger) *VisitController {
	return &VisitController{
		VisitUsecase: visitUsecase,
		Log:          logger,
	}
}

func (ctrl *VisitController) CreateVisit(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorId")
	patientID := chi.URLParam(r, "patientId")

	request := new(requests.CreateVisit)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.CreateVisit(ctx, doctorID, patientID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}

func (ctrl *VisitController) GetPatientVisits(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.GetPatientVisits(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}

func (ctrl *VisitController) GetDoctorVisits(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorId")
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.GetDoctorVisits(ctx, doctorID, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}

func (ctrl *VisitController) GetVisitByID(w http.ResponseWriter, r *http.Request) {
	visitID := chi.URLParam(r, "visitId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.GetVisitByID(ctx, visitID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}

func (ctrl *VisitController) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	visitID := chi.URLParam(r, "visitId")

	request := new(requests.UpdateVisit)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.UpdateVisit(ctx, visitID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}

func (ctrl *VisitController) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	visitID := chi.URLParam(r, "visitId")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.DeleteVisit(ctx, visitID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}

func (ctrl *VisitController) MediaUploadURL(w http.ResponseWriter, r *http.Request) {
	request := new(requests.VisitMediaUploadURL)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.MediaUploadURL(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}

func (ctrl *VisitController) MediaDownloadURL(w http.ResponseWriter, r *http.Request) {
	objectName := r.URL.Query().Get("object")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.VisitUsecase.MediaDownloadURL(ctx, objectName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.WriteResult(w, result.Status, result)
}
