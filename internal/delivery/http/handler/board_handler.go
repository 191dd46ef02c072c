package handler

import (
	"encoding/json"
	"net/http"

	"go-appointment-board/internal/delivery/dto"
	"go-appointment-board/internal/usecase"
	"go-appointment-board/pkg/response"
	"go-appointment-board/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BoardHandler struct {
	boardUsecase usecase.BoardUsecase
	validator    *validator.CustomValidator
}

func NewBoardHandler(boardUsecase usecase.BoardUsecase, validator *validator.CustomValidator) *BoardHandler {
	return &BoardHandler{
		boardUsecase: boardUsecase,
		validator:    validator,
	}
}

func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.boardUsecase.CreateBoard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to load schedule")
		return
	}

	response.Success(w, http.StatusCreated, "Board created successfully", board)
}

func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	board, err := h.boardUsecase.GetBoard(r.Context(), boardID)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Board retrieved successfully", board)
}

func (h *BoardHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	var req dto.BoardFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	board, err := h.boardUsecase.SetFilter(r.Context(), boardID, &req)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Filter applied successfully", board)
}

func (h *BoardHandler) ClearFilter(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	field := mux.Vars(r)["field"]
	board, err := h.boardUsecase.ClearFilter(r.Context(), boardID, field)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Filter cleared successfully", board)
}

func (h *BoardHandler) SetDateFilter(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	var req dto.BoardDateFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	board, err := h.boardUsecase.SetDateFilter(r.Context(), boardID, &req)
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Date filter updated successfully", board)
}

func (h *BoardHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	var req dto.BoardSortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	board, err := h.boardUsecase.SetSort(r.Context(), boardID, &req)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Sort updated successfully", board)
}

func (h *BoardHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	var req dto.BoardVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	board, err := h.boardUsecase.SetVisibility(r.Context(), boardID, &req)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Column visibility updated successfully", board)
}

func (h *BoardHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	var req dto.BoardSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	board, err := h.boardUsecase.ToggleSelection(r.Context(), boardID, &req)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Selection updated successfully", board)
}

func (h *BoardHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	var req dto.BoardNavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	board, err := h.boardUsecase.Navigate(r.Context(), boardID, &req)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Page updated successfully", board)
}

func (h *BoardHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	board, err := h.boardUsecase.Refresh(r.Context(), boardID)
	if err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Board refreshed successfully", board)
}

func (h *BoardHandler) CloseBoard(w http.ResponseWriter, r *http.Request) {
	boardID, ok := h.boardID(w, r)
	if !ok {
		return
	}

	if err := h.boardUsecase.CloseBoard(r.Context(), boardID); err != nil {
		h.writeBoardError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Board closed successfully", nil)
}

func (h *BoardHandler) boardID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	boardID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid board ID", nil)
		return uuid.Nil, false
	}
	return boardID, true
}

func (h *BoardHandler) writeBoardError(w http.ResponseWriter, err error) {
	if err == usecase.ErrBoardNotFound {
		response.NotFound(w, "Board not found")
		return
	}
	response.InternalServerError(w, "Failed to update board")
}
