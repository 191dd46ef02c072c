package dto

import "github.com/google/uuid"

// Request DTOs

type BoardFilterRequest struct {
	Field string `json:"field" validate:"required,oneof=date hour patientName patientAge patientDocument"`
	Value string `json:"value" validate:"omitempty"` // empty removes the predicate
}

type BoardSortRequest struct {
	Field string `json:"field" validate:"required,oneof=date hour patientName patientAge patientDocument"`
}

type BoardVisibilityRequest struct {
	Field   string `json:"field" validate:"required,oneof=date hour patientName patientAge patientDocument"`
	Visible *bool  `json:"visible" validate:"required"`
}

type BoardNavigateRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

type BoardDateFilterRequest struct {
	Date string `json:"date" validate:"omitempty"` // Format: YYYY-MM-DD, empty clears
}

type BoardSelectionRequest struct {
	RowID string `json:"row_id" validate:"required"`
}

// Response DTOs

type BoardRowResponse struct {
	ID       string           `json:"id"`
	Date     string           `json:"date"`
	Hour     string           `json:"hour"`
	Patient  BoardRowPatient  `json:"patient"`
	Selected bool             `json:"selected"`
}

type BoardRowPatient struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Document string `json:"document"`
}

type BoardSortResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"` // asc | desc
}

type BoardResponse struct {
	BoardID       uuid.UUID          `json:"board_id"`
	Columns       []string           `json:"columns"`
	Rows          []BoardRowResponse `json:"rows"`
	PageIndex     int                `json:"page_index"`
	PageCount     int                `json:"page_count"`
	HasPrev       bool               `json:"has_prev"`
	HasNext       bool               `json:"has_next"`
	FilteredCount int                `json:"filtered_count"`
	Sort          *BoardSortResponse `json:"sort,omitempty"`
	Filters       map[string]string  `json:"filters"`
	SelectedIDs   []string           `json:"selected_ids"`
}
