package converter

import (
	"go-appointment-board/internal/delivery/dto"
	"go-appointment-board/internal/tableview"

	"github.com/google/uuid"
)

// BoardToResponse renders the engine's current view into the board response
// DTO: the current page's rows, visible columns, page info and active state.
func BoardToResponse(boardID uuid.UUID, engine *tableview.Engine) *dto.BoardResponse {
	page := engine.PageInfo()

	visible := engine.VisibleRows()
	rows := make([]dto.BoardRowResponse, len(visible))
	for i, row := range visible {
		rows[i] = dto.BoardRowResponse{
			ID:   row.ID,
			Date: row.Date,
			Hour: row.Hour,
			Patient: dto.BoardRowPatient{
				ID:       row.Patient.ID,
				Name:     row.Patient.Name,
				Age:      row.Patient.Age,
				Document: row.Patient.Document,
			},
			Selected: engine.IsSelected(row.ID),
		}
	}

	return &dto.BoardResponse{
		BoardID:       boardID,
		Columns:       engine.VisibleColumns(),
		Rows:          rows,
		PageIndex:     page.PageIndex,
		PageCount:     page.PageCount,
		HasPrev:       page.HasPrev(),
		HasNext:       page.HasNext(),
		FilteredCount: engine.FilteredCount(),
		Sort:          sortToResponse(engine.Sort()),
		Filters:       engine.Filters(),
		SelectedIDs:   engine.SelectedIDs(),
	}
}

func sortToResponse(spec tableview.SortSpec) *dto.BoardSortResponse {
	if !spec.Active() {
		return nil
	}
	direction := "asc"
	if spec.Direction == tableview.Descending {
		direction = "desc"
	}
	return &dto.BoardSortResponse{Field: spec.Field, Direction: direction}
}
