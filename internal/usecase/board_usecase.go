package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-appointment-board/internal/converter"
	"go-appointment-board/internal/delivery/dto"
	"go-appointment-board/internal/service"
	"go-appointment-board/internal/tableview"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBoardNotFound     = errors.New("board not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

// DatasetLoader is the data-loading collaborator the board depends on.
// Implemented by service.ScheduleLoader.
type DatasetLoader interface {
	Load(ctx context.Context, key string) ([]tableview.Row, error)
	Invalidate(ctx context.Context, key string)
}

type BoardUsecase interface {
	CreateBoard(ctx context.Context) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error)
	SetFilter(ctx context.Context, boardID uuid.UUID, req *dto.BoardFilterRequest) (*dto.BoardResponse, error)
	ClearFilter(ctx context.Context, boardID uuid.UUID, field string) (*dto.BoardResponse, error)
	SetDateFilter(ctx context.Context, boardID uuid.UUID, req *dto.BoardDateFilterRequest) (*dto.BoardResponse, error)
	SetSort(ctx context.Context, boardID uuid.UUID, req *dto.BoardSortRequest) (*dto.BoardResponse, error)
	SetVisibility(ctx context.Context, boardID uuid.UUID, req *dto.BoardVisibilityRequest) (*dto.BoardResponse, error)
	ToggleSelection(ctx context.Context, boardID uuid.UUID, req *dto.BoardSelectionRequest) (*dto.BoardResponse, error)
	Navigate(ctx context.Context, boardID uuid.UUID, req *dto.BoardNavigateRequest) (*dto.BoardResponse, error)
	Refresh(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error)
	CloseBoard(ctx context.Context, boardID uuid.UUID) error
}

// boardSession binds one view engine instance to a board id. The engine is
// unsynchronized on purpose; the session mutex serializes access when the
// delivery layer calls in concurrently.
type boardSession struct {
	mu         sync.Mutex
	engine     *tableview.Engine
	dateFilter *tableview.DateFilter
}

type boardUsecase struct {
	log    *logrus.Logger
	loader DatasetLoader

	mu     sync.RWMutex
	boards map[uuid.UUID]*boardSession
}

func NewBoardUsecase(log *logrus.Logger, loader DatasetLoader) BoardUsecase {
	return &boardUsecase{
		log:    log,
		loader: loader,
		boards: make(map[uuid.UUID]*boardSession),
	}
}

// CreateBoard loads the schedule dataset and opens a new board session with
// default view state: no filters, no sort, first page, all columns visible.
func (u *boardUsecase) CreateBoard(ctx context.Context) (*dto.BoardResponse, error) {
	rows, err := u.loader.Load(ctx, service.ScheduleCacheKey)
	if err != nil {
		u.log.Warnf("Failed to load schedule dataset: %+v", err)
		return nil, err
	}

	engine := tableview.NewEngine()
	engine.SetRows(rows)

	session := &boardSession{
		engine:     engine,
		dateFilter: tableview.NewDateFilter(engine),
	}

	boardID := uuid.New()
	u.mu.Lock()
	u.boards[boardID] = session
	u.mu.Unlock()

	return converter.BoardToResponse(boardID, engine), nil
}

func (u *boardUsecase) GetBoard(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error) {
	return u.withSession(boardID, func(session *boardSession) {})
}

func (u *boardUsecase) SetFilter(ctx context.Context, boardID uuid.UUID, req *dto.BoardFilterRequest) (*dto.BoardResponse, error) {
	return u.withSession(boardID, func(session *boardSession) {
		session.engine.SetFilter(req.Field, req.Value)
	})
}

func (u *boardUsecase) ClearFilter(ctx context.Context, boardID uuid.UUID, field string) (*dto.BoardResponse, error) {
	return u.withSession(boardID, func(session *boardSession) {
		session.engine.ClearFilter(field)
	})
}

// SetDateFilter selects or clears the calendar-date filter. An empty date
// clears the predicate entirely, through the date-filter adapter.
func (u *boardUsecase) SetDateFilter(ctx context.Context, boardID uuid.UUID, req *dto.BoardDateFilterRequest) (*dto.BoardResponse, error) {
	var day time.Time
	if req.Date != "" {
		parsed, err := time.Parse(tableview.DateLayout, req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		day = parsed
	}

	return u.withSession(boardID, func(session *boardSession) {
		if req.Date == "" {
			session.dateFilter.Clear()
			return
		}
		session.dateFilter.Select(day)
	})
}

func (u *boardUsecase) SetSort(ctx context.Context, boardID uuid.UUID, req *dto.BoardSortRequest) (*dto.BoardResponse, error) {
	return u.withSession(boardID, func(session *boardSession) {
		session.engine.SetSort(req.Field)
	})
}

func (u *boardUsecase) SetVisibility(ctx context.Context, boardID uuid.UUID, req *dto.BoardVisibilityRequest) (*dto.BoardResponse, error) {
	return u.withSession(boardID, func(session *boardSession) {
		session.engine.SetVisibility(req.Field, *req.Visible)
	})
}

func (u *boardUsecase) ToggleSelection(ctx context.Context, boardID uuid.UUID, req *dto.BoardSelectionRequest) (*dto.BoardResponse, error) {
	return u.withSession(boardID, func(session *boardSession) {
		session.engine.ToggleSelection(req.RowID)
	})
}

func (u *boardUsecase) Navigate(ctx context.Context, boardID uuid.UUID, req *dto.BoardNavigateRequest) (*dto.BoardResponse, error) {
	return u.withSession(boardID, func(session *boardSession) {
		session.engine.SetPage(req.Delta)
	})
}

// Refresh drops the cached dataset and reloads the board's snapshot from
// the source of truth. View state (filters, sort, visibility, selection)
// is kept; the page index clamps if the dataset shrank.
func (u *boardUsecase) Refresh(ctx context.Context, boardID uuid.UUID) (*dto.BoardResponse, error) {
	session, err := u.session(boardID)
	if err != nil {
		return nil, err
	}

	u.loader.Invalidate(ctx, service.ScheduleCacheKey)
	rows, err := u.loader.Load(ctx, service.ScheduleCacheKey)
	if err != nil {
		u.log.Warnf("Failed to reload schedule dataset: %+v", err)
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.engine.SetRows(rows)
	return converter.BoardToResponse(boardID, session.engine), nil
}

func (u *boardUsecase) CloseBoard(ctx context.Context, boardID uuid.UUID) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.boards[boardID]; !ok {
		return ErrBoardNotFound
	}
	delete(u.boards, boardID)
	return nil
}

func (u *boardUsecase) session(boardID uuid.UUID) (*boardSession, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	session, ok := u.boards[boardID]
	if !ok {
		return nil, ErrBoardNotFound
	}
	return session, nil
}

func (u *boardUsecase) withSession(boardID uuid.UUID, mutate func(*boardSession)) (*dto.BoardResponse, error) {
	session, err := u.session(boardID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	mutate(session)
	return converter.BoardToResponse(boardID, session.engine), nil
}
