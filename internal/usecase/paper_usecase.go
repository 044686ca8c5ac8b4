package usecase

import (
	"context"
	"net/http"

	"papershop/internal/domain/model"
	repo "papershop/internal/repository"
)

type PaperUsecase struct {
	paperRepo repo.PaperRepository
}

// DI
func NewPaperUsecase(paperRepo repo.PaperRepository) *PaperUsecase {
	return &PaperUsecase{paperRepo: paperRepo}
}

// GET /papersの入力DTO
type ListPapersInput struct {
	Page    int
	Limit   int
	Q       string
	Board   string
	Level   string
	Subject string
}

type ListPapersOutput struct {
	Items []model.Paper `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

func (u *PaperUsecase) ListPapers(ctx context.Context, in ListPapersInput) (ListPapersOutput, error) {
	if in.Page < 1 {
		return ListPapersOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ListPapersOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	items, total, err := u.paperRepo.ListPublic(ctx, repo.PaperListQuery{
		Page:    in.Page,
		Limit:   in.Limit,
		Q:       in.Q,
		Board:   in.Board,
		Level:   in.Level,
		Subject: in.Subject,
	})
	if err != nil {
		return ListPapersOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ListPapersOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *PaperUsecase) GetPaperDetail(ctx context.Context, id int64) (model.Paper, error) {
	p, err := u.paperRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return model.Paper{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Paper{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	//非公開は「存在しない扱い」にする
	if !p.IsActive {
		return model.Paper{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}
