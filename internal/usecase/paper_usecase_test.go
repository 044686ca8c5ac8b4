package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"papershop/internal/domain/model"
	repo "papershop/internal/repository"
	"papershop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type PaperRepoMock struct {
	mock.Mock
}

func (m *PaperRepoMock) ListPublic(ctx context.Context, q repo.PaperListQuery) ([]model.Paper, int64, error) {
	args := m.Called(ctx, q)
	papers, _ := args.Get(0).([]model.Paper)
	return papers, args.Get(1).(int64), args.Error(2)
}

func (m *PaperRepoMock) FindByID(ctx context.Context, id int64) (model.Paper, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Paper)
	return p, args.Error(1)
}

func TestListPapers_InvalidPage(t *testing.T) {
	r := new(PaperRepoMock)
	uc := usecase.NewPaperUsecase(r)

	_, err := uc.ListPapers(context.Background(), usecase.ListPapersInput{Page: 0, Limit: 20})

	assertHTTPError(t, err, http.StatusBadRequest, "invalid page")
	r.AssertNotCalled(t, "ListPublic")
}

func TestListPapers_InvalidLimit(t *testing.T) {
	r := new(PaperRepoMock)
	uc := usecase.NewPaperUsecase(r)

	_, err := uc.ListPapers(context.Background(), usecase.ListPapersInput{Page: 1, Limit: 101})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid limit")

	_, err = uc.ListPapers(context.Background(), usecase.ListPapersInput{Page: 1, Limit: 0})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid limit")
}

func TestListPapers_Success(t *testing.T) {
	r := new(PaperRepoMock)
	uc := usecase.NewPaperUsecase(r)

	papers := []model.Paper{
		{ID: 1, Code: "0580", Subject: "Mathematics", Board: "Cambridge", Level: "IGCSE", Price: 390, IsActive: true},
		{ID: 2, Code: "0625", Subject: "Physics", Board: "Cambridge", Level: "IGCSE", Price: 390, IsActive: true},
	}
	r.On("ListPublic", mock.Anything, repo.PaperListQuery{Page: 1, Limit: 20, Board: "Cambridge"}).Return(papers, int64(2), nil)

	out, err := uc.ListPapers(context.Background(), usecase.ListPapersInput{Page: 1, Limit: 20, Board: "Cambridge"})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, "0580", out.Items[0].Code)
}

func TestGetPaperDetail_NotFound(t *testing.T) {
	r := new(PaperRepoMock)
	uc := usecase.NewPaperUsecase(r)

	r.On("FindByID", mock.Anything, int64(99)).Return(model.Paper{}, repo.ErrNotFound)

	_, err := uc.GetPaperDetail(context.Background(), 99)

	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

// 非公開の教材は404に倒す
func TestGetPaperDetail_InactiveHidden(t *testing.T) {
	r := new(PaperRepoMock)
	uc := usecase.NewPaperUsecase(r)

	r.On("FindByID", mock.Anything, int64(3)).Return(model.Paper{ID: 3, Code: "0610", IsActive: false}, nil)

	_, err := uc.GetPaperDetail(context.Background(), 3)

	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestGetPaperDetail_Success(t *testing.T) {
	r := new(PaperRepoMock)
	uc := usecase.NewPaperUsecase(r)

	r.On("FindByID", mock.Anything, int64(1)).Return(model.Paper{ID: 1, Code: "0580", Subject: "Mathematics", IsActive: true}, nil)

	p, err := uc.GetPaperDetail(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "0580", p.Code)
}
