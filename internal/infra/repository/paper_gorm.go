package repository

import (
	"context"
	"errors"

	"papershop/internal/domain/model"
	repo "papershop/internal/repository"

	"gorm.io/gorm"
)

type PaperGormRepository struct {
	db *gorm.DB
}

func NewPaperGormRepository(db *gorm.DB) *PaperGormRepository {
	return &PaperGormRepository{db: db}
}

func (r *PaperGormRepository) ListPublic(ctx context.Context, q repo.PaperListQuery) ([]model.Paper, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}

	query := r.db.WithContext(ctx).Model(&model.Paper{}).Where("is_active = ?", true)

	//フリーワードはコードと科目名に対して
	if q.Q != "" {
		like := "%" + q.Q + "%"
		query = query.Where("code ILIKE ? OR subject ILIKE ?", like, like)
	}
	if q.Board != "" {
		query = query.Where("board = ?", q.Board)
	}
	if q.Level != "" {
		query = query.Where("level = ?", q.Level)
	}
	if q.Subject != "" {
		query = query.Where("subject = ?", q.Subject)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return []model.Paper{}, 0, err
	}

	var items []model.Paper
	offset := (q.Page - 1) * q.Limit
	if err := query.Order("code asc").Limit(q.Limit).Offset(offset).Find(&items).Error; err != nil {
		return []model.Paper{}, 0, err
	}

	return items, total, nil
}

func (r *PaperGormRepository) FindByID(ctx context.Context, id int64) (model.Paper, error) {
	var p model.Paper
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Paper{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Paper{}, err
	}
	return p, nil
}
