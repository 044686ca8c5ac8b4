package repository

import (
	"context"

	"papershop/internal/domain/model"
)

// 一覧検索
type PaperListQuery struct {
	Page    int
	Limit   int
	Q       string
	Board   string
	Level   string
	Subject string
}

// 過去問カタログの取得だけを約束。
type PaperRepository interface {
	ListPublic(ctx context.Context, q PaperListQuery) ([]model.Paper, int64, error)
	FindByID(ctx context.Context, id int64) (model.Paper, error)
}
