package news

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kochabx/newswire/errors"
	"github.com/kochabx/newswire/store/db"
)

// Repository 文章归档仓储
type Repository struct {
	db *gorm.DB
}

// NewRepository 创建文章仓储并迁移表结构
func NewRepository(client *db.Client) (*Repository, error) {
	if err := client.AutoMigrate(&Article{}); err != nil {
		return nil, errors.Internal("migrate articles: %v", err)
	}
	return &Repository{db: client.DB()}, nil
}

// Upsert 批量写入文章，按 external_id 去重更新
func (r *Repository) Upsert(ctx context.Context, articles []Article) error {
	if len(articles) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "summary", "url", "source", "topics", "published_at", "updated_at"}),
		}).
		Create(&articles).Error
	if err != nil {
		return errors.Internal("upsert articles: %v", err)
	}
	return nil
}

// List 按发布时间倒序分页查询
func (r *Repository) List(ctx context.Context, q ListQuery) ([]Article, error) {
	tx := r.db.WithContext(ctx).Model(&Article{})

	if q.Topic != "" {
		// topics 序列化为 JSON 数组，按带引号的元素匹配
		tx = tx.Where("topics LIKE ?", `%"`+q.Topic+`"%`)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}

	var articles []Article
	if err := tx.Order("published_at DESC").Find(&articles).Error; err != nil {
		return nil, errors.Internal("list articles: %v", err)
	}
	return articles, nil
}

// Get 按外部 ID 查询单篇文章
func (r *Repository) Get(ctx context.Context, externalID string) (*Article, error) {
	var article Article
	err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound("article %s not found", externalID)
		}
		return nil, errors.Internal("get article: %v", err)
	}
	return &article, nil
}
