package news

import "time"

// Article 文章模型
// ExternalID 来自上游内容源，作为归档去重键
type Article struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	ExternalID  string    `gorm:"uniqueIndex;size:64" json:"id"`
	Title       string    `gorm:"size:512" json:"title"`
	Summary     string    `gorm:"type:text" json:"summary"`
	URL         string    `gorm:"size:1024" json:"url"`
	Source      string    `gorm:"size:128;index" json:"source"`
	Topics      []string  `gorm:"serializer:json" json:"topics"`
	PublishedAt time.Time `gorm:"index" json:"published_at"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "articles"
}

// ListQuery 文章列表查询参数
type ListQuery struct {
	Topic  string `form:"topic"`
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}
