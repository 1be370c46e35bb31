package model

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	ViewCount int64     `gorm:"not null;default:0" json:"viewCount"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index:idx_created_at,sort:desc" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// StampCreate 创建时间戳：created_at 与 updated_at 取同一时刻。
func (p *Post) StampCreate(now time.Time) {
	p.CreatedAt = now
	p.UpdatedAt = now
}

// StampUpdate 编辑时只刷新 updated_at，created_at 与 view_count 不动。
func (p *Post) StampUpdate(now time.Time) {
	p.UpdatedAt = now
}
