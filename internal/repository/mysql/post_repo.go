package mysql

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"Go_Board/internal/model"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ?", id).Error
	return &post, err
}

// Update 只覆盖可编辑字段，避免并发浏览数自增被整行写回冲掉。
func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("title", "content", "author", "updated_at").
		Updates(post).Error
}

// Delete 硬删除，返回影响行数供上层判断是否存在
func (r *PostRepository) Delete(id uint64) (int64, error) {
	tx := r.DB.Delete(&model.Post{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

// IncrementView 详情页浏览数 +1，和读取放在同一事务里。
// 用 UpdateColumn 跳过 updated_at，浏览不算编辑。
func (r *PostRepository) IncrementView(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&post).
			UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error; err != nil {
			return err
		}
		post.ViewCount++
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListLatest 按创建时间倒序分页
func (r *PostRepository) ListLatest(offset, limit int) ([]model.Post, int64, error) {
	return r.findPage(r.DB.Model(&model.Post{}), "created_at DESC, id ASC", offset, limit)
}

// ListPopular 按浏览数倒序分页
func (r *PostRepository) ListPopular(offset, limit int) ([]model.Post, int64, error) {
	return r.findPage(r.DB.Model(&model.Post{}), "view_count DESC, id ASC", offset, limit)
}

// SearchTitle 标题子串匹配（不区分大小写）
func (r *PostRepository) SearchTitle(term string, offset, limit int) ([]model.Post, int64, error) {
	q := r.DB.Model(&model.Post{}).Where("LOWER(title) LIKE ?", likePattern(term))
	return r.findPage(q, "created_at DESC, id ASC", offset, limit)
}

// SearchContent 内容子串匹配（不区分大小写）
func (r *PostRepository) SearchContent(term string, offset, limit int) ([]model.Post, int64, error) {
	q := r.DB.Model(&model.Post{}).Where("LOWER(content) LIKE ?", likePattern(term))
	return r.findPage(q, "created_at DESC, id ASC", offset, limit)
}

// SearchAuthor 作者子串匹配（不区分大小写）
func (r *PostRepository) SearchAuthor(term string, offset, limit int) ([]model.Post, int64, error) {
	q := r.DB.Model(&model.Post{}).Where("LOWER(author) LIKE ?", likePattern(term))
	return r.findPage(q, "created_at DESC, id ASC", offset, limit)
}

// SearchTitleOrContent 标题或内容命中即返回
func (r *PostRepository) SearchTitleOrContent(term string, offset, limit int) ([]model.Post, int64, error) {
	p := likePattern(term)
	q := r.DB.Model(&model.Post{}).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", p, p)
	return r.findPage(q, "created_at DESC, id ASC", offset, limit)
}

// SearchAll 关键字搜索：标题、内容、作者任一命中
func (r *PostRepository) SearchAll(term string, offset, limit int) ([]model.Post, int64, error) {
	p := likePattern(term)
	q := r.DB.Model(&model.Post{}).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(author) LIKE ?", p, p, p)
	return r.findPage(q, "created_at DESC, id ASC", offset, limit)
}

// ListCreatedBetween 创建时间在 [start, end] 闭区间内的帖子
func (r *PostRepository) ListCreatedBetween(start, end time.Time, offset, limit int) ([]model.Post, int64, error) {
	q := r.DB.Model(&model.Post{}).Where("created_at BETWEEN ? AND ?", start, end)
	return r.findPage(q, "created_at DESC, id ASC", offset, limit)
}

// findPage 先 Count 再取页，返回列表和总数。
// 开新 Session，避免同一条件链在 Count 之后复用出脏语句。
func (r *PostRepository) findPage(q *gorm.DB, order string, offset, limit int) ([]model.Post, int64, error) {
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Post
	err := q.Order(order).Offset(offset).Limit(limit).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
