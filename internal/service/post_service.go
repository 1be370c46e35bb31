package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"Go_Board/internal/model"
	"Go_Board/internal/repository/mysql"
)

var (
	// ErrInvalidParam 参数校验失败，不会触发任何存储访问
	ErrInvalidParam = errors.New("invalid param")
	// ErrPostNotFound id 合法但帖子不存在
	ErrPostNotFound = errors.New("post not found")
)

const (
	maxTitleLen   = 200
	maxContentLen = 10000
	maxAuthorLen  = 100

	// MaxPageSize 单页上限是业务规则，超出直接拒绝，不做截断
	MaxPageSize = 5
)

// Page 分页结果：列表 + 总数元信息
type Page struct {
	Items         []model.Post `json:"items"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Page          int          `json:"page"`
	Size          int          `json:"size"`
}

type PostService struct {
	repo *mysql.PostRepository
}

func NewPostService(repo *mysql.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// CreatePost 创建帖子：三个字段先 trim 再校验，时间戳显式落在同一时刻
func (s *PostService) CreatePost(title, content, author string) (*model.Post, error) {
	title, content, author, err := validateFields(title, content, author)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Title:   title,
		Content: content,
		Author:  author,
	}
	post.StampCreate(time.Now())

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPosts 默认列表，按创建时间倒序
func (s *PostService) GetPosts(page, size int) (*Page, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}
	list, total, err := s.repo.ListLatest(page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

// GetPost 详情读取，浏览数 +1 后返回。注意该读取不幂等：读两次加两次。
func (s *PostService) GetPost(id uint64) (*model.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	post, err := s.repo.IncrementView(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return post, nil
}

// UpdatePost 整体替换三个文本字段；view_count 和 created_at 不动
func (s *PostService) UpdatePost(id uint64, title, content, author string) (*model.Post, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	title, content, author, err := validateFields(title, content, author)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, wrapNotFound(err)
	}

	post.Title = title
	post.Content = content
	post.Author = author
	post.StampUpdate(time.Now())

	if err := s.repo.Update(post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost 硬删除，无软删标记
func (s *PostService) DeletePost(id uint64) error {
	if err := validateID(id); err != nil {
		return err
	}
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// SearchByTitle 标题搜索，结果按创建时间倒序
func (s *PostService) SearchByTitle(title string, page, size int) (*Page, error) {
	term, err := validateSearch(title, "title", page, size)
	if err != nil {
		return nil, err
	}
	list, total, err := s.repo.SearchTitle(term, page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

// SearchByContent 内容搜索
func (s *PostService) SearchByContent(content string, page, size int) (*Page, error) {
	term, err := validateSearch(content, "content", page, size)
	if err != nil {
		return nil, err
	}
	list, total, err := s.repo.SearchContent(term, page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

// SearchByAuthor 作者搜索
func (s *PostService) SearchByAuthor(author string, page, size int) (*Page, error) {
	term, err := validateSearch(author, "author", page, size)
	if err != nil {
		return nil, err
	}
	list, total, err := s.repo.SearchAuthor(term, page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

// SearchByKeyword 关键字搜索：标题、内容、作者任一命中
func (s *PostService) SearchByKeyword(keyword string, page, size int) (*Page, error) {
	term, err := validateSearch(keyword, "keyword", page, size)
	if err != nil {
		return nil, err
	}
	list, total, err := s.repo.SearchAll(term, page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

// GetPostsByViewCount 热门列表，按浏览数倒序
func (s *PostService) GetPostsByViewCount(page, size int) (*Page, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}
	list, total, err := s.repo.ListPopular(page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

// GetPostsByLatest 最新列表，按创建时间倒序
func (s *PostService) GetPostsByLatest(page, size int) (*Page, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}
	list, total, err := s.repo.ListLatest(page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

// GetPostsByPeriod 创建时间在 [start, end] 闭区间内的帖子
func (s *PostService) GetPostsByPeriod(start, end time.Time, page, size int) (*Page, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: start must not be after end", ErrInvalidParam)
	}
	list, total, err := s.repo.ListCreatedBetween(start, end, page*size, size)
	if err != nil {
		return nil, err
	}
	return newPage(list, total, page, size), nil
}

func validateID(id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: post id must be positive", ErrInvalidParam)
	}
	return nil
}

func validatePage(page, size int) error {
	if page < 0 {
		return fmt.Errorf("%w: page must be >= 0", ErrInvalidParam)
	}
	if size < 1 || size > MaxPageSize {
		return fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidParam, MaxPageSize)
	}
	return nil
}

func validateFields(title, content, author string) (string, string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	author = strings.TrimSpace(author)

	if title == "" || len([]rune(title)) > maxTitleLen {
		return "", "", "", fmt.Errorf("%w: title must be 1-%d characters", ErrInvalidParam, maxTitleLen)
	}
	if content == "" || len([]rune(content)) > maxContentLen {
		return "", "", "", fmt.Errorf("%w: content must be 1-%d characters", ErrInvalidParam, maxContentLen)
	}
	if author == "" || len([]rune(author)) > maxAuthorLen {
		return "", "", "", fmt.Errorf("%w: author must be 1-%d characters", ErrInvalidParam, maxAuthorLen)
	}
	return title, content, author, nil
}

func validateSearch(term, name string, page, size int) (string, error) {
	if err := validatePage(page, size); err != nil {
		return "", err
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return "", fmt.Errorf("%w: search %s required", ErrInvalidParam, name)
	}
	return term, nil
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	return err
}

func newPage(items []model.Post, total int64, page, size int) *Page {
	if items == nil {
		items = []model.Post{}
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &Page{
		Items:         items,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          page,
		Size:          size,
	}
}
