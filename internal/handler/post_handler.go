package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"Go_Board/internal/service"
)

type PostHandler struct {
	svc    *service.PostService
	logger *zap.Logger
}

type PostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func NewPostHandler(svc *service.PostService, logger *zap.Logger) *PostHandler {
	return &PostHandler{svc: svc, logger: logger}
}

// CreatePost 创建帖子接口
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreatePost(req.Title, req.Content, req.Author)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPosts 帖子列表接口，默认按创建时间倒序
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.GetPosts(page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPost 帖子详情接口，浏览数 +1
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	post, err := h.svc.GetPost(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePost 编辑帖子接口
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req PostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.UpdatePost(id, req.Title, req.Content, req.Author)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost 删除帖子接口
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.svc.DeletePost(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchByTitle 标题搜索接口
func (h *PostHandler) SearchByTitle(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.SearchByTitle(c.Query("title"), page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchByContent 内容搜索接口
func (h *PostHandler) SearchByContent(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.SearchByContent(c.Query("content"), page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchByAuthor 作者搜索接口
func (h *PostHandler) SearchByAuthor(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.SearchByAuthor(c.Query("author"), page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SearchByKeyword 关键字搜索接口：标题、内容、作者任一命中
func (h *PostHandler) SearchByKeyword(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.SearchByKeyword(c.Query("keyword"), page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPopularPosts 热门列表接口，按浏览数倒序
func (h *PostHandler) GetPopularPosts(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.GetPostsByViewCount(page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetLatestPosts 最新列表接口
func (h *PostHandler) GetLatestPosts(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	result, err := h.svc.GetPostsByLatest(page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetPostsByPeriod 按创建时间区间查询接口，start/end 为 RFC3339
func (h *PostHandler) GetPostsByPeriod(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid start"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid end"})
		return
	}

	result, err := h.svc.GetPostsByPeriod(start, end, page, size)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// pageParams 解析 page/size，缺省 page=0 size=5
func (h *PostHandler) pageParams(c *gin.Context) (int, int, bool) {
	page, err1 := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, err2 := strconv.Atoi(c.DefaultQuery("size", "5"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid page/size"})
		return 0, 0, false
	}
	return page, size, true
}

func (h *PostHandler) idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return 0, false
	}
	return id, true
}

// respondError 错误分类映射：参数错误 400，未找到 404，其余 500 只落日志不外漏
func (h *PostHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidParam):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
	default:
		h.logger.Error("unexpected error",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}
