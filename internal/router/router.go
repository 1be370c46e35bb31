package router

import (
	"github.com/gin-gonic/gin"

	"Go_Board/internal/handler"
	"Go_Board/internal/middleware"
)

func InitRouter(post *handler.PostHandler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// 帖子相关接口
	postGroup := r.Group("/api/posts")
	{
		postGroup.POST("", post.CreatePost)
		postGroup.GET("", post.GetPosts)
		postGroup.GET("/popular", post.GetPopularPosts)
		postGroup.GET("/latest", post.GetLatestPosts)
		postGroup.GET("/period", post.GetPostsByPeriod)
		postGroup.GET("/search/title", post.SearchByTitle)
		postGroup.GET("/search/content", post.SearchByContent)
		postGroup.GET("/search/author", post.SearchByAuthor)
		postGroup.GET("/search/keyword", post.SearchByKeyword)
		postGroup.GET("/:id", post.GetPost)
		postGroup.PUT("/:id", post.UpdatePost)
		postGroup.DELETE("/:id", post.DeletePost)
	}

	return r
}
