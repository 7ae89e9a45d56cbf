package router

import (
	"fkemo/api"
	"fkemo/middleware"
)

func (router RouterGroup) CommentRouter() {
	commentApi := api.AppGroupApp.CommentApi
	commentRouter := router.Group("comments")
	commentRouter.POST("post/:id", middleware.JwtAuth(), commentApi.CommentCreate)
	commentRouter.GET("post/:id", commentApi.CommentList)
}
