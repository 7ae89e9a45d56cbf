package router

import (
	"fkemo/api"
	"fkemo/middleware"
)

func (router RouterGroup) LikeRouter() {
	likeApi := api.AppGroupApp.LikeApi
	likeRouter := router.Group("likes")
	likeRouter.POST("post/:id", middleware.JwtAuth(), likeApi.LikeToggle)
	likeRouter.GET("post/:id/count", likeApi.LikeCount)
}
