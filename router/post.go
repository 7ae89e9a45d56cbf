package router

import (
	"fkemo/api"
	"fkemo/middleware"
)

func (router RouterGroup) PostRouter() {
	postApi := api.AppGroupApp.PostApi
	postRouter := router.Group("posts")
	postRouter.POST("", middleware.JwtAuth(), postApi.PostCreate)
	postRouter.GET("me", middleware.JwtAuth(), postApi.PostMine)
	postRouter.GET("me/following", middleware.JwtAuth(), postApi.PostFollowing)
	postRouter.GET("me/following/:id", middleware.JwtAuth(), postApi.PostFollowingUser)
}
