package router

import (
	"fkemo/api"
	"fkemo/middleware"
)

func (router RouterGroup) FollowRouter() {
	followApi := api.AppGroupApp.FollowApi
	followRouter := router.Group("follows")
	followRouter.POST("", middleware.JwtAuth(), followApi.FollowCreate)
	followRouter.GET("me/following", middleware.JwtAuth(), followApi.FollowingList)
	followRouter.GET("me/followers", middleware.JwtAuth(), followApi.FollowersList)
}
