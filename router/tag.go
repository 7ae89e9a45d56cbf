package router

import (
	"fkemo/api"
	"fkemo/middleware"
)

func (router RouterGroup) TagRouter() {
	tagApi := api.AppGroupApp.TagApi

	categoryRouter := router.Group("interest_categories")
	categoryRouter.GET("", tagApi.InterestCategoryList)
	categoryRouter.POST("", middleware.JwtAuth(), middleware.JwtAdmin(), tagApi.InterestCategoryCreate)

	fanTypeRouter := router.Group("fan_types")
	fanTypeRouter.GET("", tagApi.FanTypeList)
	fanTypeRouter.POST("", middleware.JwtAuth(), middleware.JwtAdmin(), tagApi.FanTypeCreate)
}
