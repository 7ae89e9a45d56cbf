package router

import (
	"fkemo/api"
	"fkemo/middleware"
)

func (router RouterGroup) UserRouter() {
	userApi := api.AppGroupApp.UserApi
	userRouter := router.Group("user")
	userRouter.POST("register", userApi.UserRegister)
	userRouter.POST("login", userApi.UserLogin)
	userRouter.GET("me", middleware.JwtAuth(), userApi.Userinfo)
	userRouter.POST("logout", middleware.JwtAuth(), userApi.UserLogout)
}
