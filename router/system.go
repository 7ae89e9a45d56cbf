package router

import (
	"fkemo/api"
)

func (router RouterGroup) SystemRouter() {
	systemApi := api.AppGroupApp.SystemApi
	systemRouter := router.Group("system")
	systemRouter.GET("captcha", systemApi.CaptchaCreate)
}
