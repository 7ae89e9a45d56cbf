package router

import (
	"net/http"

	"fkemo/core"
	"fkemo/global"
	"fkemo/utils"

	"github.com/gin-gonic/gin"
)

type RouterGroup struct {
	*gin.RouterGroup
}

func InitRouter() *gin.Engine {
	// 设置gin模式
	gin.SetMode(global.Config.System.Env)
	router := gin.New()
	router.Use(core.GinMiddleware(), core.GinRecovery())
	router.Use(utils.Cors())
	// 本地上传的图片直接静态托管
	router.StaticFS("uploads", http.Dir(global.Config.Upload.Path))
	// 创建路由组
	apiRouterGroup := router.Group("api")
	routerGroupApp := RouterGroup{apiRouterGroup}
	routerGroupApp.SystemRouter()
	routerGroupApp.UserRouter()
	routerGroupApp.PostRouter()
	routerGroupApp.CommentRouter()
	routerGroupApp.LikeRouter()
	routerGroupApp.FollowRouter()
	routerGroupApp.TagRouter()
	return router
}
