package post

import (
	"strings"
	"sync"

	"fkemo/global"
	"fkemo/middleware"
	"fkemo/models"
	"fkemo/models/res"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func (p *Post) PostCreate(c *gin.Context) {
	user := middleware.CurrentUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		global.Log.Error("c.MultipartForm() failed", zap.String("error", err.Error()))
		res.Error(c, res.InvalidParameter, "请求参数格式错误")
		return
	}

	content := ""
	if values, ok := form.Value["content"]; ok && len(values) > 0 {
		content = strings.TrimSpace(values[0])
	}
	if content == "" {
		res.Error(c, res.MissingParameter, "内容不能为空")
		return
	}

	// 并发保存图片文件
	fileList := form.File["images"]
	var (
		mutex  sync.Mutex
		images []models.PostImageModel
		eg     errgroup.Group
	)
	for _, file := range fileList {
		file := file
		eg.Go(func() error {
			image, err := models.SavePostImage(file)
			if err != nil {
				return err
			}
			mutex.Lock()
			images = append(images, *image)
			mutex.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		global.Log.Error("models.SavePostImage() failed", zap.String("error", err.Error()))
		res.Error(c, res.FileUploadFailed, err.Error())
		return
	}

	post := &models.PostModel{
		Content: content,
		UserID:  user.ID,
		Images:  images,
	}
	if err := post.Create(); err != nil {
		global.Log.Error("post.Create() failed", zap.String("error", err.Error()))
		res.Error(c, res.ServerError, "创建帖子失败")
		return
	}

	global.Log.Info("创建帖子成功", zap.String("method", c.Request.Method), zap.String("path", c.Request.URL.Path))
	res.Success(c, post)
}
