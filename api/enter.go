package api

import (
	"fkemo/api/comment"
	"fkemo/api/follow"
	"fkemo/api/like"
	"fkemo/api/post"
	"fkemo/api/system"
	"fkemo/api/tag"
	"fkemo/api/user"
)

type AppGroup struct {
	SystemApi  system.System
	UserApi    user.User
	PostApi    post.Post
	CommentApi comment.Comment
	LikeApi    like.Like
	FollowApi  follow.Follow
	TagApi     tag.Tag
}

var AppGroupApp = new(AppGroup)
