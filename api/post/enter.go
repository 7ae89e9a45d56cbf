package post

type Post struct{}
