package server

import (
	"sideb/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Image    *handler.Image
	Post     *handler.Post
	Category *handler.Category
	Author   *handler.Author
	Page     *handler.Page
	Setting  *handler.Setting
}
