package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ImageService), "*"),
	wire.Bind(new(IImageService), new(*ImageService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(CategoryService), "*"),
	wire.Bind(new(ICategoryService), new(*CategoryService)),

	wire.Struct(new(AuthorService), "*"),
	wire.Bind(new(IAuthorService), new(*AuthorService)),

	wire.Struct(new(PageService), "*"),
	wire.Bind(new(IPageService), new(*PageService)),

	wire.Struct(new(SettingService), "*"),
	wire.Bind(new(ISettingService), new(*SettingService)),
)
