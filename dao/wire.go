package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewAdminDAO,
	NewImage,
	NewPostDAO,
	NewCategoryDAO,
	NewAuthorDAO,
	NewPageDAO,
	NewSettingDAO,
)
