package types

type SaveCategoryRequest struct {
	Slug         string `json:"slug" binding:"required"`
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type SaveAuthorRequest struct {
	DisplayName     string `json:"display_name" binding:"required"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
}

type SavePageRequest struct {
	Slug         string `json:"slug" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content"`
	Section      string `json:"section" binding:"required"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}
