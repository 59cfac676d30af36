package request

type ListAssetsRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type DeleteAssetRequest struct {
	VersionID string `form:"version_id" binding:"omitempty,max=1024"`
}

type UploadAssetRequest struct {
	Thumbnail    bool   `form:"thumbnail"`
	CacheControl string `form:"cache_control" binding:"omitempty,max=256"`
}
