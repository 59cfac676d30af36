package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/asset-store/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/asset-store/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/pkg/httputil"
	"github.com/marcos-nsantos/asset-store/internal/pkg/pagination"
	"github.com/marcos-nsantos/asset-store/internal/usecase/asset"
)

const DefaultMaxUploadSize = 20 << 20 // 20MB

type AssetHandler struct {
	assetSvc      AssetService
	maxUploadSize int64
}

func NewAssetHandler(assetSvc AssetService, maxUploadSize int64) *AssetHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &AssetHandler{assetSvc: assetSvc, maxUploadSize: maxUploadSize}
}

func (h *AssetHandler) Upload(c *gin.Context) {
	// Room for the multipart envelope around the file itself.
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+1<<20)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			httputil.HandleError(c, domain.ErrFileTooLarge)
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		httputil.HandleError(c, domain.ErrFileTooLarge)
		return
	}

	var req request.UploadAssetRequest
	if err := c.ShouldBind(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "could not read file")
		return
	}

	var params storage.Params
	if req.CacheControl != "" {
		params = storage.Params{"CacheControl": req.CacheControl}
	}

	result, err := h.assetSvc.Create(c.Request.Context(), asset.CreateInput{
		Name:        header.Filename,
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Thumbnail:   req.Thumbnail,
		Params:      params,
	})
	if err != nil {
		_ = c.Error(err)
		httputil.HandleError(c, err)
		return
	}

	resp := response.AssetFromEntity(result)
	resp.Variants = h.assetSvc.VariantURLs(result)
	httputil.Created(c, resp)
}

func (h *AssetHandler) List(c *gin.Context) {
	var req request.ListAssetsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	assets, pageInfo, err := h.assetSvc.List(c.Request.Context(), pagination.NewParams(req.Page, req.PerPage))
	if err != nil {
		_ = c.Error(err)
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.AssetsListResponse{
		Assets:     response.AssetsFromEntities(assets),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *AssetHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid asset id")
		return
	}

	result, err := h.assetSvc.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleError(c, err)
		return
	}

	resp := response.AssetFromEntity(result)
	resp.Variants = h.assetSvc.VariantURLs(result)
	httputil.OK(c, resp)
}

func (h *AssetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid asset id")
		return
	}

	var req request.DeleteAssetRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	var params storage.Params
	if req.VersionID != "" {
		params = storage.Params{"VersionId": req.VersionID}
	}

	if err := h.assetSvc.Delete(c.Request.Context(), asset.DeleteInput{ID: id, Params: params}); err != nil {
		httputil.HandleError(c, err)
		return
	}

	httputil.NoContent(c)
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
