package videos

import (
	"errors"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/editor-api/api/types"
	videosService "github.com/killallgit/editor-api/internal/services/videos"
	apperrors "github.com/killallgit/editor-api/pkg/errors"
)

// UploadVideo stores an uploaded video file
// @Summary Upload a video
// @Description Upload a video as multipart form field "file". Only video media types are accepted.
// @Description Duration and dimensions are probed when ffprobe is available.
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Video file"
// @Success 201 {object} types.VideoResponse "Video stored"
// @Failure 400 {object} types.ErrorResponse "Missing file or not a video"
// @Failure 413 {object} types.ErrorResponse "File too large"
// @Failure 500 {object} types.ErrorResponse "Internal server error"
// @Router /api/v1/videos [post]
func UploadVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile("file")
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				types.SendAppError(c, apperrors.New(apperrors.ErrCodeTooLarge, "upload exceeds the maximum size"))
				return
			}
			types.SendAppError(c, apperrors.MissingFieldError("file"))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = contentTypeFor(header.Filename, contentType)
		}

		file, err := header.Open()
		if err != nil {
			types.SendInternalError(c, "Failed to read upload")
			return
		}
		defer file.Close()

		video, err := deps.VideoService.Upload(c.Request.Context(), videosService.UploadInput{
			Name:        filepath.Base(header.Filename),
			ContentType: contentType,
			Data:        file,
		})
		if err != nil {
			sendVideoError(c, err, "")
			return
		}

		types.SendCreated(c, types.VideoResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Video uploaded"},
			Video:        types.FromVideo(video),
		})
	}
}

// ListVideos lists stored videos, newest first
// @Summary List videos
// @Tags videos
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} types.VideosResponse
// @Router /api/v1/videos [get]
func ListVideos(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if page < 1 {
			page = 1
		}
		if limit < 1 || limit > 100 {
			limit = 20
		}

		list, total, err := deps.VideoService.List(c.Request.Context(), page, limit)
		if err != nil {
			types.SendInternalError(c, err.Error())
			return
		}

		out := make([]types.Video, 0, len(list))
		for i := range list {
			out = append(out, *types.FromVideo(&list[i]))
		}
		types.SendSuccess(c, types.VideosResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Videos:       out,
			Count:        len(out),
			Total:        total,
			Page:         page,
		})
	}
}

// GetVideo returns one video
// @Summary Get a video
// @Tags videos
// @Produce json
// @Param uuid path string true "Video UUID"
// @Success 200 {object} types.VideoResponse
// @Failure 404 {object} types.ErrorResponse "Video not found"
// @Router /api/v1/videos/{uuid} [get]
func GetVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("uuid")
		video, err := deps.VideoService.Get(c.Request.Context(), id)
		if err != nil {
			sendVideoError(c, err, id)
			return
		}
		types.SendSuccess(c, types.VideoResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Video:        types.FromVideo(video),
		})
	}
}

// StreamVideo serves the video file with HTTP range support
// @Summary Stream a video
// @Description Serves the stored file. Range requests are supported so players can seek.
// @Tags videos
// @Produce video/mp4
// @Param uuid path string true "Video UUID"
// @Success 200 {file} binary
// @Success 206 {file} binary
// @Failure 404 {object} types.ErrorResponse "Video not found"
// @Router /api/v1/videos/{uuid}/stream [get]
func StreamVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("uuid")
		video, file, err := deps.VideoService.Open(c.Request.Context(), id)
		if err != nil {
			sendVideoError(c, err, id)
			return
		}
		defer file.Close()

		c.Header("Content-Type", video.ContentType)
		c.Header("Cache-Control", "private, max-age=3600")
		http.ServeContent(c.Writer, c.Request, video.Name, video.UpdatedAt, file)
	}
}

// GetThumbnail returns the frame at 0.1s as a JPEG data URI
// @Summary Get a video thumbnail
// @Tags videos
// @Produce json
// @Param uuid path string true "Video UUID"
// @Success 200 {object} types.ThumbnailResponse
// @Failure 404 {object} types.ErrorResponse "Video not found"
// @Failure 503 {object} types.ErrorResponse "Thumbnail extraction unavailable"
// @Router /api/v1/videos/{uuid}/thumbnail [get]
func GetThumbnail(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("uuid")
		uri, err := deps.VideoService.Thumbnail(c.Request.Context(), id)
		if err != nil {
			sendVideoError(c, err, id)
			return
		}
		types.SendSuccess(c, types.ThumbnailResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			VideoID:      id,
			Thumbnail:    uri,
		})
	}
}

// DeleteVideo removes a video and its file
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Param uuid path string true "Video UUID"
// @Success 200 {object} types.BaseResponse
// @Failure 404 {object} types.ErrorResponse "Video not found"
// @Router /api/v1/videos/{uuid} [delete]
func DeleteVideo(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("uuid")
		if err := deps.VideoService.Delete(c.Request.Context(), id); err != nil {
			sendVideoError(c, err, id)
			return
		}
		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "Video deleted"})
	}
}

// Extensions recognized when an upload arrives without a usable media type
var videoExtensions = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/x-m4v",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".ogv":  "video/ogg",
}

func contentTypeFor(filename, fallback string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if t, ok := videoExtensions[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return fallback
}

func sendVideoError(c *gin.Context, err error, id string) {
	switch {
	case errors.Is(err, videosService.ErrVideoNotFound):
		types.SendAppError(c, apperrors.NotFound("video", id))
	case errors.Is(err, videosService.ErrNotAVideo):
		types.SendAppError(c, apperrors.InvalidInput("content_type", "file must be a video"))
	case errors.Is(err, videosService.ErrTooLarge):
		types.SendAppError(c, apperrors.New(apperrors.ErrCodeTooLarge, "upload exceeds the maximum size"))
	case errors.Is(err, videosService.ErrThumbnailsUnavailable):
		types.SendAppError(c, apperrors.New(apperrors.ErrCodeServiceDown, "thumbnail extraction is not available"))
	default:
		types.SendInternalError(c, err.Error())
	}
}
