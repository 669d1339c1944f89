package rest

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/faizandev1/image-resizer-compressor-pro/api"
	"github.com/faizandev1/image-resizer-compressor-pro/processing/application"
	"github.com/faizandev1/image-resizer-compressor-pro/processing/domain"
)

func (h *handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{OK: true, Name: ServiceName})
}

// ProcessSingle resizes and re-encodes one uploaded image and returns the
// encoded bytes directly. Any failure aborts the whole request.
func (h *handlers) ProcessSingle(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, fmt.Errorf("file is required: %w", domain.ErrInvalidInput))
		return
	}
	data, err := readUpload(fh)
	if err != nil {
		abortWithError(c, err)
		return
	}

	res, err := h.processor.Process(data, application.ProcessOptions{
		Dims:    opts.dims,
		Quality: opts.quality,
		Format:  opts.format,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	base, _ := domain.SplitNameExt(domain.SanitizeFilename(fh.Filename))
	outName := base + opts.format.Ext()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outName))
	c.Header("X-Original-Bytes", strconv.Itoa(len(data)))
	c.Header("X-Processed-Bytes", strconv.Itoa(len(res.Bytes)))
	c.Header("X-Output-Width", strconv.Itoa(res.Width))
	c.Header("X-Output-Height", strconv.Itoa(res.Height))
	c.Data(http.StatusOK, opts.format.MIME(), res.Bytes)
}

// ProcessZip runs the batch pipeline over every uploaded file and returns a
// ZIP archive. Per-file decode failures skip that file only.
func (h *handlers) ProcessZip(c *gin.Context) {
	opts, err := parseOptions(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		abortWithError(c, fmt.Errorf("invalid multipart form: %w", domain.ErrInvalidInput))
		return
	}
	uploads := form.File["files"]
	if len(uploads) == 0 {
		abortWithError(c, fmt.Errorf("no files uploaded: %w", domain.ErrInvalidInput))
		return
	}

	files := make([]application.BatchFile, 0, len(uploads))
	for _, fh := range uploads {
		data, err := readUpload(fh)
		if err != nil {
			abortWithError(c, err)
			return
		}
		files = append(files, application.BatchFile{Name: fh.Filename, Data: data})
	}

	archive, processed, err := h.batch.ProcessAll(files, application.BatchOptions{
		Dims:    opts.dims,
		Preset:  domain.ParsePreset(c.PostForm("preset")),
		Quality: opts.quality,
		Format:  opts.format,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	log.Info().Int("files", len(files)).Int("processed", processed).Msg("Batch complete")
	c.Header("Content-Disposition", `attachment; filename="processed_images.zip"`)
	c.Data(http.StatusOK, "application/zip", archive)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// abortWithError maps input errors to 400 and everything else to 500.
func abortWithError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
}
