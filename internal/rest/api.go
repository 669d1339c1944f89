package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/faizandev1/image-resizer-compressor-pro/processing/application"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Image Resizer & Compressor"

// NewApi registers the processing API. Static assets must be mounted by the
// caller after this so they can never shadow the /api routes.
func NewApi(router *gin.Engine, processor *application.Processor, batch *application.BatchProcessor) {
	h := &handlers{processor: processor, batch: batch}

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.POST("/process", h.ProcessSingle)
		apiGroup.POST("/process-zip", h.ProcessZip)
	}
}

type handlers struct {
	processor *application.Processor
	batch     *application.BatchProcessor
}
