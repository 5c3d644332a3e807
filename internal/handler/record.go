package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"fuelapi/internal/middleware"
	"fuelapi/internal/models"
	"fuelapi/internal/service"
	"fuelapi/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RecordHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Download(c *gin.Context)
}

type recordHandler struct {
	recordService service.RecordService
	files         *storage.FileStore
	logger        *zap.Logger
}

func NewRecordHandler(recordService service.RecordService, files *storage.FileStore, logger *zap.Logger) RecordHandler {
	return &recordHandler{recordService: recordService, files: files, logger: logger}
}

type CreateRecordRequest struct {
	DispenserNo   string  `form:"dispenserNo"`
	Quantity      float64 `form:"quantity"`
	VehicleNumber string  `form:"vehicleNumber"`
	PaymentMode   string  `form:"paymentMode"`
}

func callerID(c *gin.Context) int64 {
	return c.MustGet(middleware.UserIDKey).(int64)
}

// Create handles POST /api/dispensingrecords/create (multipart form).
func (h *recordHandler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var proof *service.ProofFile
	if fh, err := c.FormFile("paymentProof"); err == nil {
		f, err := fh.Open()
		if err != nil {
			h.logger.Error("Failed to open uploaded file", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payment proof file."})
			return
		}
		defer f.Close()
		proof = &service.ProofFile{Name: fh.Filename, Size: fh.Size, Data: f}
	}

	record, err := h.recordService.Create(callerID(c), service.CreateRecordInput{
		DispenserNo:   req.DispenserNo,
		Quantity:      req.Quantity,
		VehicleNumber: req.VehicleNumber,
		PaymentMode:   req.PaymentMode,
	}, proof)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			return
		}
		h.logger.Error("Failed to create dispensing record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record."})
		return
	}

	c.JSON(http.StatusOK, record)
}

// List handles POST /api/dispensingrecords/list. An absent or empty body
// means no filter.
func (h *recordHandler) List(c *gin.Context) {
	var filter models.RecordFilter
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter."})
			return
		}
	}

	records, err := h.recordService.List(callerID(c), filter)
	if err != nil {
		h.logger.Error("Failed to list dispensing records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve records."})
		return
	}

	if records == nil {
		records = []models.DispensingRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// Download handles GET /api/dispensingrecords/download/:filename. Any
// valid session may fetch any stored file; ownership is not checked.
func (h *recordHandler) Download(c *gin.Context) {
	filename := c.Param("filename")

	f, info, err := h.files.Open(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) ||
			errors.Is(err, storage.ErrEmptyFilename) ||
			errors.Is(err, storage.ErrUnsafeName) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found."})
			return
		}
		h.logger.Error("Failed to open stored file", zap.String("filename", filename), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error downloading file."})
		return
	}
	defer f.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", filename),
	}
	c.DataFromReader(http.StatusOK, info.Size(), storage.ContentType(filename), f, extraHeaders)
}
