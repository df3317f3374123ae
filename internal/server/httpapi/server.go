// Package httpapi is the HTTP gateway next to the gRPC API: health checks,
// browser-friendly multipart uploads and signed-URL download redirects.
package httpapi

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/lifeweeks/internal/common"
	"github.com/dmitrijs2005/lifeweeks/internal/filex"
	"github.com/dmitrijs2005/lifeweeks/internal/logging"
	"github.com/dmitrijs2005/lifeweeks/internal/server/auth"
	"github.com/dmitrijs2005/lifeweeks/internal/server/models"
	"github.com/dmitrijs2005/lifeweeks/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const userIDLocal = "userID"

// multipart framing on top of the file itself
const bodyOverhead = 1 << 20

type AttachmentService interface {
	Upload(ctx context.Context, userID string, in services.Upload) (*models.Attachment, error)
	SignedURL(ctx context.Context, userID, id string, ttl time.Duration) (string, time.Time, error)
}

type Server struct {
	address     string
	logger      logging.Logger
	attachments AttachmentService
	jwtSecret   []byte
	app         *fiber.App
}

func NewServer(address string, l logging.Logger, attachments AttachmentService, secretKey string) *Server {
	s := &Server{
		address:     address,
		logger:      l.With("module", "http_server"),
		attachments: attachments,
		jwtSecret:   []byte(secretKey),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          s.errorHandler,
		BodyLimit:             int(common.MaxAttachmentSize) + bodyOverhead,
		DisableStartupMessage: true,
	})
	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/v1", s.requireToken)
	v1.Post("/events/:id/attachments", s.uploadAttachment)
	v1.Get("/attachments/:id/download", s.downloadAttachment)

	s.app = app
	return s
}

// App exposes the router, mainly for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = s.app.ShutdownWithTimeout(5 * time.Second)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
	return s.app.Listen(s.address)
}

func (s *Server) requireToken(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "missing token")
	}
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	c.Locals(userIDLocal, userID)
	return c.Next()
}

func (s *Server) uploadAttachment(c *fiber.Ctx) error {
	userID, _ := c.Locals(userIDLocal).(string)

	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart field \"file\" is required")
	}
	if fh.Size > common.MaxAttachmentSize {
		return s.domainError(c, common.ErrFileTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, common.MaxAttachmentSize+1))
	if err != nil {
		return err
	}

	mimeType := fh.Header.Get(fiber.HeaderContentType)
	if mimeType == "" || mimeType == fiber.MIMEOctetStream {
		mimeType = filex.DetectType(fh.Filename, data)
	}

	a, err := s.attachments.Upload(c.UserContext(), userID, services.Upload{
		EventID:     c.Params("id"),
		FileName:    fh.Filename,
		MimeType:    mimeType,
		Description: c.FormValue("description"),
		Data:        data,
	})
	if err != nil {
		return s.domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":           a.ID,
		"event_id":     a.EventID,
		"file_name":    a.FileName,
		"file_size":    a.FileSize,
		"file_type":    a.FileType,
		"storage_path": a.StoragePath,
		"upload_date":  a.UploadDate,
	})
}

func (s *Server) downloadAttachment(c *fiber.Ctx) error {
	userID, _ := c.Locals(userIDLocal).(string)

	var ttl time.Duration
	if raw := c.Query("ttl"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "ttl must be a positive duration")
		}
		ttl = d
	}

	url, _, err := s.attachments.SignedURL(c.UserContext(), userID, c.Params("id"), ttl)
	if err != nil {
		return s.domainError(c, err)
	}
	return c.Redirect(url, fiber.StatusFound)
}

func (s *Server) domainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound), errors.Is(err, common.ErrorNoProfile):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrFileTooLarge):
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, common.ErrFileTypeNotAllowed):
		return fiber.NewError(fiber.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrBlobStore):
		s.logger.Error(c.UserContext(), "blob store", "error", err)
		return fiber.NewError(fiber.StatusBadGateway, common.ErrBlobStore.Error())
	}
	s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
	return fiber.NewError(fiber.StatusInternalServerError, common.ErrorInternal.Error())
}

func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := common.ErrorInternal.Error()

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
