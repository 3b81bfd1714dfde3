package server

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"invoice-extractor/constants"
	"invoice-extractor/internal/common"
	"invoice-extractor/internal/export"
	"invoice-extractor/internal/extract"
	"invoice-extractor/internal/llm"
)

// extractResponse is the JSON body for a multi-format extraction. The
// artifact data is base64 in transit (encoding/json []byte behavior).
type extractResponse struct {
	Result       any               `json:"result"`
	Artifacts    []export.Artifact `json:"artifacts"`
	ExportErrors []string          `json:"export_errors,omitempty"`
}

// handleExtract accepts a multipart upload: "image" file, "mode"
// (auto|question), "question", repeated "formats" values, and an
// optional "download" flag that streams a single artifact directly.
func (s *Server) handleExtract(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		s.abortWithError(c, common.EmptyInputError("an invoice image upload is required"))
		return
	}
	if fileHeader.Size > s.maxUploadBytes {
		s.abortWithError(c, common.NewAppError("UPLOAD_TOO_LARGE",
			fmt.Sprintf("image exceeds %d bytes", s.maxUploadBytes), common.ErrInvalidInput))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		s.abortWithError(c, common.WrapError(err, "open upload"))
		return
	}
	defer func() { _ = f.Close() }()
	image, err := io.ReadAll(f)
	if err != nil {
		s.abortWithError(c, common.WrapError(err, "read upload"))
		return
	}

	mode, err := llm.ParseMode(c.PostForm("mode"))
	if err != nil {
		s.abortWithError(c, common.NewAppError("BAD_MODE", err.Error(), common.ErrInvalidInput))
		return
	}

	formats, err := parseFormats(c.PostFormArray("formats"))
	if err != nil {
		s.abortWithError(c, common.NewAppError("BAD_FORMAT", err.Error(), common.ErrInvalidInput))
		return
	}

	res, err := s.svc.Process(c.Request.Context(), extract.Request{
		Image:    image,
		MIMEType: constants.MIMEForExt(filepath.Ext(fileHeader.Filename)),
		Mode:     mode,
		Question: c.PostForm("question"),
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	artifacts, exportErrs := s.renderer.Render(res, formats, time.Now())

	if c.PostForm("download") == "true" && len(formats) == 1 {
		if len(artifacts) != 1 {
			s.abortWithError(c, exportErrs[0])
			return
		}
		a := artifacts[0]
		c.Header("Content-Disposition", `attachment; filename="`+a.Filename+`"`)
		c.Data(http.StatusOK, a.ContentType, a.Data)
		return
	}

	resp := extractResponse{Result: res, Artifacts: artifacts}
	for _, e := range exportErrs {
		resp.ExportErrors = append(resp.ExportErrors, e.Error())
	}
	c.JSON(http.StatusOK, resp)
}

// parseFormats normalizes the requested export formats, accepting both
// repeated values and comma-separated lists. Empty means TXT only.
func parseFormats(values []string) ([]export.Format, error) {
	var formats []export.Format
	seen := map[export.Format]struct{}{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := export.ParseFormat(part)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			formats = append(formats, f)
		}
	}
	if len(formats) == 0 {
		formats = []export.Format{export.FormatTXT}
	}
	return formats, nil
}

func (s *Server) abortWithError(c *gin.Context, err error) {
	status := common.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("http.extract.failed", "status", status, "error", err)
	} else {
		s.logger.Warn("http.extract.rejected", "status", status, "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
