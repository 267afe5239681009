package server

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rightsledger/rights-parser/constants"
	"github.com/rightsledger/rights-parser/gen/ent"
	"github.com/rightsledger/rights-parser/internal/common"
	"github.com/rightsledger/rights-parser/internal/repository"
)

// syncPollInterval is how often ?wait=true re-reads the job row.
const syncPollInterval = 500 * time.Millisecond

type parseResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// parse accepts a multipart agreement upload and enqueues a parse job.
// With ?wait=true the call blocks until the job reaches a terminal state
// or the sync window closes, whichever comes first.
func (s *Server) parse(c echo.Context) error {
	key := c.Get(ctxKeyAPIKey).(*ent.ApiKey)

	fh, err := c.FormFile("file")
	if err != nil {
		return handleError(c, common.NewAppError("UPLOAD_ERROR", "multipart field 'file' is required", common.ErrInvalidInput))
	}
	ext := constants.NormalizeExt(filepath.Ext(fh.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return handleError(c, common.NewAppError("UPLOAD_ERROR",
			fmt.Sprintf("unsupported file type %q", ext), common.ErrInvalidInput))
	}
	if fh.Size > constants.MaxUploadBytes {
		return handleError(c, common.NewAppError("UPLOAD_ERROR", "file exceeds upload limit", common.ErrInvalidInput))
	}

	storedPath, err := s.storeUpload(fh, ext)
	if err != nil {
		s.log.Error("http.store_upload_failed", "file_name", fh.Filename, "error", err)
		return handleError(c, common.ErrInternal)
	}

	req := repository.CreateJobRequest{
		APIKeyID: key.ID,
		FileName: fh.Filename,
		FilePath: storedPath,
		FileSize: fh.Size,
	}
	if url := strings.TrimSpace(c.FormValue("webhook_url")); url != "" {
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return handleError(c, common.NewAppError("UPLOAD_ERROR", "webhook_url must be http or https", common.ErrInvalidInput))
		}
		req.WebhookURL = &url
	}
	if uid := strings.TrimSpace(c.FormValue("user_id")); uid != "" {
		req.UserID = &uid
	}

	row, err := s.deps.Jobs.Create(c.Request().Context(), req)
	if err != nil {
		return handleError(c, common.ErrInternal)
	}
	c.Set(ctxKeyJobID, row.ID)

	if c.QueryParam("wait") == "true" {
		return s.waitForJob(c, row.ID)
	}
	return c.JSON(http.StatusAccepted, parseResponse{
		JobID:  row.ID.String(),
		Status: row.Status,
	})
}

// waitForJob polls until the job is terminal or the sync window closes.
// A timeout is not an error: the job keeps running and the caller gets
// its current state.
func (s *Server) waitForJob(c echo.Context, jobID uuid.UUID) error {
	deadline := time.Now().Add(s.cfg.SyncWaitTimeout)
	ctx := c.Request().Context()

	for {
		row, err := s.deps.Jobs.GetByID(ctx, jobID)
		if err != nil {
			return handleError(c, common.ErrInternal)
		}
		if statusIsTerminal(row.Status) {
			if row.Status == string(constants.JobStatusCompleted) {
				return s.renderResult(c, row)
			}
			return c.JSON(http.StatusUnprocessableEntity, s.viewOf(row))
		}
		if time.Now().After(deadline) {
			return c.JSON(http.StatusAccepted, parseResponse{JobID: row.ID.String(), Status: row.Status})
		}
		select {
		case <-ctx.Done():
			return c.JSON(http.StatusAccepted, parseResponse{JobID: row.ID.String(), Status: row.Status})
		case <-time.After(syncPollInterval):
		}
	}
}

// storeUpload copies the multipart file into the upload directory under a
// fresh UUID name, keeping only the vetted extension from the original.
func (s *Server) storeUpload(fh *multipart.FileHeader, ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path := filepath.Join(s.cfg.UploadDir, uuid.NewString()+"."+ext)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, constants.MaxUploadBytes+1)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("copy upload: %w", err)
	}
	return path, nil
}

func (s *Server) jobStatus(c echo.Context) error {
	key := c.Get(ctxKeyAPIKey).(*ent.ApiKey)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, common.NewAppError("BAD_ID", "job id must be a UUID", common.ErrInvalidInput))
	}
	row, err := s.deps.Jobs.GetOwned(c.Request().Context(), id, key.ID)
	if ent.IsNotFound(err) {
		return handleError(c, common.ErrNotFound)
	}
	if err != nil {
		return handleError(c, common.ErrInternal)
	}
	return c.JSON(http.StatusOK, s.viewOf(row))
}

type resultResponse struct {
	JobID         string          `json:"job_id"`
	Status        string          `json:"status"`
	Parsed        json.RawMessage `json:"parsed"`
	IpfsCid       string          `json:"ipfs_cid"`
	EncryptionKey string          `json:"encryption_key"`
	ModelUsed     string          `json:"model_used,omitempty"`
}

func (s *Server) jobResult(c echo.Context) error {
	key := c.Get(ctxKeyAPIKey).(*ent.ApiKey)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handleError(c, common.NewAppError("BAD_ID", "job id must be a UUID", common.ErrInvalidInput))
	}
	row, err := s.deps.Jobs.GetOwned(c.Request().Context(), id, key.ID)
	if ent.IsNotFound(err) {
		return handleError(c, common.ErrNotFound)
	}
	if err != nil {
		return handleError(c, common.ErrInternal)
	}
	if row.Status != string(constants.JobStatusCompleted) {
		return c.JSON(http.StatusConflict, errorBody{
			Error: fmt.Sprintf("job is %s, result available once completed", row.Status),
			Kind:  "not_ready",
		})
	}
	return s.renderResult(c, row)
}

func (s *Server) renderResult(c echo.Context, row *ent.Job) error {
	resp := resultResponse{
		JobID:  row.ID.String(),
		Status: row.Status,
		Parsed: row.ParsedJSON,
	}
	if row.IpfsCid != nil {
		resp.IpfsCid = *row.IpfsCid
	}
	if row.EncryptionKey != nil {
		resp.EncryptionKey = *row.EncryptionKey
	}
	if row.ModelUsed != nil {
		resp.ModelUsed = *row.ModelUsed
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) listJobs(c echo.Context) error {
	key := c.Get(ctxKeyAPIKey).(*ent.ApiKey)
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			return handleError(c, common.NewAppError("BAD_LIMIT", "limit must be 1..500", common.ErrInvalidInput))
		}
		limit = n
	}
	rows, err := s.deps.Jobs.ListForKey(c.Request().Context(), key.ID, limit)
	if err != nil {
		return handleError(c, common.ErrInternal)
	}
	views := make([]jobView, 0, len(rows))
	for _, row := range rows {
		views = append(views, s.viewOf(row))
	}
	return c.JSON(http.StatusOK, map[string]any{"jobs": views, "count": len(views)})
}

func (s *Server) usageExport(c echo.Context) error {
	key := c.Get(ctxKeyAPIKey).(*ent.ApiKey)

	var from, to *time.Time
	if raw := c.QueryParam("from"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return handleError(c, common.NewAppError("BAD_DATE", "from must be YYYY-MM-DD", common.ErrInvalidInput))
		}
		from = &t
	}
	if raw := c.QueryParam("to"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return handleError(c, common.NewAppError("BAD_DATE", "to must be YYYY-MM-DD", common.ErrInvalidInput))
		}
		to = &t
	}

	data, err := s.deps.Exporter.ExportUsageXLSX(c.Request().Context(), key.ID, from, to)
	if err != nil {
		return handleError(c, common.ErrInternal)
	}
	name := fmt.Sprintf("usage-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func (s *Server) viewOf(row *ent.Job) jobView {
	v := jobView{
		JobID:       row.ID.String(),
		Status:      row.Status,
		FileName:    row.FileName,
		RetryCount:  row.RetryCount,
		Error:       row.ErrorMessage,
		CreatedAt:   row.CreatedAt.UTC().Format(time.RFC3339),
		WebhookSent: row.WebhookSent,
	}
	if row.StartedAt != nil {
		t := row.StartedAt.UTC().Format(time.RFC3339)
		v.StartedAt = &t
	}
	if row.CompletedAt != nil {
		t := row.CompletedAt.UTC().Format(time.RFC3339)
		v.CompletedAt = &t
	}
	v.ProcessingTimeMs = row.ProcessingTimeMs
	return v
}
