package collaborator

import (
	"bytes"
	"context"
	"directory-service/internal/app/config"
	"directory-service/internal/app/contracts"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"directory-service/internal/pkg/dto/requests"
	"directory-service/internal/pkg/dto/responses"
	"directory-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the records backend. It serves both the directory reads
// and the submissions.
type Client interface {
	contracts.DirectorySource
	contracts.SubmissionClient
}

type collaboratorClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

func NewCollaboratorClient(cfg config.AppCollaborator, logger *zap.Logger) Client {
	limit := rate.Inf
	if cfg.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(cfg.MaxRequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &collaboratorClient{
		BaseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
	}
}

func (c *collaboratorClient) FindDoctors(ctx context.Context, session *models.Session) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := c.get(ctx, session, constvars.CollaboratorPathSearchDoctors, &doctors)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (c *collaboratorClient) FindHospitals(ctx context.Context, session *models.Session) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := c.get(ctx, session, constvars.CollaboratorPathSearchHospitals, &hospitals)
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (c *collaboratorClient) SendInquiry(ctx context.Context, session *models.Session, request *requests.Inquiry) (*responses.CollaboratorResult, error) {
	return c.post(ctx, session, constvars.CollaboratorPathSendInquiry, request)
}

func (c *collaboratorClient) CreateAppointment(ctx context.Context, session *models.Session, request *requests.Appointment) (*responses.CollaboratorResult, error) {
	return c.post(ctx, session, constvars.CollaboratorPathAppointments, request)
}

func (c *collaboratorClient) get(ctx context.Context, session *models.Session, path string, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + path
	c.Log.Info("collaboratorClient.get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, url),
	)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	setBearer(req, session)

	resp, err := c.do(ctx, req, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		upstreamErr := &exceptions.UpstreamError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(bodyBytes),
		}
		c.Log.Error("collaboratorClient.get non-success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		return exceptions.ErrCollaboratorStatus(upstreamErr)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return exceptions.ErrDecodeCollaboratorResponse(err, path)
	}
	return nil
}

func (c *collaboratorClient) post(ctx context.Context, session *models.Session, path string, payload interface{}) (*responses.CollaboratorResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	url := c.BaseUrl + path
	c.Log.Info("collaboratorClient.post called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, url),
	)

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	setBearer(req, session)

	resp, err := c.do(ctx, req, path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeCollaboratorResponse(err, path)
	}

	result := new(responses.CollaboratorResult)
	decodeErr := json.Unmarshal(bodyBytes, result)

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		c.Log.Error("collaboratorClient.post non-success status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode),
		)
		// The backend answers failures with the same envelope; keep its message when it does.
		if decodeErr == nil {
			result.Success = false
			return result, nil
		}
		return nil, exceptions.ErrCollaboratorStatus(&exceptions.UpstreamError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(bodyBytes),
		})
	}

	if decodeErr != nil {
		return nil, exceptions.ErrDecodeCollaboratorResponse(decodeErr, path)
	}
	return result, nil
}

func (c *collaboratorClient) do(ctx context.Context, req *http.Request, path string) (*http.Response, error) {
	err := c.Limiter.Wait(ctx)
	if err != nil {
		return nil, exceptions.ErrCollaboratorUnreachable(err, path)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrCollaboratorUnreachable(err, path)
	}
	return resp, nil
}

func setBearer(req *http.Request, session *models.Session) {
	if session != nil && session.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+session.Token)
	}
}

func upstreamMessage(body []byte) string {
	var envelope responses.CollaboratorResult
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(body))
}
