package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-gin-event-portal/internal/model"
	apperrors "go-gin-event-portal/pkg/app_errors"
	"go-gin-event-portal/pkg/logger"

	"go.uber.org/zap"
)

// EventRepository is the event service contract. Calls are not retried or cached.
type EventRepository interface {
	ListEvents(ctx context.Context, page, pageSize int) (model.Page[model.Event], error)
	ListFilteredEvents(ctx context.Context, page, pageSize int, criteria model.FilterCriteria) (model.Page[model.Event], error)
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	CreateEvent(ctx context.Context, payload model.EventPayload) (string, error)
	UpdateEvent(ctx context.Context, id string, payload model.EventPayload) (string, error)
	DeleteEvent(ctx context.Context, id string) error
	UploadEventImage(ctx context.Context, id string, image model.ImageFile) (string, error)
	ListEventTypes(ctx context.Context) ([]model.EventType, error)
	ListRegistrationsForEvent(ctx context.Context, id string) ([]model.Registration, error)
	ListMyRegistrations(ctx context.Context) ([]model.Registration, error)
	Register(ctx context.Context, reg model.NewRegistration) (model.RegistrationReceipt, error)
	CancelRegistration(ctx context.Context, id string) error
}

// Credentials yields the bearer token of the current session, if there is one.
type Credentials interface {
	AccessToken(ctx context.Context) (string, bool)
}

type Option func(*EventRepositoryImpl)

func WithHTTPClient(c *http.Client) Option {
	return func(r *EventRepositoryImpl) { r.client = c }
}

func WithCredentials(c Credentials) Option {
	return func(r *EventRepositoryImpl) { r.credentials = c }
}

type EventRepositoryImpl struct {
	baseURL     string
	client      *http.Client
	credentials Credentials
	log         *zap.Logger
}

func NewEventRepository(baseURL string, timeout time.Duration, opts ...Option) EventRepository {
	r := &EventRepositoryImpl{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     logger.WithComponent("remote"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type createEventRequest struct {
	NewEventDto model.EventPayload `json:"newEventDto"`
}

type updateEventRequest struct {
	UpdateEventDto model.EventPayload `json:"updateEventDto"`
}

type newRegistrationRequest struct {
	NewRegistrationDto model.NewRegistration `json:"newRegistrationDto"`
}

// idResponse accepts both {"id": ...} and {"data": {"id": ...}}.
type idResponse struct {
	ID   flexString `json:"id"`
	Data *struct {
		ID flexString `json:"id"`
	} `json:"data"`
}

func (r idResponse) id() string {
	if r.ID != "" {
		return string(r.ID)
	}
	if r.Data != nil {
		return string(r.Data.ID)
	}
	return ""
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type eventTypesResponse struct {
	Value []model.EventType `json:"value"`
}

type errorBody struct {
	Message string          `json:"message"`
	Title   string          `json:"title"`
	Errors  json.RawMessage `json:"errors"`
}

func (r *EventRepositoryImpl) ListEvents(ctx context.Context, page, pageSize int) (model.Page[model.Event], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out model.Page[model.Event]
	err := r.doJSON(ctx, http.MethodGet, "/events", q, nil, &out)
	return out, err
}

func (r *EventRepositoryImpl) ListFilteredEvents(ctx context.Context, page, pageSize int, criteria model.FilterCriteria) (model.Page[model.Event], error) {
	q := url.Values{}
	setIf := func(k, v string) {
		v = strings.TrimSpace(v)
		if v != "" && !strings.EqualFold(v, "all") {
			q.Set(k, v)
		}
	}
	setIf("search", criteria.SearchTerm)
	setIf("type", criteria.Type)
	setIf("dateFrom", criteria.DateFrom)
	setIf("dateTo", criteria.DateTo)
	setIf("location", criteria.Location)
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out model.Page[model.Event]
	err := r.doJSON(ctx, http.MethodGet, "/events", q, nil, &out)
	return out, err
}

func (r *EventRepositoryImpl) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	if err := r.doJSON(ctx, http.MethodGet, "/events/"+url.PathEscape(id), nil, nil, &event); err != nil {
		if apperrors.StatusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrEventNotFound, err)
		}
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) CreateEvent(ctx context.Context, payload model.EventPayload) (string, error) {
	var out idResponse
	if err := r.doJSON(ctx, http.MethodPost, "/events", nil, createEventRequest{NewEventDto: payload}, &out); err != nil {
		return "", err
	}
	return out.id(), nil
}

func (r *EventRepositoryImpl) UpdateEvent(ctx context.Context, id string, payload model.EventPayload) (string, error) {
	var out idResponse
	if err := r.doJSON(ctx, http.MethodPut, "/events/"+url.PathEscape(id), nil, updateEventRequest{UpdateEventDto: payload}, &out); err != nil {
		return "", err
	}
	return out.id(), nil
}

func (r *EventRepositoryImpl) DeleteEvent(ctx context.Context, id string) error {
	return r.doJSON(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, nil, nil)
}

func (r *EventRepositoryImpl) UploadEventImage(ctx context.Context, id string, image model.ImageFile) (string, error) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)

	name := filepath.Base(image.Name)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, image.Content); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := r.newRequest(ctx, http.MethodPost, "/events/"+url.PathEscape(id)+"/upload-image", nil, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out imageResponse
	if err := r.do(req, &out); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

func (r *EventRepositoryImpl) ListEventTypes(ctx context.Context) ([]model.EventType, error) {
	var out eventTypesResponse
	if err := r.doJSON(ctx, http.MethodGet, "/events/event-types", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (r *EventRepositoryImpl) ListRegistrationsForEvent(ctx context.Context, id string) ([]model.Registration, error) {
	out := make([]model.Registration, 0)
	err := r.doJSON(ctx, http.MethodGet, "/events/"+url.PathEscape(id)+"/registrations", nil, nil, &out)
	return out, err
}

func (r *EventRepositoryImpl) ListMyRegistrations(ctx context.Context) ([]model.Registration, error) {
	out := make([]model.Registration, 0)
	err := r.doJSON(ctx, http.MethodGet, "/registrations/user", nil, nil, &out)
	return out, err
}

func (r *EventRepositoryImpl) Register(ctx context.Context, reg model.NewRegistration) (model.RegistrationReceipt, error) {
	var out struct {
		ID      flexString `json:"id"`
		EventID flexString `json:"eventId"`
		Data    *struct {
			ID      flexString `json:"id"`
			EventID flexString `json:"eventId"`
		} `json:"data"`
	}
	if err := r.doJSON(ctx, http.MethodPost, "/registrations", nil, newRegistrationRequest{NewRegistrationDto: reg}, &out); err != nil {
		return model.RegistrationReceipt{}, err
	}
	receipt := model.RegistrationReceipt{ID: string(out.ID), EventID: string(out.EventID)}
	if receipt.EventID == "" && out.Data != nil {
		receipt = model.RegistrationReceipt{ID: string(out.Data.ID), EventID: string(out.Data.EventID)}
	}
	return receipt, nil
}

func (r *EventRepositoryImpl) CancelRegistration(ctx context.Context, id string) error {
	return r.doJSON(ctx, http.MethodDelete, "/registrations/"+url.PathEscape(id), nil, nil, nil)
}

func (r *EventRepositoryImpl) doJSON(ctx context.Context, method, path string, q url.Values, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := r.newRequest(ctx, method, path, q, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return r.do(req, out)
}

func (r *EventRepositoryImpl) newRequest(ctx context.Context, method, path string, q url.Values, body io.Reader) (*http.Request, error) {
	u := r.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	// The token is attached whenever one is available; its absence is left to the service.
	if r.credentials != nil {
		if token, ok := r.credentials.AccessToken(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (r *EventRepositoryImpl) do(req *http.Request, out interface{}) error {
	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	r.log.Debug("request done",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	remoteErr := &apperrors.RemoteError{StatusCode: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body errorBody
	if err := json.Unmarshal(data, &body); err != nil {
		remoteErr.Message = strings.TrimSpace(string(data))
		return remoteErr
	}
	remoteErr.Message = body.Message
	if remoteErr.Message == "" {
		remoteErr.Message = body.Title
	}
	remoteErr.Errors = flattenErrors(body.Errors)
	return remoteErr
}

// flattenErrors reads "errors" as either a list of strings or a field → messages map.
func flattenErrors(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var byField map[string][]string
	if err := json.Unmarshal(raw, &byField); err == nil {
		fields := make([]string, 0, len(byField))
		for f := range byField {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		var out []string
		for _, f := range fields {
			out = append(out, byField[f]...)
		}
		return out
	}
	return nil
}

// flexString decodes JSON strings and numbers alike.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}
