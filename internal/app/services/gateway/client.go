// Package gateway is the single path from the dashboard service to the
// remote REST backend. Resource packages under it describe each operation;
// Client performs exactly one outbound call per operation and normalizes the
// outcome into an Envelope or an *exceptions.CustomError.
package gateway

import (
	"bytes"
	"context"
	"dashboard-service/internal/app/contracts"
	"dashboard-service/internal/app/models"
	"dashboard-service/internal/pkg/constvars"
	"dashboard-service/internal/pkg/dto/requests"
	"dashboard-service/internal/pkg/dto/responses"
	"dashboard-service/internal/pkg/exceptions"
	"dashboard-service/internal/pkg/utils"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "dashboard-service/gateway"

// Request describes one outbound call. At most one of JSONBody and Multipart
// is set.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	JSONBody  interface{}
	Multipart *requests.MultipartPayload
	Resource  string
	Operation string
}

type Client struct {
	BaseUrl     string
	HTTPClient  *http.Client
	Log         *zap.Logger
	Invalidator contracts.ViewInvalidator
	tracer      trace.Tracer
}

// NewClient uses a default http.Client: no retries and no client-side
// timeout beyond what the transport and the caller's context impose.
func NewClient(baseUrl string, logger *zap.Logger, invalidator contracts.ViewInvalidator) *Client {
	return &Client{
		BaseUrl:     strings.TrimRight(baseUrl, "/"),
		HTTPClient:  &http.Client{},
		Log:         logger,
		Invalidator: invalidator,
		tracer:      otel.Tracer(tracerName),
	}
}

// Do performs the call described by request on behalf of session.
func (c *Client) Do(ctx context.Context, session models.SessionContext, request *Request) (*responses.Envelope, error) {
	requestID := utils.GetRequestID(ctx)
	endpoint := c.BaseUrl + request.Path

	ctx, span := c.getTracer().Start(ctx, fmt.Sprintf("gateway.%s.%s", request.Resource, request.Operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", request.Method),
			attribute.String("url.full", endpoint),
			attribute.String("dashboard.resource", request.Resource),
			attribute.String("dashboard.request_id", requestID),
		),
	)
	defer span.End()

	envelope, err := c.do(ctx, session, request, endpoint)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, exceptions.Message(err))
		span.SetAttributes(
			attribute.String("dashboard.error_kind", string(exceptions.KindOf(err))),
			attribute.Int("http.response.status_code", exceptions.StatusCodeOf(err)),
		)

		fields := []zap.Field{
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.String(constvars.LoggingOperationKey, request.Operation),
			zap.String(constvars.LoggingMethodKey, request.Method),
			zap.String(constvars.LoggingBackendUrlKey, endpoint),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
		}
		c.Log.Error("gatewayClient.Do failed", append(fields, utils.ErrorFields(err)...)...)
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", envelope.StatusCode))
	return envelope, nil
}

func (c *Client) do(ctx context.Context, session models.SessionContext, request *Request, endpoint string) (*responses.Envelope, error) {
	body, contentType, err := encodeBody(request)
	if err != nil {
		return nil, err
	}

	if len(request.Query) > 0 {
		endpoint = endpoint + "?" + request.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, body)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err, request.Resource)
	}
	req.Header.Set("Accept", constvars.MIMEApplicationJSON)
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	if session.HasAccessToken() {
		req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, session.AccessToken))
	}
	if session.HasLocale() {
		req.Header.Set(constvars.HeaderAcceptLanguage, session.Locale)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	c.Log.Debug("gatewayClient.Do sending request",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMethodKey, request.Method),
		zap.String(constvars.LoggingBackendUrlKey, endpoint),
		zap.String(constvars.LoggingLocaleKey, session.Locale),
	)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, exceptions.ErrBackendTimeout(err, request.Resource)
		}
		return nil, exceptions.ErrSendHTTPRequest(err, request.Resource)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, exceptions.ErrBackendTimeout(err, request.Resource)
		}
		return nil, exceptions.ErrSendHTTPRequest(err, request.Resource)
	}

	c.Log.Debug("gatewayClient.Do received response",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingBackendUrlKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrBackendResponse(resp.StatusCode, utils.ExtractBackendMessage(responseBody), request.Resource)
	}

	if len(bytes.TrimSpace(responseBody)) > 0 && !gjson.ValidBytes(responseBody) {
		return nil, exceptions.ErrDecodeResponse(errors.New("response body is not valid JSON"), request.Resource)
	}

	return &responses.Envelope{
		StatusCode: resp.StatusCode,
		Body:       json.RawMessage(responseBody),
	}, nil
}

// Mutate performs a write and, only once the backend accepted it, tells the
// invalidator which views went stale. Invalidation failures are logged and
// never change the outcome of the write.
func (c *Client) Mutate(ctx context.Context, session models.SessionContext, request *Request, invalidate models.InvalidationSet) (*responses.Mutation, error) {
	envelope, err := c.Do(ctx, session, request)
	if err != nil {
		return nil, err
	}

	mutation := &responses.Mutation{
		Data:       envelope.Data(),
		Invalidate: invalidate,
	}
	if invalidate.IsEmpty() || c.Invalidator == nil {
		return mutation, nil
	}

	if err := c.Invalidator.Invalidate(ctx, invalidate); err != nil {
		c.Log.Warn("gatewayClient.Mutate failed to invalidate views",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingResourceKey, request.Resource),
			zap.Any(constvars.LoggingResourcesKey, invalidate),
			zap.Error(err),
		)
	}
	return mutation, nil
}

// getTracer never writes to c, so a Client built as a literal stays safe for
// concurrent use.
func (c *Client) getTracer() trace.Tracer {
	if c.tracer != nil {
		return c.tracer
	}
	return otel.Tracer(tracerName)
}

func encodeBody(request *Request) (io.Reader, string, error) {
	switch {
	case request.Multipart != nil:
		body, contentType, err := buildMultipartBody(request.Multipart)
		if err != nil {
			return nil, "", exceptions.ErrBuildMultipartBody(err)
		}
		return body, contentType, nil
	case request.JSONBody != nil:
		requestJSON, err := json.Marshal(request.JSONBody)
		if err != nil {
			return nil, "", exceptions.ErrCannotMarshalJSON(err)
		}
		return bytes.NewReader(requestJSON), constvars.MIMEApplicationJSON, nil
	default:
		return nil, "", nil
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// PageQuery encodes normalized pagination.
func PageQuery(page requests.PageRequest) url.Values {
	query := url.Values{}
	query.Set(constvars.QueryParamPage, strconv.Itoa(page.Page))
	query.Set(constvars.QueryParamLimit, strconv.Itoa(page.Limit))
	return query
}

// EntityPath joins an endpoint and an escaped entity id.
func EntityPath(endpoint, id string) string {
	return endpoint + "/" + url.PathEscape(id)
}
