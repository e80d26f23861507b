package controller

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tsingjyujing/polyglot/boundary"
	"github.com/tsingjyujing/polyglot/config"
	"github.com/tsingjyujing/polyglot/text"
	"github.com/tsingjyujing/polyglot/utils"
)

const (
	MessageWrongContentType = "Content-Type must be set to application/json"
	MessageInvalidJSON      = "Unable to parse request - invalid JSON detected"
	MessageMissingText      = "Missing text key"
	MessageNotFound         = "Not found"
)

var logger = utils.Logger

// Usage describes the service, served on GET /
type Usage struct {
	Result UsageResult `json:"result"`
}

type UsageResult struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	In          map[string]UsageField `json:"in"`
	Out         map[string]UsageField `json:"out"`
}

type UsageField struct {
	Type string `json:"type"`
}

var usage = Usage{
	Result: UsageResult{
		ID:          "language-detector",
		Name:        "language-detector",
		Description: "Determine language code from text",
		In: map[string]UsageField{
			"text": {Type: "string"},
		},
		Out: map[string]UsageField{
			"iso6391code": {Type: "string"},
			"name":        {Type: "string"},
			"reliable":    {Type: "boolean"},
		},
	},
}

// DetectRequestItem keeps members raw so a non-string text only affects its own item
type DetectRequestItem map[string]json.RawMessage

// Text returns the text member, "" when it is not a string.
// ok is false when the member is missing.
func (item DetectRequestItem) Text() (string, bool) {
	raw, ok := item["text"]
	if !ok {
		return "", false
	}
	var s string
	_ = json.Unmarshal(raw, &s)
	return s, true
}

type DetectRequest struct {
	Request []DetectRequestItem `json:"request"`
}

type DetectResponseItem struct {
	Code     string `json:"iso6391code,omitempty"`
	Name     string `json:"name,omitempty"`
	Reliable *bool  `json:"reliable,omitempty"`
	Error    string `json:"error,omitempty"`
}

type DetectResponse struct {
	Response []DetectResponseItem `json:"response"`
}

type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Controller struct {
	detector   *boundary.Detector
	normalizer text.Normalizer
	bodyLimit  int64
	throughput *throughputLogger
}

func NewController(detector *boundary.Detector, limits config.Limits) *Controller {
	return &Controller{
		detector:   detector,
		normalizer: text.NewSocialNormalizer(),
		bodyLimit:  limits.BodyBytes,
		throughput: newThroughputLogger(limits.LogEvery),
	}
}

// Usage sends the usage information response
func (c *Controller) Usage(echoCtx *echo.Context) error {
	return echoCtx.JSON(http.StatusOK, usage)
}

// ListLanguages lists every code the detector can answer with
func (c *Controller) ListLanguages(echoCtx *echo.Context) error {
	languages := lo.Map(text.SupportedCodes(), func(code text.LanguageCode, _ int) LanguageInfo {
		return LanguageInfo{Code: string(code), Name: text.LanguageName(code)}
	})
	return echoCtx.JSON(http.StatusOK, languages)
}

// Detect classifies a batch of texts
func (c *Controller) Detect(echoCtx *echo.Context) error {
	request := echoCtx.Request()
	mediaType, _, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		invalidRequestsCounter.Inc()
		logger.WithField("content_type", request.Header.Get("Content-Type")).
			Warn("Client request did not set Content-Type header to application/json")
		return c.sendError(echoCtx, MessageWrongContentType, http.StatusBadRequest)
	}

	// bodies past the limit are cut, which normally makes them invalid JSON
	if c.bodyLimit > 0 {
		request.Body = io.NopCloser(io.LimitReader(request.Body, c.bodyLimit))
	}

	var payload DetectRequest
	if err := echoCtx.Bind(&payload); err != nil || payload.Request == nil {
		invalidRequestsCounter.Inc()
		logger.WithError(err).Warn("Client request was invalid JSON")
		return c.sendError(echoCtx, MessageInvalidJSON, http.StatusBadRequest)
	}

	status := http.StatusOK
	response := DetectResponse{Response: make([]DetectResponseItem, 0, len(payload.Request))}
	for _, item := range payload.Request {
		itemText, ok := item.Text()
		if !ok {
			objectsProcessedCounter.WithLabelValues(statusUnsuccessful).Inc()
			response.Response = append(response.Response, DetectResponseItem{Error: MessageMissingText})
			status = http.StatusBadRequest
			continue
		}

		result := c.detector.DetectString(c.normalizer.Normalize(itemText))
		name := text.LanguageName(result.Code)
		if result.Code == text.Undetermined {
			logger.WithField("code", result.Code).Debug("no language determined")
			if status == http.StatusOK {
				status = http.StatusNonAuthoritativeInfo
			}
		}
		response.Response = append(response.Response, DetectResponseItem{
			Code:     string(result.Code),
			Name:     name,
			Reliable: lo.ToPtr(result.Reliable),
		})

		detectedLanguageCounter.WithLabelValues(string(result.Code)).Inc()
		objectsProcessedCounter.WithLabelValues(statusSuccessful).Inc()
		c.throughput.processed()
	}

	return utils.EchoJsonResponse(echoCtx, response, status)
}

func (c *Controller) sendError(echoCtx *echo.Context, message string, status int) error {
	errorsCounter.Inc()
	objectsProcessedCounter.WithLabelValues(statusUnsuccessful).Inc()
	return utils.EchoErrorResponse(echoCtx, message, status)
}

// throughputLogger logs the processing rate every `every` objects
type throughputLogger struct {
	mu    sync.Mutex
	every int
	count int
	start time.Time
}

func newThroughputLogger(every int) *throughputLogger {
	return &throughputLogger{every: every, start: time.Now()}
}

func (t *throughputLogger) processed() {
	if t.every <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count++
	if t.count < t.every {
		return
	}
	took := time.Since(t.start)
	logger.WithFields(logrus.Fields{
		"took":       took.String(),
		"throughput": float64(t.count) / took.Seconds(),
	}).Infof("Processed %d objects", t.count)
	t.count = 0
	t.start = time.Now()
}
