package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
	"github.com/callpipe/callpipe/internal/config"
	"github.com/callpipe/callpipe/usecase"
)

const (
	recordTimeout   = 5
	recordMaxLength = 10
	processPath     = "/process"
)

// Handler carries the collaborators the HTTP surface needs
type Handler struct {
	pipeline   *usecase.CallPipeline
	originator repositories.CallOriginator
	cfg        config.Config
	logger     *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(
	pipeline *usecase.CallPipeline,
	originator repositories.CallOriginator,
	cfg config.Config,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		pipeline:   pipeline,
		originator: originator,
		cfg:        cfg,
		logger:     logger,
	}
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler, audioDir string) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "callpipe",
		})
	})

	e.POST("/ivr", h.InboundCall)
	e.POST(processPath, h.ProcessRecording)
	e.POST("/outbound", h.OutboundCall)

	// Synthesized replies are served read-only so the telephony
	// provider can fetch them.
	e.Static("/audio", audioDir)
}

// InboundCall answers a call-start notification with the greeting and a
// record instruction. It renders a fixed template and never fails.
func (h *Handler) InboundCall(c echo.Context) error {
	markup := greetingTwiML(h.cfg.Greeting, recordTimeout, recordMaxLength, processPath)
	return c.Blob(http.StatusOK, echo.MIMETextXML, markup)
}

// ProcessRecording runs the call pipeline for the posted recording
// reference. The remote party is a live caller, so every failure
// degrades to spoken apology markup with status 200; an HTTP error
// would leave the caller with silence.
func (h *Handler) ProcessRecording(c echo.Context) error {
	recordingURL := c.FormValue("RecordingUrl")
	if recordingURL == "" {
		h.logger.Error("Processing request missing RecordingUrl")
		return c.Blob(http.StatusOK, echo.MIMETextXML, sayTwiML("Recording URL missing."))
	}

	playURL, err := h.pipeline.Process(c.Request().Context(), recordingURL)
	if err != nil {
		var stageErr *usecase.StageError
		if errors.As(err, &stageErr) {
			h.logger.Error("Call pipeline failed",
				zap.String("stage", string(stageErr.Stage)),
				zap.Error(stageErr.Err))
		} else {
			h.logger.Error("Call pipeline failed", zap.Error(err))
		}
		return c.Blob(http.StatusOK, echo.MIMETextXML, sayTwiML(h.cfg.Apology))
	}

	return c.Blob(http.StatusOK, echo.MIMETextXML, playTwiML(playURL))
}

// OutboundCall places an outbound call. Its caller is a programmatic
// client, so errors surface as JSON with real HTTP status codes.
func (h *Handler) OutboundCall(c echo.Context) error {
	var req OutboundRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("Failed to bind outbound request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	if req.To == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing 'to' number"})
	}

	// Precondition, not a provider failure: refuse before any call.
	if !h.originator.Configured() {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Twilio credentials missing"})
	}

	answerURL := strings.TrimRight(h.cfg.PublicBaseURL, "/") + "/ivr"
	callSID, err := h.originator.Originate(c.Request().Context(), req.To, answerURL)
	if err != nil {
		h.logger.Error("Outbound call failed", zap.String("to", req.To), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	h.logger.Info("Outbound call started", zap.String("callSid", callSID))
	return c.JSON(http.StatusOK, OutboundResponse{Success: true, CallSID: callSID})
}
