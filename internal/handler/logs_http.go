package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/uddugarg/email-microservice/internal/core/port"
)

// LogsHTTPHandler exposes the email log audit trail, the only externally
// queryable view of delivery state.
type LogsHTTPHandler struct {
	logs port.EmailLogStore
}

func NewLogsHTTPHandler(logs port.EmailLogStore) *LogsHTTPHandler {
	return &LogsHTTPHandler{
		logs: logs,
	}
}

func (h *LogsHTTPHandler) GetByEvent() echo.HandlerFunc {
	return func(c echo.Context) error {
		eventID, err := uuid.Parse(c.Param("eventID"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid event id",
			})
		}

		entries, err := h.logs.GetByEventID(c.Request().Context(), eventID)
		if err != nil {
			log.WithError(err).WithField("eventID", eventID).Error("Failed to load email logs")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to load email logs",
			})
		}

		return c.JSON(http.StatusOK, entries)
	}
}

func (h *LogsHTTPHandler) ListByTenantUser() echo.HandlerFunc {
	return func(c echo.Context) error {
		tenantID, err := uuid.Parse(c.Param("tenantID"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid tenant id",
			})
		}
		userID, err := uuid.Parse(c.Param("userID"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid user id",
			})
		}

		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))

		entries, err := h.logs.ListByTenantUser(c.Request().Context(), tenantID, userID, limit, offset)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"tenantID": tenantID,
				"userID":   userID,
			}).Error("Failed to list email logs")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to list email logs",
			})
		}

		return c.JSON(http.StatusOK, entries)
	}
}
