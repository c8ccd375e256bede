package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/in"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/utils"
)

type CalendarController struct {
	useCase in.CalendarUseCase
	cfg     *config.Config
}

func NewCalendarController(useCase in.CalendarUseCase, cfg *config.Config) *CalendarController {
	return &CalendarController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *CalendarController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.requestId(), c.basicAuth())
	{
		api.GET("/calendar/:facilityType/marks", c.getMarks)
		api.GET("/calendar/:facilityType/events", c.getEvents)
		api.GET("/calendar/:facilityType/summary", c.getSummary)
		api.GET("/calendar/:facilityType/occupancy", c.getOccupancy)
	}
}

// facilityQuery собирает параметры выборки, которые уходят в PSC API как есть
func facilityQuery(ctx *gin.Context) out.FacilityQuery {
	return out.FacilityQuery{
		StartDate:  ctx.Query("startDate"),
		EndDate:    ctx.Query("endDate"),
		RoomNumber: ctx.Query("roomNumber"),
	}
}

func parseFacilityType(ctx *gin.Context) (domain.FacilityType, bool) {
	facilityType, err := domain.ParseFacilityType(ctx.Param("facilityType"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid facility type"})
		return "", false
	}
	return facilityType, true
}

func parseStatusFilter(ctx *gin.Context) (domain.StatusFilter, bool) {
	filter, err := domain.ParseStatusFilter(ctx.Query("status"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return "", false
	}
	return filter, true
}

type dayMarkResponse struct {
	Count   int    `json:"count"`
	Display string `json:"display"`
	Color   string `json:"color"`
}

func (c *CalendarController) getMarks(ctx *gin.Context) {
	facilityType, ok := parseFacilityType(ctx)
	if !ok {
		return
	}

	filter, ok := parseStatusFilter(ctx)
	if !ok {
		return
	}

	marks, err := c.useCase.GetCalendarMarks(ctx.Request.Context(), facilityType, filter, facilityQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// В хранении счетчик точный, ограничение 9+ появляется только в ответе
	response := make(map[string]dayMarkResponse, len(marks))
	for key, mark := range marks {
		response[key] = dayMarkResponse{
			Count:   mark.Count,
			Display: mark.DisplayCount(),
			Color:   mark.Color,
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"facilityType": facilityType,
		"filter":       filter,
		"marks":        response,
	})
}

func (c *CalendarController) getEvents(ctx *gin.Context) {
	facilityType, ok := parseFacilityType(ctx)
	if !ok {
		return
	}

	filter, ok := parseStatusFilter(ctx)
	if !ok {
		return
	}

	date, err := utils.ParseDate(ctx.Query("date"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	events, err := c.useCase.GetEventsOnDate(ctx.Request.Context(), facilityType, date, filter, facilityQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"facilityType": facilityType,
		"date":         utils.DateKey(utils.LocalDay(date)),
		"filter":       filter,
		"events":       events,
	})
}

func (c *CalendarController) getSummary(ctx *gin.Context) {
	facilityType, ok := parseFacilityType(ctx)
	if !ok {
		return
	}

	stats, err := c.useCase.GetStatistics(ctx.Request.Context(), facilityType, facilityQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"facilityType": facilityType,
		"statistics":   stats,
	})
}

func (c *CalendarController) getOccupancy(ctx *gin.Context) {
	facilityType, ok := parseFacilityType(ctx)
	if !ok {
		return
	}

	snapshot, err := c.useCase.GetOccupancySnapshot(ctx.Request.Context(), facilityType, facilityQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"facilityType": facilityType,
		"available":    snapshot.Available,
		"occupied":     snapshot.Occupied,
	})
}

// requestId проставляет сквозной идентификатор запроса
func (c *CalendarController) requestId() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestId := ctx.GetHeader("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
		}

		ctx.Set("requestId", requestId)
		ctx.Header("X-Request-Id", requestId)
		ctx.Next()
	}
}

func (c *CalendarController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
