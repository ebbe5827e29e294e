package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/smartcloset/internal/domain/outfit"
	"github.com/yanqian/smartcloset/internal/domain/weather"
)

// CurrentWeather returns the normalized snapshot for ?lat&lon. Missing or bad
// coordinates still answer 200 with the fallback snapshot.
func (h *Handler) CurrentWeather(c *gin.Context) {
	var loc weather.LocationRequest
	if err := c.ShouldBindQuery(&loc); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat and lon must be numbers", err))
		return
	}
	reading := h.weatherSvc.Current(c.Request.Context(), loc)
	c.JSON(http.StatusOK, gin.H{
		"weather":          reading.Snapshot,
		"source":           reading.Source,
		"temperatureColor": outfit.TemperatureColor(reading.Snapshot.TemperatureF),
	})
}
