package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmstead/pkg/pagestate"
	"farmstead/pkg/weather"
)

type WeatherCtrl struct{ provider weather.Provider }

func New(p weather.Provider) *WeatherCtrl { return &WeatherCtrl{p} }

// Get serves current conditions and the five-day forecast in one payload,
// fetched concurrently.
func (h *WeatherCtrl) Get(c echo.Context) error {
	var (
		cur weather.Current
		fc  []weather.ForecastDay
	)
	err := pagestate.Join(
		func() error { var e error; cur, e = h.provider.Current(); return e },
		func() error { var e error; fc, e = h.provider.Forecast(); return e },
	)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"current": cur, "forecast": fc})
}
