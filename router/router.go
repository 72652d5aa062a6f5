package router

import (
	"github.com/labstack/echo/v4"

	cropCtrl "farmstead/pkg/crop/controllerImp"
	dashCtrl "farmstead/pkg/dashboard/controllerImp"
	farmCtrl "farmstead/pkg/farm/controllerImp"
	healthCtrl "farmstead/pkg/health/controllerImp"
	"farmstead/pkg/middleware"
	taskCtrl "farmstead/pkg/task/controllerImp"
	txCtrl "farmstead/pkg/transaction/controllerImp"
	weatherCtrl "farmstead/pkg/weather/controllerImp"
)

func New(
	e *echo.Echo,
	farms *farmCtrl.FarmCtrl,
	crops *cropCtrl.CropCtrl,
	tasks *taskCtrl.TaskCtrl,
	txs *txCtrl.TxCtrl,
	dash *dashCtrl.DashboardCtrl,
	wx *weatherCtrl.WeatherCtrl,
	health *healthCtrl.HealthCtrl,
) *echo.Echo {
	e.Use(middleware.Metrics())

	e.GET("/health", health.Health)
	e.GET("/metrics", middleware.MetricsHandler())
	e.GET("/dashboard", dash.Get)
	e.GET("/weather", wx.Get)

	f := e.Group("/farms")
	f.GET("", farms.List)
	f.GET("/:id", farms.Get)
	f.POST("", farms.Create)
	f.PUT("/:id", farms.Update)
	f.DELETE("/:id", farms.Delete)

	cr := e.Group("/crops")
	cr.GET("", crops.List)
	cr.GET("/:id", crops.Get)
	cr.POST("", crops.Create)
	cr.PUT("/:id", crops.Update)
	cr.DELETE("/:id", crops.Delete)
	cr.PATCH("/:id/status", crops.PatchStatus)

	t := e.Group("/tasks")
	t.GET("", tasks.List)
	t.GET("/overdue", tasks.Overdue)
	t.GET("/:id", tasks.Get)
	t.POST("", tasks.Create)
	t.PUT("/:id", tasks.Update)
	t.DELETE("/:id", tasks.Delete)
	t.PATCH("/:id/toggle", tasks.Toggle)

	x := e.Group("/transactions")
	x.GET("", txs.List)
	x.GET("/summary", txs.Summary)
	x.GET("/export", txs.Export)
	x.GET("/:id", txs.Get)
	x.POST("", txs.Create)
	x.PUT("/:id", txs.Update)
	x.DELETE("/:id", txs.Delete)

	return e
}
