package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmstead/entities"
	cropSvc "farmstead/pkg/crop/service"
	farmSvc "farmstead/pkg/farm/service"
	"farmstead/pkg/listview"
	"farmstead/pkg/pagestate"
	taskSvc "farmstead/pkg/task/service"
	txSvc "farmstead/pkg/transaction/service"
	"farmstead/pkg/weather"
)

type DashboardCtrl struct {
	farms   farmSvc.FarmService
	crops   cropSvc.CropService
	tasks   taskSvc.TaskService
	txs     txSvc.TransactionService
	weather weather.Provider
}

func New(f farmSvc.FarmService, c cropSvc.CropService, t taskSvc.TaskService, x txSvc.TransactionService, w weather.Provider) *DashboardCtrl {
	return &DashboardCtrl{farms: f, crops: c, tasks: t, txs: x, weather: w}
}

// Get fan-out loads all five lists and renders the headline stats. If any
// fetch fails the whole dashboard fails; there is no partial render.
func (h *DashboardCtrl) Get(c echo.Context) error {
	var (
		farms []entities.Farm
		crops []entities.Crop
		tasks []entities.Task
		txs   []entities.Transaction
		cur   weather.Current
	)
	err := pagestate.Join(
		func() error { var e error; farms, e = h.farms.GetAll(); return e },
		func() error { var e error; crops, e = h.crops.GetAll(); return e },
		func() error { var e error; tasks, e = h.tasks.GetAll(); return e },
		func() error { var e error; txs, e = h.txs.GetAll(); return e },
		func() error { var e error; cur, e = h.weather.Current(); return e },
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	now := time.Now()
	income := listview.SumByType(txs, entities.TxIncome)
	expense := listview.SumByType(txs, entities.TxExpense)
	return c.JSON(http.StatusOK, map[string]any{
		"farms":            len(farms),
		"activeCrops":      listview.ActiveCrops(crops),
		"readyToHarvest":   listview.CropCountsByStatus(crops)[entities.CropReady],
		"pendingTasks":     listview.PendingTasks(tasks),
		"completedTasks":   listview.CompletedTasks(tasks),
		"tasksDueToday":    listview.DueToday(tasks, now),
		"tasksDueTomorrow": listview.DueTomorrow(tasks, now),
		"income":           income,
		"expense":          expense,
		"net":              income - expense,
		"weather":          cur,
	})
}
