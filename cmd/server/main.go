package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"farmstead/config"
	"farmstead/database"
	"farmstead/entities"
	"farmstead/pkg/store"
	"farmstead/pkg/weather"
	"farmstead/router"

	// Farm
	farmCtrlImp "farmstead/pkg/farm/controllerImp"
	farmSvcImp "farmstead/pkg/farm/serviceImp"

	// Crop
	cropCtrlImp "farmstead/pkg/crop/controllerImp"
	cropSvcImp "farmstead/pkg/crop/serviceImp"

	// Task
	taskCtrlImp "farmstead/pkg/task/controllerImp"
	taskSvcImp "farmstead/pkg/task/serviceImp"

	// Transaction
	txCtrlImp "farmstead/pkg/transaction/controllerImp"
	txSvcImp "farmstead/pkg/transaction/serviceImp"

	// Dashboard + Weather + Health
	dashCtrlImp "farmstead/pkg/dashboard/controllerImp"
	healthCtrlImp "farmstead/pkg/health/controllerImp"
	weatherCtrlImp "farmstead/pkg/weather/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Repositories — one backend for all four stores
	var (
		db       *gorm.DB
		farmRepo store.Repository[entities.Farm]
		cropRepo store.Repository[entities.Crop]
		taskRepo store.Repository[entities.Task]
		txRepo   store.Repository[entities.Transaction]
	)
	switch cfg.Store {
	case "sqlite":
		db = database.OpenSQLite(cfg.DBPath)
		farmRepo = store.NewGorm[entities.Farm](db, "farm")
		cropRepo = store.NewGorm[entities.Crop](db, "crop")
		taskRepo = store.NewGorm[entities.Task](db, "task")
		txRepo = store.NewGorm[entities.Transaction](db, "transaction")
	default:
		seed, err := database.LoadSeed()
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		fm := store.NewMemory[entities.Farm]("farm").WithLatency(cfg.StoreLatency)
		cm := store.NewMemory[entities.Crop]("crop").WithLatency(cfg.StoreLatency)
		tm := store.NewMemory[entities.Task]("task").WithLatency(cfg.StoreLatency)
		xm := store.NewMemory[entities.Transaction]("transaction").WithLatency(cfg.StoreLatency)
		fm.Seed(seed.Farms)
		cm.Seed(seed.Crops)
		tm.Seed(seed.Tasks)
		xm.Seed(seed.Transactions)
		farmRepo, cropRepo, taskRepo, txRepo = fm, cm, tm, xm
		log.Printf("[seed] farms=%d crops=%d tasks=%d transactions=%d",
			len(seed.Farms), len(seed.Crops), len(seed.Tasks), len(seed.Transactions))
	}

	// 3) Weather provider (mock fallback)
	var wx weather.Provider
	if cfg.WeatherURL != "" {
		wx = weather.NewScrape(cfg.WeatherURL, cfg.WeatherLocation)
	} else {
		wx = weather.NewMock()
	}

	// 4) Services
	farmSvc := farmSvcImp.New(farmRepo)
	cropSvc := cropSvcImp.New(cropRepo)
	taskSvc := taskSvcImp.New(taskRepo)
	txSvc := txSvcImp.New(txRepo)

	// 5) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(
		e,
		farmCtrlImp.New(farmSvc),
		cropCtrlImp.New(cropSvc),
		taskCtrlImp.New(taskSvc),
		txCtrlImp.New(txSvc),
		dashCtrlImp.New(farmSvc, cropSvc, taskSvc, txSvc, wx),
		weatherCtrlImp.New(wx),
		healthCtrlImp.NewHealthCtrl(db),
	)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
