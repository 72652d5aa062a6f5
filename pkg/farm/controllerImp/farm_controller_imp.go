package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmstead/entities"
	"farmstead/pkg/farm/service"
	"farmstead/pkg/listview"
	"farmstead/pkg/store"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) *FarmCtrl { return &FarmCtrl{svc} }

type farmReq struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Size     float64 `json:"size"`
	SizeUnit string  `json:"sizeUnit"`
}

func (h *FarmCtrl) List(c echo.Context) error {
	farms, err := h.svc.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, listview.Farms(farms, c.QueryParam("search"), c.QueryParam("filter")))
}

func (h *FarmCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.svc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var req farmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.svc.Create(entities.Farm{Name: req.Name, Location: req.Location, Size: req.Size, SizeUnit: req.SizeUnit})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req farmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.svc.Update(id, entities.Farm{Name: req.Name, Location: req.Location, Size: req.Size, SizeUnit: req.SizeUnit})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ok, err := h.svc.Delete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}

func fail(c echo.Context, err error) error {
	if store.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
