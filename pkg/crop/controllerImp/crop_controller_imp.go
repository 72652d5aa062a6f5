package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmstead/entities"
	"farmstead/pkg/crop/service"
	"farmstead/pkg/listview"
	"farmstead/pkg/store"
)

type CropCtrl struct{ svc service.CropService }

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

type cropReq struct {
	Name                string  `json:"name"`
	Variety             string  `json:"variety"`
	FarmID              int     `json:"farmId"`
	PlantingDate        string  `json:"plantingDate"`
	ExpectedHarvestDate string  `json:"expectedHarvestDate"`
	Area                float64 `json:"area"`
	Notes               string  `json:"notes"`
}

func (r cropReq) toEntity() (entities.Crop, error) {
	planted, err := entities.ParseInstant(r.PlantingDate)
	if err != nil {
		return entities.Crop{}, err
	}
	harvest, err := entities.ParseInstant(r.ExpectedHarvestDate)
	if err != nil {
		return entities.Crop{}, err
	}
	return entities.Crop{
		Name:                r.Name,
		Variety:             r.Variety,
		FarmID:              r.FarmID,
		PlantingDate:        planted,
		ExpectedHarvestDate: harvest,
		Area:                r.Area,
		Notes:               r.Notes,
	}, nil
}

func (h *CropCtrl) List(c echo.Context) error {
	crops, err := h.svc.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, listview.Crops(crops, c.QueryParam("search"), c.QueryParam("filter")))
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	crop, err := h.svc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	draft, err := req.toEntity()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date: " + err.Error()})
	}
	crop, err := h.svc.Create(draft)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, crop)
}

func (h *CropCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req cropReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	draft, err := req.toEntity()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date: " + err.Error()})
	}
	crop, err := h.svc.Update(id, draft)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ok, err := h.svc.Delete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}

func (h *CropCtrl) PatchStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil || body.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status required"})
	}
	crop, err := h.svc.UpdateStatus(id, body.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, crop)
}

func fail(c echo.Context, err error) error {
	if store.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
