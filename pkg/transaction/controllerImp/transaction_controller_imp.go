package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmstead/entities"
	"farmstead/pkg/listview"
	"farmstead/pkg/store"
	"farmstead/pkg/transaction/service"
)

type TxCtrl struct{ svc service.TransactionService }

func New(svc service.TransactionService) *TxCtrl { return &TxCtrl{svc} }

type txReq struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	FarmID      *int    `json:"farmId"`
	CropID      *int    `json:"cropId"`
}

func (r txReq) toEntity() (entities.Transaction, error) {
	date, err := entities.ParseInstant(r.Date)
	if err != nil {
		return entities.Transaction{}, err
	}
	return entities.Transaction{
		Type:        r.Type,
		Amount:      r.Amount,
		Category:    r.Category,
		Description: r.Description,
		Date:        date,
		FarmID:      r.FarmID,
		CropID:      r.CropID,
	}, nil
}

func (h *TxCtrl) List(c echo.Context) error {
	txs, err := h.svc.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, listview.Transactions(txs, c.QueryParam("search"), c.QueryParam("filter")))
}

func (h *TxCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.svc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TxCtrl) Create(c echo.Context) error {
	var req txReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	draft, err := req.toEntity()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date: " + err.Error()})
	}
	t, err := h.svc.Create(draft)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TxCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req txReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	draft, err := req.toEntity()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad date: " + err.Error()})
	}
	t, err := h.svc.Update(id, draft)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TxCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ok, err := h.svc.Delete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}

func (h *TxCtrl) Summary(c echo.Context) error {
	sum, err := h.svc.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *TxCtrl) Export(c echo.Context) error {
	b, err := h.svc.Export()
	if err != nil {
		return fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="ledger.xlsx"`)
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
}

func fail(c echo.Context, err error) error {
	if store.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
