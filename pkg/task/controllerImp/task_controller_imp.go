package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"farmstead/entities"
	"farmstead/pkg/listview"
	"farmstead/pkg/store"
	"farmstead/pkg/task/service"
)

type TaskCtrl struct{ svc service.TaskService }

func New(svc service.TaskService) *TaskCtrl { return &TaskCtrl{svc} }

type taskReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FarmID      int    `json:"farmId"`
	CropID      *int   `json:"cropId"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

func (r taskReq) toEntity() (entities.Task, error) {
	due, err := entities.ParseInstant(r.DueDate)
	if err != nil {
		return entities.Task{}, err
	}
	return entities.Task{
		Title:       r.Title,
		Description: r.Description,
		FarmID:      r.FarmID,
		CropID:      r.CropID,
		DueDate:     due,
		Priority:    r.Priority,
		Category:    r.Category,
	}, nil
}

func (h *TaskCtrl) List(c echo.Context) error {
	tasks, err := h.svc.GetAll()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, listview.Tasks(tasks, c.QueryParam("search"), c.QueryParam("filter"), time.Now()))
}

func (h *TaskCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.svc.GetByID(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var req taskReq
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

func (h *TaskCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req taskReq
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

func (h *TaskCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	ok, err := h.svc.Delete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": ok})
}

func (h *TaskCtrl) Toggle(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	t, err := h.svc.ToggleComplete(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Overdue(c echo.Context) error {
	out, err := h.svc.Overdue()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func fail(c echo.Context, err error) error {
	if store.IsNotFound(err) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
