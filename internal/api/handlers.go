package api

import (
	"net/http"
	"strconv"
	"sync/atomic"

	"babynames/internal/chart"
	"babynames/internal/engine"
	"babynames/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type Handler struct {
	session atomic.Pointer[engine.Session]
}

// NewHandler returns a handler serving s. A nil session is allowed; every
// query then answers 503 until SetSession is called.
func NewHandler(s *engine.Session) *Handler {
	h := &Handler{}
	h.session.Store(s)
	return h
}

// SetSession swaps in a freshly loaded session.
func (h *Handler) SetSession(s *engine.Session) {
	h.session.Store(s)
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/status", h.GetStatus)
	api.GET("/names", h.SearchNames)
	api.GET("/names/:name", h.GetName)
	api.GET("/names/:name/trend", h.GetTrend)
	api.GET("/years/:year/top", h.GetTopTen)
}

// --- HANDLERS ---
func getPaginationParams(c echo.Context, defaultLimit int) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// httpError maps engine errors onto status codes.
func httpError(err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, engine.ErrEmptyDataset):
		status = http.StatusServiceUnavailable
	case errors.Is(err, engine.ErrNameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, engine.ErrYearOutOfRange), errors.Is(err, engine.ErrInvalidPattern):
		status = http.StatusBadRequest
	}
	return echo.NewHTTPError(status, err.Error())
}

func (h *Handler) GetStatus(c echo.Context) error {
	s := h.session.Load()
	if s.Empty() {
		return c.JSON(http.StatusOK, map[string]interface{}{"loaded": false})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"loaded":     true,
		"names":      s.Names.Len(),
		"years":      s.TopTen.Len(),
		"first_year": engine.FirstYear,
		"last_year":  s.MaxYear,
	})
}

// exact search
func (h *Handler) GetName(c echo.Context) error {
	s := h.session.Load()
	if s.Empty() {
		return httpError(engine.ErrEmptyDataset)
	}
	res, err := engine.ExactSearch(s.Names, s.MaxYear, c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// wildcard search, paginated
func (h *Handler) SearchNames(c echo.Context) error {
	s := h.session.Load()
	if s.Empty() {
		return httpError(engine.ErrEmptyDataset)
	}
	matches, err := engine.WildcardSearch(s.Names, c.QueryParam("pattern"))
	if err != nil {
		return httpError(err)
	}

	total := len(matches)
	limit, offset := getPaginationParams(c, total)
	if offset >= total {
		matches = []models.NameTrend{}
	} else {
		// Compare against what is left so a huge limit cannot overflow.
		if limit > total-offset {
			limit = total - offset
		}
		matches = matches[offset : offset+limit]
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":   matches,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) GetTopTen(c echo.Context) error {
	s := h.session.Load()
	if s.Empty() {
		return httpError(engine.ErrEmptyDataset)
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return httpError(errors.Wrapf(engine.ErrYearOutOfRange, "%q is not a year", c.Param("year")))
	}
	list, err := engine.TopTen(s.TopTen, s.MaxYear, year)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, list)
}

// trend series for charting over [from, to], which must lie within the
// loaded years (default: all of them)
func (h *Handler) GetTrend(c echo.Context) error {
	s := h.session.Load()
	if s.Empty() {
		return httpError(engine.ErrEmptyDataset)
	}
	from, to := engine.FirstYear, s.MaxYear
	if v, err := strconv.Atoi(c.QueryParam("from")); err == nil {
		from = v
	}
	if v, err := strconv.Atoi(c.QueryParam("to")); err == nil {
		to = v
	}
	if from < engine.FirstYear || to > s.MaxYear || from > to {
		return httpError(errors.Wrapf(engine.ErrYearOutOfRange,
			"range [%d, %d] is outside [%d, %d]", from, to, engine.FirstYear, s.MaxYear))
	}

	series, err := engine.RangeProjection(s.Names, c.Param("name"), from, to)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"series": series,
		"chart":  chart.Config(series),
	})
}
