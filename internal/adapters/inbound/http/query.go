package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/evolvehq/evolve-backend/internal/domain"
	"github.com/google/uuid"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return id, nil
}

func queryUUID(values url.Values, name string) (*uuid.UUID, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &id, nil
}

func queryInt(values url.Values, name string) (*int, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &n, nil
}

func queryBool(values url.Values, name string) (*bool, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &b, nil
}

// queryDate accepts any common date layout, not just RFC 3339.
func queryDate(values url.Values, name string) (*time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &t, nil
}

func queryPage(values url.Values) (domain.PageRequest, error) {
	page := domain.PageRequest{Page: defaultPage, PageSize: defaultPageSize}
	if p, err := queryInt(values, "page"); err != nil {
		return page, err
	} else if p != nil {
		page.Page = *p
	}
	if ps, err := queryInt(values, "pageSize"); err != nil {
		return page, err
	} else if ps != nil {
		page.PageSize = *ps
	}
	return page, nil
}

func querySort(values url.Values) *domain.SortBy {
	field := values.Get("sort")
	if field == "" {
		return nil
	}
	direction := domain.SortDirection_ASC
	if values.Get("order") != "" {
		direction = domain.SortDirection(values.Get("order"))
	}
	return &domain.SortBy{Field: field, Direction: direction}
}
