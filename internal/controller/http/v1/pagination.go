package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/kurochkinivan/inspection_data/internal/domain"
)

const paginationHeader = "X-Pagination"

type Pagination struct {
	Page        uint64 `json:"page"`
	Limit       uint64 `json:"limit"`
	Total       int    `json:"total"`
	TotalPages  int    `json:"total_pages"`
	HasNext     bool   `json:"has_next"`
	HasPrevious bool   `json:"has_previous"`
}

func newPagination[T any](list *domain.PagedList[T]) Pagination {
	return Pagination{
		Page:        list.CurrentPage,
		Limit:       list.PageSize,
		Total:       list.TotalCount,
		TotalPages:  list.TotalPages,
		HasNext:     list.HasNext(),
		HasPrevious: list.HasPrevious(),
	}
}

func setPaginationHeader(w http.ResponseWriter, p Pagination) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	w.Header().Set(paginationHeader, string(data))

	return nil
}

func parseQueryParameters(r *http.Request) (params domain.QueryParameters, err error) {
	query := r.URL.Query()

	params = domain.QueryParameters{
		PageNumber:       domain.DefaultPageNumber,
		PageSize:         domain.DefaultPageSize,
		InstallationCode: query.Get("installation_code"),
	}

	if p := query.Get("page"); p != "" {
		params.PageNumber, err = strconv.ParseUint(p, 10, 64)
		if err != nil || params.PageNumber == 0 {
			return domain.QueryParameters{}, errors.New("invalid page")
		}
	}

	if l := query.Get("limit"); l != "" {
		params.PageSize, err = strconv.ParseUint(l, 10, 64)
		if err != nil || params.PageSize < 1 || params.PageSize > domain.MaxPageSize {
			return domain.QueryParameters{}, errors.New("invalid limit, must be in [1;100]")
		}
	}

	if s := query.Get("status"); s != "" {
		params.Status, err = domain.ParseWorkflowStatus(s)
		if err != nil {
			return domain.QueryParameters{}, err
		}
	}

	return params, nil
}
