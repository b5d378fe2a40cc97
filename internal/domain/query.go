package domain

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

type QueryParameters struct {
	PageNumber       uint64
	PageSize         uint64
	InstallationCode string         // empty means any
	Status           WorkflowStatus // empty means any
}

func (q QueryParameters) Offset() uint64 {
	return (q.PageNumber - 1) * q.PageSize
}

type PagedList[T any] struct {
	Items       []T
	CurrentPage uint64
	PageSize    uint64
	TotalCount  int
	TotalPages  int
}

func NewPagedList[T any](items []T, totalCount int, pageNumber, pageSize uint64) *PagedList[T] {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + int(pageSize) - 1) / int(pageSize)
	}

	return &PagedList[T]{
		Items:       items,
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
	}
}

func (p *PagedList[T]) HasNext() bool {
	return int(p.CurrentPage) < p.TotalPages
}

func (p *PagedList[T]) HasPrevious() bool {
	return p.CurrentPage > 1
}
