package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/kurochkinivan/inspection_data/internal/domain"
)

const TableInspectionData = "inspection_data"

var inspectionDataColumns = []string{
	"id",
	"inspection_id",
	"installation_code",
	"raw_data_uri",
	"anonymized_uri",
	"anonymizer_workflow_status",
	"date_created",
}

type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type DB interface {
	Querier
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// pageTxOptions gives the count and the page a single snapshot.
var pageTxOptions = pgx.TxOptions{
	IsoLevel:   pgx.RepeatableRead,
	AccessMode: pgx.ReadOnly,
}

type InspectionDataRepository struct {
	db DB
	qb sq.StatementBuilderType
}

func NewInspectionDataRepository(db DB) *InspectionDataRepository {
	return &InspectionDataRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *InspectionDataRepository) Query(
	ctx context.Context,
	params domain.QueryParameters,
) ([]*domain.InspectionData, int, error) {
	countSQL, countArgs, err := r.countQuery(params).ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	pageSQL, pageArgs, err := r.pageQuery(params).ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var (
		items []*domain.InspectionData
		total int
	)

	err = pgx.BeginTxFunc(ctx, r.db, pageTxOptions, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
			return scanRowError(err)
		}

		rows, err := tx.Query(ctx, pageSQL, pageArgs...)
		if err != nil {
			return executeQueryError(err)
		}

		items, err = pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.InspectionData])
		if err != nil {
			return collectRowsError(err)
		}

		return nil
	})
	if err != nil {
		return nil, -1, pageTxError(err)
	}

	return items, total, nil
}

func (r *InspectionDataRepository) ByID(ctx context.Context, id string) (*domain.InspectionData, error) {
	return r.one(ctx, sq.Eq{"id": id})
}

func (r *InspectionDataRepository) ByInspectionID(ctx context.Context, inspectionID string) (*domain.InspectionData, error) {
	return r.one(ctx, sq.Eq{"inspection_id": inspectionID})
}

func (r *InspectionDataRepository) one(ctx context.Context, where sq.Eq) (*domain.InspectionData, error) {
	sql, args, err := r.qb.
		Select(inspectionDataColumns...).
		From(TableInspectionData).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.InspectionData])
	if err != nil {
		return nil, collectRowError(err)
	}

	return item, nil
}

func (r *InspectionDataRepository) countQuery(params domain.QueryParameters) sq.SelectBuilder {
	return r.qb.
		Select("COUNT(*)").
		From(TableInspectionData).
		Where(filters(params))
}

func (r *InspectionDataRepository) pageQuery(params domain.QueryParameters) sq.SelectBuilder {
	return r.qb.
		Select(inspectionDataColumns...).
		From(TableInspectionData).
		Where(filters(params)).
		OrderBy("date_created DESC", "id ASC").
		Limit(params.PageSize).
		Offset(params.Offset())
}

func filters(params domain.QueryParameters) sq.And {
	and := sq.And{}

	if params.InstallationCode != "" {
		and = append(and, sq.Eq{"installation_code": params.InstallationCode})
	}

	if params.Status != "" {
		and = append(and, sq.Eq{"anonymizer_workflow_status": params.Status})
	}

	return and
}
