package offer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/pkg/psqlbuilder"
)

const (
	tableName = "sent_offers"

	uniqueViolation = "23505"
)

var selectColumns = []string{
	"id",
	"idempotency_key",
	"sender_id",
	"recipient_id",
	"location_id",
	"offer_date",
	"start_time",
	"end_time",
	"activity_type",
	"group_size",
	"hourly_rate",
	"custom_price_mode",
	"total_price",
	"selected_addons",
	"additional_fees",
	"message",
	"created_at",
}

// Repository журнал отправленных индивидуальных предложений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория предложений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает отправленное предложение и заполняет ID и CreatedAt
func (r *Repository) Create(ctx context.Context, offer *domain.SentOffer) (*domain.SentOffer, error) {
	fees, err := marshalFees(offer.AdditionalFees)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - encode fees: %v", ErrBuildQuery, err)
	}

	addonIDs := offer.SelectedAddons
	if addonIDs == nil {
		addonIDs = []int64{}
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"idempotency_key",
			"sender_id",
			"recipient_id",
			"location_id",
			"offer_date",
			"start_time",
			"end_time",
			"activity_type",
			"group_size",
			"hourly_rate",
			"custom_price_mode",
			"total_price",
			"selected_addons",
			"additional_fees",
			"message",
		).
		Values(
			offer.IdempotencyKey,
			offer.SenderID,
			offer.RecipientID,
			offer.LocationID,
			offer.Date,
			offer.StartTime,
			offer.EndTime,
			offer.ActivityType,
			offer.GroupSize,
			offer.HourlyRate,
			offer.CustomPriceMode,
			offer.TotalPrice,
			pq.Array(addonIDs),
			fees,
			offer.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&offer.ID, &offer.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateOffer
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return offer, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SentOffer, error) {
	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	offer, err := scanOffer(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOfferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan offer: %v", ErrScanRow, err)
	}

	return offer, nil
}

// ListBySender получает предложения автора, новые первыми.
// limit <= 0 означает без ограничения.
func (r *Repository) ListBySender(ctx context.Context, senderID int64, limit, offset int) ([]*domain.SentOffer, error) {
	builder := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"sender_id": senderID}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySender - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySender - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	offers := make([]*domain.SentOffer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBySender - scan offer: %v", ErrScanRow, err)
		}
		offers = append(offers, offer)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBySender - iterate rows: %v", ErrScanRow, err)
	}

	return offers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOffer(row rowScanner) (*domain.SentOffer, error) {
	var (
		offer        domain.SentOffer
		activityType sql.NullString
		groupSize    string
		addonIDs     pq.Int64Array
		fees         []byte
	)

	err := row.Scan(
		&offer.ID,
		&offer.IdempotencyKey,
		&offer.SenderID,
		&offer.RecipientID,
		&offer.LocationID,
		&offer.Date,
		&offer.StartTime,
		&offer.EndTime,
		&activityType,
		&groupSize,
		&offer.HourlyRate,
		&offer.CustomPriceMode,
		&offer.TotalPrice,
		&addonIDs,
		&fees,
		&offer.Message,
		&offer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if activityType.Valid {
		offer.ActivityType = &activityType.String
	}
	offer.GroupSize = domain.GroupSizeTier(groupSize)
	offer.SelectedAddons = []int64(addonIDs)
	if offer.SelectedAddons == nil {
		offer.SelectedAddons = []int64{}
	}

	offer.AdditionalFees, err = unmarshalFees(fees)
	if err != nil {
		return nil, err
	}

	return &offer, nil
}
