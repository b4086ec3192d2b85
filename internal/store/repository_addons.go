package store

import (
	"context"
	"fmt"
	"sync"

	"addonpair/internal/logger"
	"addonpair/models"
)

type addonRepository struct {
	db     *DB
	logger *logger.Logger

	mu       sync.Mutex
	watchers []chan []models.AddonRef
}

// NewAddonRepository builds the SQLite-backed addon repository.
func NewAddonRepository(db *DB, logger *logger.Logger) AddonRepository {
	return &addonRepository{
		db:     db,
		logger: logger,
	}
}

func (a *addonRepository) List(ctx context.Context) ([]models.AddonRef, error) {
	log := logger.FromContext(ctx)

	rows, err := a.db.QueryContext(ctx, listAddons)
	if err != nil {
		log.Err(err).
			Str("func", "addonRepository.List").
			Msg("failed to execute query for addon list")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var addons []models.AddonRef

	for rows.Next() {
		var ref models.AddonRef

		if scanErr := rows.Scan(&ref.URL, &ref.Name, &ref.Description); scanErr != nil {
			log.Err(scanErr).
				Str("func", "addonRepository.List").
				Msg("failed to scan addon row")
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, scanErr)
		}

		addons = append(addons, ref)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "addonRepository.List").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, rowsErr)
	}

	return addons, nil
}

func (a *addonRepository) Replace(ctx context.Context, addons []models.AddonRef) error {
	log := logger.FromContext(ctx)

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "addonRepository.Replace").
			Msg("failed to begin replace transaction")
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllAddons); err != nil {
		log.Err(err).
			Str("func", "addonRepository.Replace").
			Msg("failed to clear addon list")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	for position, ref := range addons {
		_, err = tx.ExecContext(ctx, insertAddon,
			position,
			ref.URL,
			ref.Name,
			ref.Description,
		)
		if err != nil {
			log.Err(err).
				Str("func", "addonRepository.Replace").
				Str("url", ref.URL).
				Msg("failed to insert addon")
			return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "addonRepository.Replace").
			Msg("failed to commit replace transaction")
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	a.notify(addons)

	return nil
}

func (a *addonRepository) Watch() <-chan []models.AddonRef {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch := make(chan []models.AddonRef, 1)
	a.watchers = append(a.watchers, ch)
	return ch
}

// notify delivers the committed snapshot to every watcher. Sends never
// block: a watcher that has not drained its previous snapshot loses it and
// receives only the newest one.
func (a *addonRepository) notify(addons []models.AddonRef) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, ch := range a.watchers {
		snapshot := append([]models.AddonRef(nil), addons...)
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
