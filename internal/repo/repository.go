package repo

import (
	"context"
	"errors"

	"Lombard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("not found")

// Repository — минимальный CRUD-контракт для одной сущности.
type Repository[M any] interface {
	List(ctx context.Context) ([]M, error)
	Get(ctx context.Context, id string) (*M, error)
	// Create вставляет запись и перечитывает её вместе со связями.
	Create(ctx context.Context, m *M) error
	// Update сохраняет все поля записи и перечитывает её вместе со связями.
	Update(ctx context.Context, m *M) error
	Delete(ctx context.Context, id string) error
}

type gormRepo[M any] struct {
	db      *gorm.DB
	preload []string
}

// NewClientRepository создаёт репозиторий клиентов.
func NewClientRepository(db *gorm.DB) Repository[model.Client] {
	return &gormRepo[model.Client]{db: db}
}

// NewItemRepository создаёт репозиторий предметов; владелец подгружается.
func NewItemRepository(db *gorm.DB) Repository[model.Item] {
	return &gormRepo[model.Item]{db: db, preload: []string{"Owner"}}
}

// NewDealRepository создаёт репозиторий угод; клиент и предмет подгружаются.
func NewDealRepository(db *gorm.DB) Repository[model.Deal] {
	return &gormRepo[model.Deal]{db: db, preload: []string{"Client", "Item"}}
}

func (r *gormRepo[M]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.preload {
		q = q.Preload(p)
	}
	return q
}

func (r *gormRepo[M]) List(ctx context.Context) ([]M, error) {
	out := []M{}
	if err := r.query(ctx).Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormRepo[M]) Get(ctx context.Context, id string) (*M, error) {
	var m M
	err := r.query(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormRepo[M]) Create(ctx context.Context, m *M) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return err
	}
	return r.query(ctx).First(m).Error
}

func (r *gormRepo[M]) Update(ctx context.Context, m *M) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error; err != nil {
		return err
	}
	return r.query(ctx).First(m).Error
}

func (r *gormRepo[M]) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
