package repository

import "takeout-system/internal/domain"

type MenuRepositoryInterface interface {
	Load() (*domain.Menu, error)
	Save(menu *domain.Menu) error
	Remove() error
}

type OrderRepositoryInterface interface {
	LoadAll() ([]domain.Order, error)
	Append(order domain.Order) ([]domain.Order, error)
	ReplaceStatus(pos int, status domain.Status) ([]domain.Order, error)
	Remove() error
}
