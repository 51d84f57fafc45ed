package service

import (
	"cinehall/internal/catalog"
	"cinehall/internal/payment"
	"cinehall/internal/storage"
)

type Services struct {
	Catalog      *catalog.Catalog
	Reservations *ReservationService
}

func NewServices(cat *catalog.Catalog, store storage.Store, gateway payment.Gateway, opts ...Option) *Services {
	return &Services{
		Catalog:      cat,
		Reservations: NewReservationService(cat, store, gateway, opts...),
	}
}
