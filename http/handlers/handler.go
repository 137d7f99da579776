package handlers

import (
	"student-portal/services"
	"student-portal/store"
)

// Handler bundles the handlers' dependencies: the portal store and the
// payment flow that mutates it.
type Handler struct {
	Store    *store.Store
	Payments *services.PaymentService
}

// New wires a handler set around the given store.
func New(st *store.Store) *Handler {
	return &Handler{
		Store:    st,
		Payments: services.NewPaymentService(st),
	}
}
