package repository

import "context"

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Restaurants  RestaurantRepository
	Users        UserRepository
	Products     ProductRepository
	Inventory    InventoryRepository
	Tables       TableRepository
	Orders       OrderRepository
	Reservations ReservationRepository
	Sequencer    OrderNumberSequencer
}

// TxRunner ejecuta fn dentro de una transacción de BD. Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(tx TxRepos) error) error
}
