// Package app wires the repositories, usecases, and HTTP surface together.
package app

import (
	"net/http"

	"github.com/crateside/vinylvault/internal/adapters/httpserver"
	"github.com/crateside/vinylvault/internal/adapters/repo/memory"
	"github.com/crateside/vinylvault/internal/usecase"
)

type App struct {
	Inventory *usecase.InventoryUC
	Network   *usecase.NetworkUC
	Sales     *usecase.SalesUC
}

// New constructs the in-memory repos, seeds them eagerly, and builds the
// usecases on top. Everything downstream receives these by reference; there
// is no other path to the state.
func New(shopID string) *App {
	vinyls := memory.NewVinylRepo()
	network := memory.NewNetworkRepo()
	sales := memory.NewSalesRepo()
	memory.Seed(vinyls, network, sales)

	return &App{
		Inventory: &usecase.InventoryUC{Vinyls: vinyls, Network: network, Sales: sales, ShopID: shopID},
		Network:   &usecase.NetworkUC{Network: network, Vinyls: vinyls, ShopID: shopID},
		Sales:     &usecase.SalesUC{Orders: sales},
	}
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.Inventory, a.Network, a.Sales)
}
