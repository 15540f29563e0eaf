// Package httpserver exposes the Vinyl Vault REST API. Handlers stay thin:
// decode and validate the payload, call one usecase, serialize the result.
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/crateside/vinylvault/internal/domain"
	"github.com/crateside/vinylvault/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	inventory *usecase.InventoryUC
	network   *usecase.NetworkUC
	sales     *usecase.SalesUC
}

func New(inv *usecase.InventoryUC, net *usecase.NetworkUC, sales *usecase.SalesUC) http.Handler {
	s := &Server{mux: http.NewServeMux(), inventory: inv, network: net, sales: sales}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	s.mux.HandleFunc("/api/vinyls", s.handleVinyls)
	s.mux.HandleFunc("/api/vinyls/", s.handleVinylByID)

	s.mux.HandleFunc("/api/network/listings", s.handleListings)
	s.mux.HandleFunc("/api/network/listings/", s.handleListingByID)
	s.mux.HandleFunc("/api/network/my-listings", s.handleMyListings)
	s.mux.HandleFunc("/api/network/shops", s.handleShops)
	s.mux.HandleFunc("/api/network/messages", s.handleSendMessage)
	s.mux.HandleFunc("/api/network/messages/", s.handleThread)

	s.mux.HandleFunc("/api/sales/orders", s.handleOrders)
	s.mux.HandleFunc("/api/sales/orders/", s.handleOrderByID)
	s.mux.HandleFunc("/api/sales/line-items", s.handleLineItems)
	s.mux.HandleFunc("/api/sales/stats", s.handleStats)
	s.mux.HandleFunc("/api/sales/stats/", s.handleStatsByRange)
	s.mux.HandleFunc("/api/sales/export", s.handleSalesExport)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Vinyls ---

func (s *Server) handleVinyls(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		vinyls, err := s.inventory.List(r.Context())
		if err != nil {
			s.fail(w, err, "failed to fetch vinyls")
			return
		}
		// query-param filters are layered here, outside the store
		q := r.URL.Query()
		filtered := vinyls[:0]
		for _, v := range vinyls {
			if q.Get("inStore") == "true" && !v.InStore {
				continue
			}
			if q.Get("online") == "true" && !v.Online {
				continue
			}
			if st := q.Get("status"); st != "" && string(v.Status) != st {
				continue
			}
			filtered = append(filtered, v)
		}
		writeJSON(w, http.StatusOK, filtered)
	case http.MethodPost:
		in, err := decodeVinylCreate(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		v, err := s.inventory.Create(r.Context(), *in)
		if err != nil {
			s.fail(w, err, "failed to create vinyl")
			return
		}
		writeJSON(w, http.StatusCreated, v)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleVinylByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/vinyls/")
	parts := strings.Split(rest, "/")
	id := parts[0]
	if id == "" {
		http.NotFound(w, r)
		return
	}

	if len(parts) == 2 {
		switch {
		case parts[1] == "sold" && r.Method == http.MethodPost:
			s.markSold(w, r, id)
		case parts[1] == "online-settings" && r.Method == http.MethodPut:
			s.putOnlineSettings(w, r, id)
		default:
			http.NotFound(w, r)
		}
		return
	}
	if len(parts) != 1 {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		v, err := s.inventory.Get(r.Context(), id)
		if err != nil {
			s.notFoundOrFail(w, err, "Vinyl not found", "failed to fetch vinyl")
			return
		}
		writeJSON(w, http.StatusOK, v)
	case http.MethodPatch:
		in, err := decodeVinylPatch(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		v, err := s.inventory.Update(r.Context(), id, *in)
		if err != nil {
			s.notFoundOrFail(w, err, "Vinyl not found", "failed to update vinyl")
			return
		}
		writeJSON(w, http.StatusOK, v)
	case http.MethodDelete:
		existed, err := s.inventory.Delete(r.Context(), id)
		if err != nil {
			s.fail(w, err, "failed to delete vinyl")
			return
		}
		if !existed {
			writeError(w, http.StatusNotFound, "Vinyl not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) markSold(w http.ResponseWriter, r *http.Request, id string) {
	v, err := s.inventory.MarkSold(r.Context(), id)
	if err != nil {
		s.notFoundOrFail(w, err, "Vinyl not found", "failed to mark vinyl as sold")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) putOnlineSettings(w http.ResponseWriter, r *http.Request, id string) {
	var settings domain.OnlineSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid online settings payload")
		return
	}
	v, err := s.inventory.UpdateOnlineSettings(r.Context(), id, settings)
	if err != nil {
		s.notFoundOrFail(w, err, "Vinyl not found", "failed to update online settings")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// --- Network ---

func (s *Server) handleListings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		listings, err := s.network.Listings(r.Context())
		if err != nil {
			s.fail(w, err, "failed to fetch network listings")
			return
		}
		writeJSON(w, http.StatusOK, listings)
	case http.MethodPost:
		var body struct {
			VinylID string `json:"vinylId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.VinylID == "" {
			writeError(w, http.StatusBadRequest, "vinylId is required")
			return
		}
		l, err := s.network.Publish(r.Context(), body.VinylID)
		if err != nil {
			s.notFoundOrFail(w, err, "Vinyl not found", "failed to create network listing")
			return
		}
		writeJSON(w, http.StatusCreated, l)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleListingByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/network/listings/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet:
		l, err := s.network.Listing(r.Context(), id)
		if err != nil {
			s.notFoundOrFail(w, err, "Listing not found", "failed to fetch network listing")
			return
		}
		writeJSON(w, http.StatusOK, l)
	case http.MethodDelete:
		existed, err := s.network.Unpublish(r.Context(), id)
		if err != nil {
			s.fail(w, err, "failed to remove network listing")
			return
		}
		if !existed {
			writeError(w, http.StatusNotFound, "Listing not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleMyListings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	listings, err := s.network.MyListings(r.Context())
	if err != nil {
		s.fail(w, err, "failed to fetch my network listings")
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (s *Server) handleShops(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	shops, err := s.network.Shops(r.Context())
	if err != nil {
		s.fail(w, err, "failed to fetch shops")
		return
	}
	writeJSON(w, http.StatusOK, shops)
}

func (s *Server) handleThread(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/network/messages/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		http.NotFound(w, r)
		return
	}
	thread, err := s.network.Thread(r.Context(), parts[0], parts[1])
	if err != nil {
		s.fail(w, err, "failed to fetch message thread")
		return
	}
	writeJSON(w, http.StatusOK, thread)
}

func (s *Server) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	in, err := decodeMessageInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	msg, err := s.network.SendMessage(r.Context(), *in)
	if err != nil {
		s.notFoundOrFail(w, err, "Thread not found", "failed to send message")
		return
	}
	writeJSON(w, http.StatusCreated, msg)
}

// --- Sales ---

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		f, err := parseSalesFilter(r.URL.Query())
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		orders, err := s.sales.ListOrders(r.Context(), f)
		if err != nil {
			s.fail(w, err, "failed to fetch sales orders")
			return
		}
		writeJSON(w, http.StatusOK, orders)
	case http.MethodPost:
		in, err := decodeOrderInput(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		o, err := s.sales.CreateOrder(r.Context(), *in)
		if err != nil {
			s.fail(w, err, "failed to create sales order")
			return
		}
		writeJSON(w, http.StatusCreated, o)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleOrderByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/sales/orders/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	o, err := s.sales.GetOrder(r.Context(), id)
	if err != nil {
		s.notFoundOrFail(w, err, "Order not found", "failed to fetch sales order")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleLineItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	f, err := parseSalesFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	items, err := s.sales.ListLineItems(r.Context(), f)
	if err != nil {
		s.fail(w, err, "failed to fetch sales line items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeStats(w, r, r.URL.Query().Get("range"))
}

func (s *Server) handleStatsByRange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeStats(w, r, strings.TrimPrefix(r.URL.Path, "/api/sales/stats/"))
}

func (s *Server) writeStats(w http.ResponseWriter, r *http.Request, rangeParam string) {
	stats, err := s.sales.Stats(r.Context(), statsRange(rangeParam))
	if err != nil {
		s.fail(w, err, "failed to fetch sales stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// --- helpers ---

func (s *Server) notFoundOrFail(w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	s.fail(w, err, failMsg)
}

func (s *Server) fail(w http.ResponseWriter, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	writeError(w, http.StatusInternalServerError, msg)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
