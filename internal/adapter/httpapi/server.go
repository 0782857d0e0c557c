package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/bakery-order-service/internal/domain"
	"github.com/example/bakery-order-service/internal/metrics"
	"github.com/example/bakery-order-service/internal/usecase"
)

// Server — HTTP-фасад сервиса оформления заказов.
type Server struct {
	Router  *mux.Router
	Catalog usecase.GetCatalog
	Place   usecase.PlaceOrder
	Get     usecase.GetOrder
	Update  usecase.UpdateOrderStatus
}

func NewServer(catalog usecase.GetCatalog, place usecase.PlaceOrder, get usecase.GetOrder, update usecase.UpdateOrderStatus, m *metrics.Metrics) *Server {
	s := &Server{Router: mux.NewRouter(), Catalog: catalog, Place: place, Get: get, Update: update}
	s.Router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.Router.HandleFunc("/products", s.handleProducts).Methods(http.MethodGet)
	s.Router.HandleFunc("/order", s.handlePlaceOrder).Methods(http.MethodPost)
	s.Router.HandleFunc("/order/{id}", s.handleGetOrder).Methods(http.MethodGet)
	s.Router.HandleFunc("/order/{id}", s.handleUpdateStatus).Methods(http.MethodPut)
	s.Router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	return s
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.Catalog.Execute(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

type placeOrderRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	o, err := s.Place.Execute(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"order_id": o.ID,
		"status":   string(o.Status),
	})
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.Get.Execute(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// handleUpdateStatus — внутренний маршрут для воркера, не для клиентов.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.Update.Execute(r.Context(), id, domain.OrderStatus(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_id": id, "status": req.Status})
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
