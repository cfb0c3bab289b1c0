package handlers

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/catalog"
)

// PageData is shared by every signed-in page for the header
type PageData struct {
	CartCount int
}

// InventoryLine is one listed product
type InventoryLine struct {
	catalog.Item
	InCart bool
}

// InventoryData represents the data passed to the inventory template
type InventoryData struct {
	PageData
	Sort       catalog.SortOrder
	SortOrders []catalog.SortOrder
	Items      []InventoryLine
}

// InventoryHandler lists the catalog
type InventoryHandler struct {
	renderer *Renderer
	log      logrus.FieldLogger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(renderer *Renderer, log logrus.FieldLogger) *InventoryHandler {
	return &InventoryHandler{renderer: renderer, log: log}
}

// ServeHTTP handles GET /inventory.html. An optional sort query selects the
// initial order; the control re-sorts in the browser afterwards.
func (h *InventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	order := catalog.DefaultSortOrder
	if v := r.URL.Query().Get("sort"); v != "" {
		parsed, err := catalog.ParseSortOrder(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		order = parsed
	}

	sess := sessionFrom(r)
	data := InventoryData{
		PageData:   PageData{CartCount: len(sess.Cart)},
		Sort:       order,
		SortOrders: catalog.SortOrders(),
	}
	for _, it := range catalog.Sort(catalog.Items(), order) {
		data.Items = append(data.Items, InventoryLine{Item: it, InCart: sess.InCart(it.ID)})
	}

	h.renderer.Render(w, "inventory.html", data)
}
