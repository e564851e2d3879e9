package api

import (
	"database/sql"
	"net/http"

	"github.com/shopspring/decimal"

	"bazaar/internal/model"
	"bazaar/internal/store"
)

// itemDescription is the fixed description attached to item echoes unless
// the caller asks for the short form.
const itemDescription = "This is an amazing item that has a long description"

// ItemsHandler handles the item endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type listItemsParams struct {
	Skip  int `json:"skip" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=0"`
}

type getItemParams struct {
	ItemID int      `json:"item_id" validate:"gte=1"`
	Needly string   `json:"needly" validate:"required,min=5"`
	Q      []string `json:"item-query" validate:"omitempty,dive,min=3,max=10"`
	Short  bool     `json:"short"`
}

type getOwnerItemParams struct {
	UserID int    `json:"user_id" validate:"gte=1"`
	ItemID int    `json:"item_id" validate:"gte=1"`
	Q      string `json:"q"`
	Short  bool   `json:"short"`
}

type putItemParams struct {
	ItemID int `json:"item_id" validate:"gte=1"`
}

type itemWithTax struct {
	model.Item
	PriceWithTax decimal.Decimal `json:"price_with_tax"`
}

type replacedItem struct {
	ItemID int `json:"item_id"`
	model.Item
	Q string `json:"q,omitempty"`
}

// List handles GET /items. It returns the catalogue slice [skip, skip+limit).
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	var errs []fieldError
	p := listItemsParams{Limit: 10}
	query := r.URL.Query()
	p.Skip, errs = intParam("skip", query.Get("skip"), 0, errs)
	p.Limit, errs = intParam("limit", query.Get("limit"), 10, errs)
	errs = appendUnique(errs, checkStruct(p))
	if len(errs) > 0 {
		validationFailed(w, errs)
		return
	}

	items, err := store.ListItemNames(r.Context(), h.DB, p.Skip, p.Limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /items/{item_id}. The id is echoed, not resolved against
// the catalogue.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	var errs []fieldError
	p := getItemParams{}
	query := r.URL.Query()
	p.ItemID, errs = intParam("item_id", r.PathValue("item_id"), 0, errs)
	p.Needly = query.Get("needly")
	p.Q = query["item-query"]
	p.Short, errs = boolParam("short", query.Get("short"), false, errs)
	errs = appendUnique(errs, checkStruct(p))
	if len(errs) > 0 {
		validationFailed(w, errs)
		return
	}

	resp := map[string]any{"item_id": p.ItemID, "needly": p.Needly}
	if len(p.Q) > 0 {
		resp["q"] = p.Q
	}
	if !p.Short {
		resp["description"] = itemDescription
	}
	jsonResponse(w, http.StatusOK, resp)
}

// GetForOwner handles GET /users/{user_id}/items/{item_id}.
func (h *ItemsHandler) GetForOwner(w http.ResponseWriter, r *http.Request) {
	var errs []fieldError
	p := getOwnerItemParams{}
	query := r.URL.Query()
	p.UserID, errs = intParam("user_id", r.PathValue("user_id"), 0, errs)
	p.ItemID, errs = intParam("item_id", r.PathValue("item_id"), 0, errs)
	p.Q = query.Get("q")
	p.Short, errs = boolParam("short", query.Get("short"), false, errs)
	errs = appendUnique(errs, checkStruct(p))
	if len(errs) > 0 {
		validationFailed(w, errs)
		return
	}

	resp := map[string]any{"item_id": p.ItemID, "owner_id": p.UserID}
	if p.Q != "" {
		resp["q"] = p.Q
	}
	if !p.Short {
		resp["description"] = itemDescription
	}
	jsonResponse(w, http.StatusOK, resp)
}

// Create handles POST /items. When a tax is given the response carries the
// exact derived price_with_tax; otherwise the item is echoed unchanged.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item model.Item
	if err := decodeJSON(r, &item); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.Normalize()

	if errs := checkStruct(item); len(errs) > 0 {
		validationFailed(w, errs)
		return
	}

	priceWithTax, ok := item.PriceWithTax()
	if !ok {
		jsonResponse(w, http.StatusCreated, item)
		return
	}

	jsonResponse(w, http.StatusCreated, itemWithTax{
		Item:         item,
		PriceWithTax: priceWithTax,
	})
}

// Replace handles PUT /items/{item_id}. Nothing is stored; the merged
// result is echoed back.
func (h *ItemsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var errs []fieldError
	p := putItemParams{}
	p.ItemID, errs = intParam("item_id", r.PathValue("item_id"), 0, errs)
	errs = appendUnique(errs, checkStruct(p))

	var item model.Item
	if err := decodeJSON(r, &item); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.Normalize()
	errs = appendUnique(errs, checkStruct(item))
	if len(errs) > 0 {
		validationFailed(w, errs)
		return
	}

	jsonResponse(w, http.StatusCreated, replacedItem{
		ItemID: p.ItemID,
		Item:   item,
		Q:      r.URL.Query().Get("q"),
	})
}
