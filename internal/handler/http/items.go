package http

import (
	"net/http"

	"github.com/Tristano1/friend-library-system/internal/logger"
	"github.com/Tristano1/friend-library-system/internal/utils"
	"github.com/Tristano1/friend-library-system/models"
)

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var newItem models.NewItem
	if err := decodeJSON(w, r, &newItem); err != nil {
		writeError(w, r, err, "*Handler.addItem")
		return
	}

	item, err := h.services.CatalogService.AddItem(r.Context(), &owner, newItem)
	if err != nil {
		writeError(w, r, err, "*Handler.addItem")
		return
	}

	log.Debug().Str("item", item.GUID).Str("owner", owner.GUID).Msg("item added")
	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	owner, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	items, err := h.services.CatalogService.ListItems(r.Context(), &owner)
	if err != nil {
		writeError(w, r, err, "*Handler.listItems")
		return
	}
	if items == nil {
		items = []models.Item{}
	}

	utils.WriteJSON(w, models.ItemList{Items: items, Length: len(items)}, http.StatusOK)
}
