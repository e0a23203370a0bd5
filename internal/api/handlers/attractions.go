package handlers

import (
	"errors"
	"net/http"
	"strings"

	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"
)

// AttractionHandler exposes read-only catalog and gazetteer lookups.
type AttractionHandler struct {
	Attractions []domain.Attraction
	Gazetteer   *services.Gazetteer
}

// List returns the attractions a place name resolves to, or the whole catalog
// when no place is given.
func (h *AttractionHandler) List(w http.ResponseWriter, r *http.Request) {
	place := strings.TrimSpace(r.URL.Query().Get("place"))
	if place == "" {
		writeJSON(w, r, http.StatusOK, dto.ListAttractionsResponse{
			Attractions: dto.NewAttractionsResponse(h.Attractions),
		})
		return
	}

	matched, err := h.Gazetteer.Resolve(h.Attractions, place)
	if err != nil {
		var rErr *domain.ResolutionError
		if errors.As(err, &rErr) {
			writeError(w, r, http.StatusNotFound, domain.UserMessage(err))
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListAttractionsResponse{
		Place:       place,
		Attractions: dto.NewAttractionsResponse(matched),
	})
}

// Aliases returns the gazetteer's alias table in lookup order.
func (h *AttractionHandler) Aliases(w http.ResponseWriter, r *http.Request) {
	groups := h.Gazetteer.Groups()
	res := dto.ListAliasesResponse{Aliases: make([]dto.AliasGroupResponse, 0, len(groups))}
	for _, g := range groups {
		res.Aliases = append(res.Aliases, dto.AliasGroupResponse{Key: g.Key, Variants: g.Variants})
	}
	writeJSON(w, r, http.StatusOK, res)
}
