package handlers

import (
	"net/http"
	"strconv"

	"github.com/nagraajm/bls-exportpro/models"
)

// actorFromRequest reads the caller identity set by the upstream gateway.
// Requests without the headers run as the built-in admin, which keeps local
// tooling and scripts working without a gateway in front.
func actorFromRequest(r *http.Request) models.Actor {
	actor := models.Actor{
		ID:   r.Header.Get("X-Actor-Id"),
		Name: r.Header.Get("X-Actor-Name"),
		Role: r.Header.Get("X-Actor-Role"),
	}
	if actor.ID == "" {
		return models.Actor{ID: "admin-001", Name: "System Admin", Role: "admin"}
	}
	if actor.Role == "" {
		actor.Role = "user"
	}
	return actor
}

// parsePagination reads ?page=&limit= with the list defaults.
func parsePagination(r *http.Request) (int, int) {
	page := 1
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}
