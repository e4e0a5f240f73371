package handler

import (
	"net/http"

	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/domain"
	"github.com/itchan-dev/mailadmin/shared/utils"
)

func (h *Handler) GetAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.area.GetAll(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al obtener áreas")
		return
	}
	utils.WriteJSON(w, http.StatusOK, areas)
}

func (h *Handler) GetArea(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	area, err := h.area.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al obtener área")
		return
	}
	utils.WriteJSON(w, http.StatusOK, area)
}

func (h *Handler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var body api.CreateAreaRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	area, err := h.area.Create(r.Context(), domain.AreaCreationData{Name: body.Name, DominioIds: body.Dominios})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al crear área")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, area)
}

func (h *Handler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateAreaRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	area, err := h.area.Update(r.Context(), id, domain.AreaUpdateData{Name: body.Name, DominioIds: body.Dominios})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al actualizar área")
		return
	}
	utils.WriteJSON(w, http.StatusOK, area)
}

func (h *Handler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.area.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al eliminar área")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
