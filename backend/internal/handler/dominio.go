package handler

import (
	"net/http"

	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/domain"
	"github.com/itchan-dev/mailadmin/shared/utils"
)

func (h *Handler) GetDominios(w http.ResponseWriter, r *http.Request) {
	dominios, err := h.dominio.GetAll(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al obtener dominios")
		return
	}
	utils.WriteJSON(w, http.StatusOK, dominios)
}

func (h *Handler) GetDominio(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	dominio, err := h.dominio.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al obtener dominio")
		return
	}
	utils.WriteJSON(w, http.StatusOK, dominio)
}

func (h *Handler) CreateDominio(w http.ResponseWriter, r *http.Request) {
	var body api.CreateDominioRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	data := domain.DominioCreationData{Name: body.Name, IsActive: true}
	if body.IsActive != nil {
		data.IsActive = *body.IsActive
	}
	dominio, err := h.dominio.Create(r.Context(), data)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al crear dominio")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, dominio)
}

func (h *Handler) UpdateDominio(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateDominioRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	dominio, err := h.dominio.Update(r.Context(), id, domain.DominioUpdateData{Name: body.Name, IsActive: body.IsActive})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al actualizar dominio")
		return
	}
	utils.WriteJSON(w, http.StatusOK, dominio)
}

func (h *Handler) DeleteDominio(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.dominio.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al eliminar dominio")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ActivateDominio(w http.ResponseWriter, r *http.Request) {
	h.setDominioActive(w, r, true)
}

func (h *Handler) DeactivateDominio(w http.ResponseWriter, r *http.Request) {
	h.setDominioActive(w, r, false)
}

func (h *Handler) setDominioActive(w http.ResponseWriter, r *http.Request, active bool) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var dominio domain.Dominio
	if active {
		dominio, err = h.dominio.Activate(r.Context(), id)
	} else {
		dominio, err = h.dominio.Deactivate(r.Context(), id)
	}
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al cambiar el estado del dominio")
		return
	}
	utils.WriteJSON(w, http.StatusOK, dominio)
}
