package handler

import (
	"net/http"

	"github.com/itchan-dev/mailadmin/backend/internal/service"
	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/utils"
)

func (h *Handler) GetCorreos(w http.ResponseWriter, r *http.Request) {
	correos, err := h.correo.GetAll(r.Context())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al obtener correos")
		return
	}
	utils.WriteJSON(w, http.StatusOK, correos)
}

func (h *Handler) GetCorreo(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	correo, err := h.correo.Get(r.Context(), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al obtener correo")
		return
	}
	utils.WriteJSON(w, http.StatusOK, correo)
}

func (h *Handler) CreateCorreo(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCorreoRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	correo, err := h.correo.Create(r.Context(), service.CorreoInput{
		LocalPart: body.LocalPart,
		Password:  body.Password,
		AreaId:    body.AreaId,
		DominioId: body.DominioId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al crear correo")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, correo)
}

func (h *Handler) UpdateCorreo(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateCorreoRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	correo, err := h.correo.Update(r.Context(), id, service.CorreoPatch{
		LocalPart: body.LocalPart,
		Password:  body.Password,
		AreaId:    body.AreaId,
		DominioId: body.DominioId,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al actualizar correo")
		return
	}
	utils.WriteJSON(w, http.StatusOK, correo)
}

func (h *Handler) DeleteCorreo(w http.ResponseWriter, r *http.Request) {
	id, err := parseIdParam(r, "id")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	if err := h.correo.Delete(r.Context(), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err, "Error al eliminar correo")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
