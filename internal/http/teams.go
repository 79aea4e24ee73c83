package http

import (
	"encoding/json"
	"net/http"

	"team-roster-service/internal/model"
	"team-roster-service/internal/service"
)

func (h *Handler) handleTeamCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_create"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateTeamRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.CreateTeam(r.Context(), req.Name, req.Tag, req.Description, caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, teamResponse{Team: team})
}

func (h *Handler) handleTeamUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_update"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	var req model.TeamUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateTeamUpdateRequest(req.Name, req.Tag); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	team, err := h.Teams.UpdateTeam(r.Context(), teamID, caller, req)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, teamResponse{Team: team})
}

func (h *Handler) handleTeamDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_delete"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Teams.DeleteTeam(r.Context(), teamID, caller); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleMyTeams(w http.ResponseWriter, r *http.Request) {
	const handlerName = "my_teams"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	teams, err := h.Teams.ListUserTeams(r.Context(), caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, teamsResponse{Teams: teams})
}

func (h *Handler) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_remove_member"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	targetID, err := pathID(r, "userID")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Teams.RemoveMember(r.Context(), teamID, targetID, caller); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLeave(w http.ResponseWriter, r *http.Request) {
	const handlerName = "team_leave"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Teams.Leave(r.Context(), teamID, caller); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
