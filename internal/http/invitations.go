package http

import (
	"encoding/json"
	"net/http"

	"team-roster-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) handleIssueLink(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invitation_issue_link"

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

	inv, err := h.Invitations.IssueLink(r.Context(), teamID, caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, issueLinkResponse{
		LinkToken: inv.Token,
		ExpiresAt: inv.ExpiresAt,
	})
}

func (h *Handler) handleIssueNomination(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invitation_nominate"

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

	var req nominateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	inviteeID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("user_id must be a valid UUID"))
		return
	}

	inv, err := h.Invitations.IssueNomination(r.Context(), teamID, caller, inviteeID)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, invitationResponse{Invitation: inv})
}

func (h *Handler) handleAccept(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invitation_accept"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	token := chi.URLParam(r, "token")
	if err := ValidateToken(token); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	membership, err := h.Invitations.Accept(r.Context(), token, caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, membershipResponse{Membership: membership})
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	const handlerName = "invitation_reject"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	token := chi.URLParam(r, "token")
	if err := ValidateToken(token); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Invitations.Reject(r.Context(), token, caller); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
