package http

import (
	"net/http"
)

func (h *Handler) handleNotificationsList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "notifications_list"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	notifications, err := h.Notifications.ListForUser(r.Context(), caller)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	h.writeJSON(w, http.StatusOK, notificationsResponse{Notifications: notifications})
}

func (h *Handler) handleNotificationRead(w http.ResponseWriter, r *http.Request) {
	const handlerName = "notification_read"

	caller, err := callerID(r)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	notificationID, err := pathID(r, "notificationID")
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	if err := h.Notifications.MarkRead(r.Context(), notificationID, caller); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
