package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/portfolio/portfolio-server/internal/audit"
	"github.com/portfolio/portfolio-server/internal/httputil"
	"github.com/portfolio/portfolio-server/internal/model"
	"github.com/portfolio/portfolio-server/internal/service"
	"github.com/portfolio/portfolio-server/internal/util"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type contactsResponse struct {
	Success  bool            `json:"success"`
	Contacts json.RawMessage `json:"contacts"`
}

// Submit handles POST /api/contact. Fields may be any JSON scalar; a body
// that is not a JSON object is treated like a form with every field empty.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in model.SubmitInput
	if err := httputil.DecodeJSON(r, &in); err != nil {
		in = model.SubmitInput{}
	}

	sub, err := h.contactService.Submit(r.Context(), in)
	if err != nil {
		var submitErr *service.SubmitError
		if errors.As(err, &submitErr) {
			details := map[string]any{"stage": string(submitErr.Stage)}
			if sub != nil {
				details["email"] = util.MaskEmail(sub.Email)
			}
			audit.LogFromRequest(r, audit.Event{Type: audit.EventContactFailure, Details: details})
		}
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{
		Type:    audit.EventContactSubmit,
		Details: map[string]any{"email": util.MaskEmail(sub.Email)},
	})
	writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "Message sent successfully!",
	})
}

// List handles GET /api/contacts, passing the store's JSON through as is.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	audit.LogFromRequest(r, audit.Event{Type: audit.EventContactsViewed})
	writeJSON(w, http.StatusOK, contactsResponse{
		Success:  true,
		Contacts: contacts,
	})
}
