package httpx

import (
	"net/http"

	"github.com/modelgrid/modelgrid/internal/domain/model"
	"github.com/modelgrid/modelgrid/internal/view"
)

// viewResponse is the JSON contract handed to an external table widget.
type viewResponse struct {
	State     string                   `json:"state"`
	ModelName string                   `json:"model_name,omitempty"`
	View      *model.ViewConfiguration `json:"view,omitempty"`
}

// ViewConfig serves the resolved view configuration as JSON for
// /api/views/{app}/{model}. The table widget owns everything past this
// payload: pagination UI, sorting, and cell rendering.
func (h *UIHandlers) ViewConfig(w http.ResponseWriter, r *http.Request) {
	identity := model.RouteIdentity{
		AppName:   r.PathValue("app"),
		ModelName: r.PathValue("model"),
	}

	pq, err := model.ParsePageQuery(r.URL.Query())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_query", Err: err})
		return
	}
	pq = pq.Clamp(h.MaxPageSize)

	res := h.resolve(r.Context(), identity, pq)
	switch res.State {
	case view.StateAwaitingRoute:
		WriteJSON(w, http.StatusBadRequest, viewResponse{State: res.State.String()})
	case view.StateLoading:
		WriteJSON(w, http.StatusAccepted, viewResponse{State: res.State.String(), ModelName: res.ModelName})
	case view.StateUnavailable:
		h.logUnavailable(r, res)
		WriteJSON(w, statusForUnavailable(res.Err), viewResponse{State: res.State.String(), ModelName: res.ModelName})
	case view.StateReady:
		if h.Contexts != nil {
			h.Contexts.Set(identity)
		}
		WriteJSON(w, http.StatusOK, viewResponse{State: res.State.String(), ModelName: res.ModelName, View: res.Config})
	}
}
