package api

import (
	"net/http"

	"bazaar/internal/model"
)

// ModelsHandler handles the bundled-model listing endpoint.
type ModelsHandler struct{}

type getModelParams struct {
	ModelName string `json:"model_name" validate:"required,oneof=alexnet resnet lenet"`
}

// Get handles GET /models/{model_name}. The name is gated by the closed
// enumeration before dispatch; inside, one switch on the value picks the
// message.
func (h *ModelsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := getModelParams{ModelName: r.PathValue("model_name")}
	if errs := checkStruct(p); len(errs) > 0 {
		validationFailed(w, errs)
		return
	}

	var message string
	switch model.ModelName(p.ModelName) {
	case model.ModelAlexNet:
		message = "Deep Learning FTW!"
	case model.ModelLeNet:
		message = "LeCNN all the images"
	default:
		message = "Have some residuals"
	}

	jsonResponse(w, http.StatusOK, map[string]string{
		"model_name": p.ModelName,
		"message":    message,
	})
}
