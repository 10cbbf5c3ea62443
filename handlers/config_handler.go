package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nagraajm/bls-exportpro/services"
)

// ConfigHandler serves the static export reference data (ports, incoterms,
// exchange rates and so on) that ships with the deployment as JSON files.
type ConfigHandler struct {
	DataDir string
}

// configFiles maps the URL segment to the backing file. Only names listed
// here are servable; everything else is a 404.
var configFiles = map[string]string{
	"ports":            "ports.json",
	"shipping-methods": "shipping-methods.json",
	"incoterms":        "incoterms.json",
	"exchange-rates":   "exchange-rates.json",
	"payment-terms":    "payment-terms.json",
}

func (h *ConfigHandler) Serve(w http.ResponseWriter, r *http.Request, name string) {
	fileName, ok := configFiles[name]
	if !ok {
		writeError(w, services.NotFound("Unknown configuration resource"))
		return
	}

	raw, err := os.ReadFile(filepath.Join(h.DataDir, fileName))
	if errors.Is(err, os.ErrNotExist) {
		writeError(w, services.NotFound("Configuration file not found: "+fileName))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	var data interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		writeError(w, err)
		return
	}

	if list, ok := data.([]interface{}); ok {
		writeSuccessCount(w, list, len(list))
		return
	}
	writeSuccess(w, http.StatusOK, data, "")
}
