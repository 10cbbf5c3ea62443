package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nagraajm/bls-exportpro/repository"
	"github.com/nagraajm/bls-exportpro/services"
)

// The API carries two envelope shapes, kept exactly as the consumers expect
// them. Older route groups answer with {success,message,data}; the route
// groups added with the status workflows answer with {status,data,pagination}.

// ApiResponse is the success/message envelope.
type ApiResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// StatusResponse is the status/data envelope.
type StatusResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	writeJSON(w, statusCode, ApiResponse{Success: true, Message: message, Data: data})
}

func writeSuccessCount(w http.ResponseWriter, data interface{}, count int) {
	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Data: data, Count: &count})
}

func writeSuccessPage[T any](w http.ResponseWriter, page repository.Page[T], limit int) {
	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Data:    page.Data,
		Pagination: &Pagination{
			Page:       page.Page,
			Limit:      limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

func writeStatus(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, StatusResponse{Status: "success", Data: data})
}

func writeStatusPage[T any](w http.ResponseWriter, page repository.Page[T], limit int) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status: "success",
		Data:   page.Data,
		Pagination: &Pagination{
			Page:       page.Page,
			Limit:      limit,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	})
}

// writeError maps a domain error onto the success/message envelope.
func writeError(w http.ResponseWriter, err error) {
	statusCode, message := errorParts(err)
	writeJSON(w, statusCode, ApiResponse{Success: false, Message: message})
}

// writeStatusError maps a domain error onto the status/data envelope.
func writeStatusError(w http.ResponseWriter, err error) {
	statusCode, message := errorParts(err)
	writeJSON(w, statusCode, StatusResponse{Status: "error", Message: message})
}

func errorParts(err error) (int, string) {
	var appErr *services.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, appErr.Message
	}
	logrus.WithError(err).Error("request failed")
	return http.StatusInternalServerError, "Internal server error"
}
