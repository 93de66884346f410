package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/gophaccount/internal/common"
	"github.com/dmitrijs2005/gophaccount/internal/server/models"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.UserName}
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	var body credentialsRequest
	if !r.decode(w, req, &body) {
		return
	}

	u, err := r.users.Register(req.Context(), body.Username, body.Password)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(u))
}

func (r *Router) handleGetUser(w http.ResponseWriter, req *http.Request) {
	username := mux.Vars(req)["username"]

	u, err := r.users.GetByUsername(req.Context(), username)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(u))
}

func (r *Router) handleUpdateUser(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(req)["id"], 10, 64)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}

	var body credentialsRequest
	if !r.decode(w, req, &body) {
		return
	}

	u, err := r.users.Update(req.Context(), id, body.Username, body.Password)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeJSON(w, http.StatusOK, toResponse(u))
}

func (r *Router) decode(w http.ResponseWriter, req *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return false
	}
	return true
}

func (r *Router) writeError(w http.ResponseWriter, req *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, common.ErrorValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "user not found"
	case errors.Is(err, common.ErrorAlreadyExists):
		status, msg = http.StatusConflict, "username already taken"
	default:
		r.logger.Error(req.Context(), "request failed", "error", err, "request_id", requestID(req.Context()))
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
