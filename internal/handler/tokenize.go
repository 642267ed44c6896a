// internal/handler/tokenize.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/tintalang/tinta/language/lexer"
)

// TokenizeHandler serves the lexer over HTTP.
type TokenizeHandler struct {
	maxSourceBytes int64
	validate       *validator.Validate
}

func NewTokenizeHandler(maxSourceBytes int64) *TokenizeHandler {
	return &TokenizeHandler{
		maxSourceBytes: maxSourceBytes,
		validate:       validator.New(),
	}
}

// TokenizeInput is the request payload. Source is a pointer so that an
// explicit empty string passes validation (an empty buffer is a legal lex)
// while an absent field does not.
type TokenizeInput struct {
	Source *string `json:"source" validate:"required"`
}

type TokenPayload struct {
	Kind   string `json:"kind"`
	Value  string `json:"value,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type TokenizeResponse struct {
	BaseResponse
	Tokens []TokenPayload `json:"tokens"`
}

type LexErrorResponse struct {
	BaseResponse
	Error  string `json:"error"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

// Tokenize lexes the posted source and returns the full token stream,
// including the trailing EOF token.
func (h *TokenizeHandler) Tokenize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSourceBytes)
	defer r.Body.Close()

	var input TokenizeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "Source exceeds the configured size limit")
			return
		}
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Field 'source' is required")
		return
	}

	tokens, err := lexer.Tokenize(*input.Source)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			slog.InfoContext(r.Context(), "tokenize rejected input",
				"error", lexErr.Message,
				"line", lexErr.Pos.Line,
				"column", lexErr.Pos.Column,
				"requestID", chimw.GetReqID(r.Context()),
			)
			respondWithJSON(w, http.StatusUnprocessableEntity, LexErrorResponse{
				Error:  lexErr.Message,
				Line:   lexErr.Pos.Line,
				Column: lexErr.Pos.Column,
			})
			return
		}

		slog.ErrorContext(r.Context(), "tokenize failed",
			"error", err,
			"requestID", chimw.GetReqID(r.Context()),
		)
		respondWithError(w, http.StatusInternalServerError, "Failed to tokenize source")
		return
	}

	payload := make([]TokenPayload, 0, len(tokens))
	for _, tok := range tokens {
		payload = append(payload, TokenPayload{
			Kind:   tok.Kind.String(),
			Value:  tok.Value,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}

	respondWithJSON(w, http.StatusOK, TokenizeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Tokens:       payload,
	})
}
