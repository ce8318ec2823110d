package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/altruist/ucp-payments/internal/dto"
)

// MapDBError translates store errors into an HTTP status and body. Anything
// unrecognized is a 500.
func MapDBError(err error) (int, dto.ErrorResponse) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, dto.ErrorResponse{Error: "resource not found"}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return http.StatusConflict, dto.ErrorResponse{
				Error:   "resource already exists",
				Details: pgErr.Detail,
			}
		case "23514": // check_violation
			return http.StatusBadRequest, dto.ErrorResponse{
				Error:   "constraint violation",
				Details: pgErr.Detail,
			}
		}
	}

	log.Error().Err(err).Msg("unhandled store error")
	return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"}
}

// ErrorHandler renders any error attached to the gin context.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			status, resp := MapDBError(c.Errors.Last().Err)
			c.JSON(status, resp)
		}
	}
}
