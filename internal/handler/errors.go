package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"wandshop-api/internal/middleware"
	"wandshop-api/internal/model"
	"wandshop-api/internal/service"
	"wandshop-api/pkg/apierror"
	"wandshop-api/pkg/response"
)

// fail translates service errors into API errors and writes them.
// Anything unrecognised is logged and reported as a 500.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	response.Error(w, toAPIError(r, err))
}

func toAPIError(r *http.Request, err error) *apierror.Error {
	var (
		verr    *service.ValidationError
		enumErr *model.EnumError
		ozzo    validation.Errors
	)

	if apiErr, ok := apierror.As(err); ok {
		return apiErr
	}

	switch {
	case errors.As(err, &ozzo):
		out := make(map[string]string)
		flatten("", ozzo, out)
		return apierror.ValidationError("validation failed", apierror.Fields(out)...)
	case errors.As(err, &verr):
		return apierror.ValidationError(verr.Error(), apierror.FieldError{Field: verr.Field, Message: verr.Message})
	case errors.As(err, &enumErr):
		return apierror.BadRequest(enumErr.Error())
	case errors.Is(err, service.ErrNotFound):
		return apierror.NotFound("")
	case errors.Is(err, service.ErrInsufficientInventory):
		return apierror.InsufficientInventory("not enough wood or core in stock")
	case errors.Is(err, service.ErrResetNotConfirmed):
		return apierror.BadRequest("reset must be confirmed with {\"confirm\": true}")
	case errors.Is(err, service.ErrStoreNotEmpty):
		return apierror.Conflict("sample data can only be loaded into an empty store")
	case errors.Is(err, service.ErrInUse):
		return apierror.Conflict("record is still referenced by sales")
	}

	zap.L().Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.GetRequestID(r.Context())),
		zap.Error(err),
	)
	return apierror.InternalError("")
}

// flatten turns nested ozzo errors into dotted field paths such as
// "items.0.quantity".
func flatten(prefix string, errs validation.Errors, out map[string]string) {
	for field, err := range errs {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		if nested, ok := err.(validation.Errors); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = err.Error()
	}
}
