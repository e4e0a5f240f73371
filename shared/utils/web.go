package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/errors"
	"github.com/itchan-dev/mailadmin/shared/logger"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// WriteErrorAndStatusCode writes err as a JSON error body.
// Errors without a status code are internal: 500, message embedding the raw error
// prefixed with context (e.g. "Error al obtener los dominios").
func WriteErrorAndStatusCode(w http.ResponseWriter, err error, context ...string) {
	var e *errors.ErrorWithStatusCode
	if stderrors.As(err, &e) {
		WriteJSON(w, e.StatusCode, api.ErrorResponse{Error: e.Message, Fields: e.Fields})
		return
	}
	// default error is 500
	msg := err.Error()
	if len(context) > 0 {
		msg = fmt.Sprintf("%s: %s", strings.Join(context, " "), msg)
	}
	logger.Log.Error("internal error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.ErrorResponse{Error: msg})
}

// DecodeValidate decodes a JSON body into body and runs struct validation.
// Validation failures are returned as a 400 with per-field reasons.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if !stderrors.As(err, &verrs) {
			return err
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldPath(fe)] = describe(fe)
		}
		return errors.Validation("Datos inválidos", fields)
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("invalid json body", "error", err)
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// fieldPath strips the struct name from the namespace: "CreateAreaRequest.dominios[0]" -> "dominios[0]"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("debe contener al menos %s elemento(s)", fe.Param())
		}
		return fmt.Sprintf("debe tener al menos %s caracter(es)", fe.Param())
	case "max":
		return fmt.Sprintf("debe tener como máximo %s caracter(es)", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple %s", fe.Tag())
	}
}
