package utils

import (
	"errors"
	"monteluz-service/internal/pkg/constvars"
	"monteluz-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// BuildErrorResponse logs the failure and answers with a bare status code.
// Document endpoints never return an error payload, only full documents.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	w.WriteHeader(code)
}

// BuildDocumentResponse streams a fully rendered document back to the caller.
func BuildDocumentResponse(w http.ResponseWriter, contentType, disposition string, payload []byte) {
	w.Header().Set(constvars.HeaderContentType, contentType)
	w.Header().Set(constvars.HeaderContentDisposition, disposition)
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(payload)))
	w.WriteHeader(constvars.StatusOK)
	w.Write(payload)
}
