package api

import (
	"encoding/json"
	"net/http"
)

func response(status int, explanation string, err error, data interface{}) *Response {
	errString := ""
	if err != nil {
		errString = err.Error()
	}

	return &Response{
		HttpStatus:       status,
		Explanation:      explanation,
		ErrorExplanation: errString,
		Error:            err != nil || status >= http.StatusBadRequest,
		Success:          status < http.StatusBadRequest,
		Data:             toJson(data),
	}
}

func toJson(data interface{}) json.RawMessage {
	if data == nil {
		return nil
	}

	marshaled, err := json.Marshal(data)
	if err != nil {
		return nil
	}

	return marshaled
}
