package utils

import (
	stdjson "encoding/json"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJSON serializa a resposta com o status informado
func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

// DecodeJSON lê o corpo da requisição. Usa encoding/json porque os tipos
// anuláveis do domínio dependem de UnmarshalJSON ser chamado para null.
func DecodeJSON(body io.Reader, target any) error {
	return stdjson.NewDecoder(body).Decode(target)
}

func PrettyJson(in any) string {
	out, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}
	return string(out)
}
