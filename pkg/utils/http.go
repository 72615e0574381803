package utils

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
)

var ErrInvalidID = errors.New("id inválido")

// ParamID lê o parâmetro :id da rota como inteiro positivo
func ParamID(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(ErrInvalidID, "%q", raw)
	}
	return id, nil
}
