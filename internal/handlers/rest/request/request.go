package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

const ActorParam = "requesting_user_id"

var (
	ErrMissingActor = errors.New("requesting_user_id is required")
	ErrInvalidActor = errors.New("requesting_user_id must be an integer")
	ErrInvalidID    = errors.New("path id must be an integer")
)

// ActorID идентификатор пользователя, от имени которого выполняется запрос.
func ActorID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get(ActorParam)
	if raw == "" {
		return 0, ErrMissingActor
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidActor
	}
	return id, nil
}

func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
