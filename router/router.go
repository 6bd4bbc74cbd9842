package router

import (
	"net/http"

	"user-registry/app/controllers"
)

func NewRouter(userCtrl *controllers.UserController) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /create_user", userCtrl.CreateUser)
	mux.HandleFunc("GET /get_users", userCtrl.GetUsers)
	mux.HandleFunc("DELETE /delete_user/{user_id}", userCtrl.DeleteUser)
	return mux
}
