package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/steadyapp/steady/internal/service"
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	habitsService  service.HabitsServiceI
	entriesService service.EntriesServiceI
	jwtService     JWTServiceI
}

type ServicesList struct {
	UserService    service.UserServiceI
	HabitsService  service.HabitsServiceI
	EntriesService service.EntriesServiceI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		habitsService:  servicesOptions.HabitsService,
		entriesService: servicesOptions.EntriesService,
		jwtService:     servicesOptions.JwtService,
	}
}

func (s *Server) setupRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
		})
		r.Route("/habits", func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/", s.CreateHabit)
			r.Get("/", s.GetHabits)
			r.Get("/{id}", s.GetHabit)
			r.Put("/{id}", s.UpdateHabit)
			r.Delete("/{id}", s.DeleteHabit)
			r.Post("/{id}/entries", s.AddEntry)
			r.Get("/{id}/entries", s.GetEntries)
		})
	})
}

func (s *Server) Run(address string) error {
	s.setupRoutes()
	return http.ListenAndServe(address, s.mx)
}
