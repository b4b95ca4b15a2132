// @title Steady API
// @description API for habit-tracker app "Steady"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/steadyapp/steady/internal/api"
	"github.com/steadyapp/steady/internal/repository"
	"github.com/steadyapp/steady/internal/service"
	"github.com/steadyapp/steady/pkg/cleanup"
	"github.com/steadyapp/steady/pkg/config"
	jwtservice "github.com/steadyapp/steady/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.MustString("POSTGRES_DB_ADDRESS"),
		Username: cfg.MustString("POSTGRES_USER"),
		Password: cfg.MustString("POSTGRES_PASSWORD"),
		DB:       cfg.MustString("POSTGRES_DB"),
	}
	usersRepo := repository.NewUsersRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	entriesRepo := repository.NewEntriesRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(usersRepo),
		HabitsService:  service.NewHabitsService(habitsRepo, entriesRepo),
		EntriesService: service.NewEntriesService(habitsRepo, entriesRepo),
		JwtService: jwtservice.New(
			cfg.MustString("JWT_SECRET"),
			cfg.MustString("JWT_ISSUER"),
			cfg.MustString("JWT_AUDIENCE"),
		),
	})
	err := serv.Run(cfg.MustString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
