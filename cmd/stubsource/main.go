// Command stubsource serves a local, dummyjson-shaped user API so the
// dashboard can run without reaching the public placeholder service. Point
// EMPLOYEE_API_URL at it during development.
package main

import (
	"context"
	"net/http"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gopkg.in/yaml.v2"

	"github.com/locvowork/hr_dashboard_sample/internal/config"
	"github.com/locvowork/hr_dashboard_sample/internal/domain"
	"github.com/locvowork/hr_dashboard_sample/internal/logger"
)

type fixtureAddress struct {
	Address    string `yaml:"address"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`
	PostalCode string `yaml:"postalCode"`
}

type fixtureUser struct {
	ID        int            `yaml:"id"`
	FirstName string         `yaml:"firstName"`
	LastName  string         `yaml:"lastName"`
	Email     string         `yaml:"email"`
	Age       int            `yaml:"age"`
	Phone     string         `yaml:"phone"`
	Image     string         `yaml:"image"`
	Address   fixtureAddress `yaml:"address"`
}

type fixtureFile struct {
	Users []fixtureUser `yaml:"users"`
}

type usersResponse struct {
	Users []domain.RawUser `json:"users"`
	Total int              `json:"total"`
	Skip  int              `json:"skip"`
	Limit int              `json:"limit"`
}

func main() {
	ctx := context.Background()

	if err := config.LoadEnvConfig(); err != nil {
		panic(err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	users, err := loadFixture(config.DefaultEnvConfig.STUB_FIXTURE_PATH)
	if err != nil {
		logger.ErrorLog(ctx, "Failed to load user fixture: %v", err)
		panic(err)
	}
	logger.InfoLog(ctx, "Serving %d fixture users", len(users))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/users", func(c echo.Context) error {
		limit := len(users)
		if raw := c.QueryParam("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "invalid limit"})
			}
			if parsed < limit {
				limit = parsed
			}
		}
		return c.JSON(http.StatusOK, usersResponse{
			Users: users[:limit],
			Total: len(users),
			Skip:  0,
			Limit: limit,
		})
	})

	if err := e.Start(":" + config.DefaultEnvConfig.STUB_PORT); err != nil {
		logger.ErrorLog(ctx, "Stub source stopped: %v", err)
	}
}

func loadFixture(path string) ([]domain.RawUser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file fixtureFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	users := make([]domain.RawUser, 0, len(file.Users))
	for _, u := range file.Users {
		users = append(users, domain.RawUser{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Age:       u.Age,
			Phone:     u.Phone,
			Image:     u.Image,
			Address: domain.RawAddress{
				Address:    u.Address.Address,
				City:       u.Address.City,
				State:      u.Address.State,
				PostalCode: u.Address.PostalCode,
			},
		})
	}
	return users, nil
}
