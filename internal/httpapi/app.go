// Package httpapi serves release notes previews over HTTP.
package httpapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/xid"

	"github.com/goliatone/go-relnotes/internal/config"
	"github.com/goliatone/go-relnotes/internal/logging"
	"github.com/goliatone/go-relnotes/pkg/generator"
	"github.com/goliatone/go-relnotes/pkg/notes"
	"github.com/goliatone/go-relnotes/pkg/render"
)

// New creates the fiber app. Every error, including unknown routes, is
// returned as {"error":{"code":..,"message":..}}.
func New(gen *generator.Generator, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "relnotes",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(cors.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return xid.New().String()
		},
	}))
	app.Use(healthcheck.New(healthcheck.Config{
		LivenessEndpoint: "/healthz",
	}))

	RegisterRoutes(app, gen)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	logging.Debug("http app configured", "host", cfg.Server.Host, "port", cfg.Server.Port)
	return app
}

// RegisterRoutes mounts the versioned routes.
func RegisterRoutes(app *fiber.App, gen *generator.Generator) {
	v1 := app.Group("/v1")
	v1.Get("/release-notes", releaseNotesHandler(gen))
}

func releaseNotesHandler(gen *generator.Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := generator.Request{
			Space:       c.Query("space"),
			Project:     c.Query("project"),
			Environment: c.Query("environment"),
		}
		if missing := missingParams(req); len(missing) > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "missing query parameters: "+strings.Join(missing, ", "))
		}

		result, err := gen.Preview(c.UserContext(), req)
		if err != nil {
			if errors.Is(err, notes.ErrMissingField) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return err
		}

		c.Set(fiber.HeaderContentType, render.ContentType)
		c.Set("X-Run-ID", result.RunID)
		return c.SendString(result.Markdown)
	}
}

func missingParams(req generator.Request) []string {
	var missing []string
	if req.Space == "" {
		missing = append(missing, "space")
	}
	if req.Project == "" {
		missing = append(missing, "project")
	}
	if req.Environment == "" {
		missing = append(missing, "environment")
	}
	return missing
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "Internal Server Error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	logging.Warn("request failed", "path", c.Path(), "status", code, "error", err)

	return c.Status(code).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": msg,
		},
	})
}
